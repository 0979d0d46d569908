// Package config loads querysim settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/zakazai/querysim/internal/types"
)

// Config holds every runtime setting
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	CatalogFile  string `mapstructure:"catalog_file"`
	HistoryLimit int    `mapstructure:"history_limit"`
	MinDelayMs   int    `mapstructure:"min_delay_ms"`
	MaxDelayMs   int    `mapstructure:"max_delay_ms"`
	ListenAddr   string `mapstructure:"listen_addr"`
	ExportDir    string `mapstructure:"export_dir"`
}

// Defaults
var defaults = map[string]interface{}{
	"log_level":     "info",
	"catalog_file":  "",
	"history_limit": 20,
	"min_delay_ms":  50,
	"max_delay_ms":  350,
	"listen_addr":   ":8080",
	"export_dir":    ".",
}

// EnvPrefix is prepended to every environment override, e.g. QUERYSIM_LOG_LEVEL
const EnvPrefix = "QUERYSIM"

// NewViper returns a viper instance with defaults and environment overrides.
// Flags can be bound to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads settings into a Config. An explicit file must exist; otherwise
// querysim.{yaml,json} is searched for in searchPaths (default "." and
// $HOME/.querysim) and a missing file means defaults.
func Load(v *viper.Viper, file string, searchPaths ...string) (Config, error) {
	var cfg Config

	if file != "" {
		v.SetConfigFile(file)
	} else {
		if len(searchPaths) == 0 {
			searchPaths = []string{".", "$HOME/.querysim"}
		}
		v.SetConfigName("querysim")
		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		types.GlobalLogger.Debug("no config file found, using defaults")
	} else {
		types.GlobalLogger.Debug("using config file %s", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if _, err := types.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be positive, got %d", c.HistoryLimit)
	}
	if c.MinDelayMs < 0 || c.MaxDelayMs < c.MinDelayMs {
		return fmt.Errorf("invalid delay range [%d, %d]", c.MinDelayMs, c.MaxDelayMs)
	}
	return nil
}

// Level returns the parsed log level
func (c Config) Level() types.LogLevel {
	level, _ := types.ParseLogLevel(c.LogLevel)
	return level
}

// MinDelay returns the lower latency bound
func (c Config) MinDelay() time.Duration {
	return time.Duration(c.MinDelayMs) * time.Millisecond
}

// MaxDelay returns the upper latency bound
func (c Config) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMs) * time.Millisecond
}
