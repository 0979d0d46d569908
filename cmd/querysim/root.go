package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakazai/querysim/internal/catalog"
	"github.com/zakazai/querysim/internal/config"
	"github.com/zakazai/querysim/internal/interpreter"
	"github.com/zakazai/querysim/internal/session"
	"github.com/zakazai/querysim/internal/types"
)

var (
	configFile string
	assumeYes  bool

	v   = config.NewViper()
	cfg config.Config
	app *session.Session
)

// rootCmd starts the interactive shell when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "querysim",
	Short: "Simulated SQL query runner over bundled sample datasets",
	Long: `querysim evaluates SQL-like text against small bundled datasets.
It recognizes a handful of WHERE and ORDER BY shapes, answers DDL and DML with
canned messages, and adds a random latency to every query.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(app, os.Stdin, os.Stdout, isTerminal(os.Stdin))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./querysim.yaml or $HOME/.querysim/querysim.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error, none")
	flags.String("catalog", "", "YAML catalog file replacing the bundled datasets")
	flags.Int("min-delay-ms", 50, "minimum simulated latency in milliseconds")
	flags.Int("max-delay-ms", 350, "maximum simulated latency in milliseconds")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "confirm destructive queries without prompting")

	bind := map[string]string{
		"log_level":    "log-level",
		"catalog_file": "catalog",
		"min_delay_ms": "min-delay-ms",
		"max_delay_ms": "max-delay-ms",
	}
	for key, flag := range bind {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

// setup loads configuration and builds the session shared by every command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(v, configFile)
	if err != nil {
		return err
	}
	types.GlobalLogger.SetLevel(cfg.Level())

	c, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	types.GlobalLogger.Debug("catalog loaded with datasets %v", c.Names())

	interp := interpreter.New(c, interpreter.WithDelayRange(cfg.MinDelay(), cfg.MaxDelay()))
	app = session.New(interp, session.WithHistoryLimit(cfg.HistoryLimit))
	return nil
}

// bindFlag exposes a subcommand flag through the shared viper instance
func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}
