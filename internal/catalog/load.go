package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zakazai/querysim/internal/types"
)

type catalogFile struct {
	Datasets []*types.Dataset `yaml:"datasets"`
}

// Default returns the bundled catalog
func Default() *Catalog {
	c, err := New(Seed())
	if err != nil {
		// The seed data is static; failing validation is a programming error.
		panic(err)
	}
	return c
}

// Load returns the bundled catalog when path is empty, otherwise the
// catalog described by the YAML file at path
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(f.Datasets)
}
