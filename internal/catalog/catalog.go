// Package catalog holds the fixed set of named datasets queries run against.
package catalog

import (
	"errors"
	"fmt"

	"github.com/zakazai/querysim/internal/types"
)

// Catalog is an ordered, read-only list of datasets. Order matters: dataset
// resolution scans it front to back and falls back to the first entry.
type Catalog struct {
	datasets []*types.Dataset
	byName   map[string]*types.Dataset
}

// New validates datasets and builds a catalog from them
func New(datasets []*types.Dataset) (*Catalog, error) {
	if len(datasets) == 0 {
		return nil, errors.New("catalog must contain at least one dataset")
	}

	c := &Catalog{
		datasets: make([]*types.Dataset, 0, len(datasets)),
		byName:   make(map[string]*types.Dataset, len(datasets)),
	}
	for _, ds := range datasets {
		if err := validateDataset(ds); err != nil {
			return nil, err
		}
		if _, exists := c.byName[ds.Name]; exists {
			return nil, fmt.Errorf("dataset %s already exists", ds.Name)
		}
		c.byName[ds.Name] = ds
		c.datasets = append(c.datasets, ds)
	}
	return c, nil
}

func validateDataset(ds *types.Dataset) error {
	if ds == nil || ds.Name == "" {
		return errors.New("dataset name is required")
	}
	if len(ds.Columns) == 0 {
		return fmt.Errorf("dataset %s declares no columns", ds.Name)
	}

	columnNames := make(map[string]bool)
	for _, col := range ds.Columns {
		if columnNames[col] {
			return fmt.Errorf("duplicate column name in %s: %s", ds.Name, col)
		}
		columnNames[col] = true
	}

	for i, row := range ds.Rows {
		for colName := range row {
			if !ds.HasColumn(colName) {
				return fmt.Errorf("row %d of %s: invalid column name: %s", i, ds.Name, colName)
			}
		}
	}
	return nil
}

// Datasets returns the datasets in declaration order
func (c *Catalog) Datasets() []*types.Dataset {
	out := make([]*types.Dataset, len(c.datasets))
	copy(out, c.datasets)
	return out
}

// First returns the fallback dataset
func (c *Catalog) First() *types.Dataset {
	return c.datasets[0]
}

// Get returns the dataset with exactly this name, or nil
func (c *Catalog) Get(name string) *types.Dataset {
	return c.byName[name]
}

// Names returns dataset names in declaration order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.datasets))
	for _, ds := range c.datasets {
		names = append(names, ds.Name)
	}
	return names
}
