package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakazai/querysim/internal/types"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"employees", "sales", "products"}, c.Names())
	assert.Equal(t, "employees", c.First().Name)

	for _, ds := range c.Datasets() {
		assert.Len(t, ds.Rows, 8, ds.Name)
		assert.Len(t, ds.SampleQueries, 3, ds.Name)
		for _, row := range ds.Rows {
			assert.Len(t, row, len(ds.Columns), ds.Name)
		}
	}

	assert.Nil(t, c.Get("orders"))
	assert.Equal(t, 95000, c.Get("employees").Rows[0]["salary"])
	assert.Equal(t, 1299.99, c.Get("sales").Rows[0]["amount"])
}

func TestSeedReturnsFreshValues(t *testing.T) {
	a := Seed()
	a[0].Rows[0]["name"] = "changed"
	b := Seed()
	assert.Equal(t, "John Doe", b[0].Rows[0]["name"])
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		datasets []*types.Dataset
	}{
		{name: "empty", datasets: nil},
		{name: "missing name", datasets: []*types.Dataset{{Columns: []string{"a"}}}},
		{name: "no columns", datasets: []*types.Dataset{{Name: "t"}}},
		{name: "duplicate column", datasets: []*types.Dataset{{Name: "t", Columns: []string{"a", "a"}}}},
		{
			name: "unknown row key",
			datasets: []*types.Dataset{{
				Name:    "t",
				Columns: []string{"a"},
				Rows:    []types.Row{{"b": 1}},
			}},
		},
		{
			name: "duplicate dataset",
			datasets: []*types.Dataset{
				{Name: "t", Columns: []string{"a"}},
				{Name: "t", Columns: []string{"a"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.datasets)
			assert.Error(t, err)
		})
	}
}

const sampleYAML = `
datasets:
  - name: orders
    description: Order data
    columns: [order_id, customer, total]
    rows:
      - {order_id: 1, customer: Ann, total: 10.5}
      - {order_id: 2, customer: Bo, total: 3}
    sample_queries:
      - SELECT * FROM orders
  - name: customers
    columns: [customer]
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"orders", "customers"}, c.Names())
	orders := c.Get("orders")
	require.NotNil(t, orders)
	assert.Equal(t, "Order data", orders.Description)
	assert.Equal(t, 1, orders.Rows[0]["order_id"])
	assert.Equal(t, 10.5, orders.Rows[0]["total"])
	assert.Equal(t, []string{"SELECT * FROM orders"}, orders.SampleQueries)
}

func TestLoadEmptyPathUsesSeed(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "employees", c.First().Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("datasets: [oops"))
	assert.Error(t, err)

	_, err = Parse([]byte("datasets: []"))
	assert.Error(t, err)
}
