package types

import "fmt"

// Row is a single record keyed by column name. Values are string, int or float64.
type Row map[string]interface{}

// Dataset is a named, read-only table bundled with the catalog
type Dataset struct {
	Name          string   `yaml:"name" json:"name"`
	Description   string   `yaml:"description" json:"description"`
	Columns       []string `yaml:"columns" json:"columns"`
	Rows          []Row    `yaml:"rows" json:"-"`
	SampleQueries []string `yaml:"sample_queries" json:"sampleQueries"`
}

// HasColumn reports whether name is one of the declared columns
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// OperationKind is the coarse category inferred from a query's leading keyword
type OperationKind string

const (
	OpSelect OperationKind = "SELECT"
	OpCreate OperationKind = "CREATE"
	OpInsert OperationKind = "INSERT"
	OpUpdate OperationKind = "UPDATE"
	OpDelete OperationKind = "DELETE"
	OpDrop   OperationKind = "DROP"
	OpDump   OperationKind = "DUMP"
)

// ResultColumn is the single column reported by non-SELECT operations
const ResultColumn = "Result"

// Result is what a query evaluates to
type Result struct {
	Rows            []Row         `json:"rows"`
	Columns         []string      `json:"columns"`
	RowCount        int           `json:"rowCount"`
	Operation       OperationKind `json:"operationType"`
	Message         string        `json:"message,omitempty"`
	Dataset         string        `json:"dataset,omitempty"`
	ExecutionTimeMs int           `json:"executionTime"`
}

// ToFloat converts a numeric cell value. Non-numeric values report false.
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Truthy mirrors how the row filters treat a cell: missing, zero and empty values are false
func Truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if f, ok := ToFloat(v); ok {
		return f != 0
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// FormatValue renders a cell for text output; missing values render empty
func FormatValue(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
