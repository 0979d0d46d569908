package planner

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/zakazai/querysim/internal/parser"
	"github.com/zakazai/querysim/internal/types"
)

// Frame is the working set passed between stages
type Frame struct {
	Columns []string
	Rows    []types.Row
}

// NewFrame copies a dataset so stages never touch catalog rows
func NewFrame(ds *types.Dataset) *Frame {
	rows := make([]types.Row, len(ds.Rows))
	for i, row := range ds.Rows {
		cp := make(types.Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		rows[i] = cp
	}
	columns := make([]string, len(ds.Columns))
	copy(columns, ds.Columns)
	return &Frame{Columns: columns, Rows: rows}
}

// Stage is a single step of the SELECT pipeline
type Stage interface {
	// Name returns the stage name for logging
	Name() string
	// Execute transforms the frame; the input frame must not be mutated
	Execute(in *Frame) *Frame
}

// numeric reads a cell as a number; numeric strings count
func numeric(v interface{}) (float64, bool) {
	if f, ok := types.ToFloat(v); ok {
		return f, true
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}
	return 0, false
}

// FilterStage keeps rows matching a recognized WHERE shape
type FilterStage struct {
	Shape parser.WhereShape
}

func (f *FilterStage) Name() string { return "filter" }

func (f *FilterStage) Execute(in *Frame) *Frame {
	out := &Frame{Columns: in.Columns, Rows: []types.Row{}}
	for _, row := range in.Rows {
		if f.matches(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func (f *FilterStage) matches(row types.Row) bool {
	switch f.Shape.Kind {
	case parser.WhereSalaryAbove:
		return above(row["salary"], f.Shape.Threshold)
	case parser.WhereAmountAbove:
		return above(row["amount"], f.Shape.Threshold)
	case parser.WhereStockBelow:
		v := row["stock_quantity"]
		n, ok := numeric(v)
		return types.Truthy(v) && ok && n < f.Shape.Threshold
	case parser.WhereDepartmentEngineering:
		s, ok := row["department"].(string)
		return ok && strings.ToLower(s) == "engineering"
	}
	return true
}

func above(v interface{}, threshold float64) bool {
	n, ok := numeric(v)
	return types.Truthy(v) && ok && n > threshold
}

// ProjectStage keeps the dataset columns named by the select list. A column
// survives when a requested token equals it or contains it.
type ProjectStage struct {
	Requested []string
}

func (p *ProjectStage) Name() string { return "project" }

func (p *ProjectStage) Execute(in *Frame) *Frame {
	columns := []string{}
	for _, col := range in.Columns {
		for _, req := range p.Requested {
			if req == col || strings.Contains(req, col) {
				columns = append(columns, col)
				break
			}
		}
	}

	rows := make([]types.Row, len(in.Rows))
	for i, row := range in.Rows {
		projected := make(types.Row, len(columns))
		for _, col := range columns {
			if v, ok := row[col]; ok {
				projected[col] = v
			}
		}
		rows[i] = projected
	}
	return &Frame{Columns: columns, Rows: rows}
}

// SortStage applies a recognized ORDER BY shape. Sorting is stable.
type SortStage struct {
	Order parser.OrderKind
}

func (s *SortStage) Name() string { return "sort" }

func (s *SortStage) Execute(in *Frame) *Frame {
	rows := make([]types.Row, len(in.Rows))
	copy(rows, in.Rows)

	switch s.Order {
	case parser.OrderSalaryDesc:
		sortDescending(rows, "salary")
	case parser.OrderAmountDesc:
		sortDescending(rows, "amount")
	case parser.OrderNameAsc:
		// Collators are not safe for concurrent use; build one per sort.
		c := collate.New(language.English)
		sort.SliceStable(rows, func(i, j int) bool {
			return c.CompareString(nameOf(rows[i]), nameOf(rows[j])) < 0
		})
	}
	return &Frame{Columns: in.Columns, Rows: rows}
}

func sortDescending(rows []types.Row, col string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return numberOrZero(rows[i][col]) > numberOrZero(rows[j][col])
	})
}

func numberOrZero(v interface{}) float64 {
	n, ok := numeric(v)
	if !ok {
		return 0
	}
	return n
}

func nameOf(row types.Row) string {
	v, ok := row["name"]
	if !ok {
		return ""
	}
	return types.FormatValue(v)
}

// LimitStage truncates the frame to at most Max rows
type LimitStage struct {
	Max int
}

func (l *LimitStage) Name() string { return "limit" }

func (l *LimitStage) Execute(in *Frame) *Frame {
	if len(in.Rows) <= l.Max {
		return in
	}
	rows := make([]types.Row, l.Max)
	copy(rows, in.Rows[:l.Max])
	return &Frame{Columns: in.Columns, Rows: rows}
}
