package planner

import (
	"fmt"
	"strings"

	"github.com/zakazai/querysim/internal/catalog"
	"github.com/zakazai/querysim/internal/parser"
	"github.com/zakazai/querysim/internal/types"
)

// MaxRows caps every SELECT result, independent of any LIMIT in the text
const MaxRows = 100

// RandomSource supplies the display-only random numbers. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Plan represents a query execution plan
type Plan struct {
	Type     types.OperationKind
	Table    string
	DumpPath string
	Dataset  *types.Dataset
	Stages   []Stage
}

// ResolveDataset picks the first dataset whose name appears anywhere in the
// normalized query, falling back to the catalog's first entry
func ResolveDataset(c *catalog.Catalog, normalized string) *types.Dataset {
	for _, ds := range c.Datasets() {
		if strings.Contains(normalized, strings.ToLower(ds.Name)) {
			return ds
		}
	}
	return c.First()
}

// CreatePlan converts a Statement into an execution Plan
func CreatePlan(stmt *parser.Statement, c *catalog.Catalog) *Plan {
	plan := &Plan{Type: stmt.Kind}

	if stmt.Kind != types.OpSelect {
		plan.Table = stmt.Table
		plan.DumpPath = stmt.DumpPath
		return plan
	}

	plan.Dataset = ResolveDataset(c, stmt.Normalized)
	plan.Table = plan.Dataset.Name

	if stmt.Where.Kind != parser.WhereNone {
		plan.Stages = append(plan.Stages, &FilterStage{Shape: stmt.Where})
	}
	if stmt.Projection != nil {
		plan.Stages = append(plan.Stages, &ProjectStage{Requested: stmt.Projection})
	}
	if stmt.Order != parser.OrderNone {
		plan.Stages = append(plan.Stages, &SortStage{Order: stmt.Order})
	}
	plan.Stages = append(plan.Stages, &LimitStage{Max: MaxRows})
	return plan
}

// Execute executes the query plan
func (p *Plan) Execute(rng RandomSource) *types.Result {
	switch p.Type {
	case types.OpSelect:
		return p.executeSelect()
	case types.OpCreate:
		return message(p.Type, 0, fmt.Sprintf("Table '%s' created successfully", p.Table))
	case types.OpInsert:
		n := rng.Intn(5) + 1
		return message(p.Type, n, fmt.Sprintf("%d row(s) inserted into '%s'", n, p.Table))
	case types.OpUpdate:
		n := rng.Intn(20) + 1
		return message(p.Type, n, fmt.Sprintf("%d row(s) updated in '%s'", n, p.Table))
	case types.OpDelete:
		n := rng.Intn(10) + 1
		return message(p.Type, n, fmt.Sprintf("%d row(s) deleted from '%s'", n, p.Table))
	case types.OpDrop:
		return message(p.Type, 0, fmt.Sprintf("Table '%s' dropped successfully", p.Table))
	case types.OpDump:
		return message(p.Type, 0, fmt.Sprintf("Table '%s' dumped to '%s' successfully", p.Table, p.DumpPath))
	}
	return message(p.Type, 0, fmt.Sprintf("Unsupported operation: %s", p.Type))
}

func message(kind types.OperationKind, rowCount int, msg string) *types.Result {
	return &types.Result{
		Rows:      []types.Row{},
		Columns:   []string{types.ResultColumn},
		RowCount:  rowCount,
		Operation: kind,
		Message:   msg,
	}
}

func (p *Plan) executeSelect() *types.Result {
	frame := NewFrame(p.Dataset)
	for _, stage := range p.Stages {
		frame = stage.Execute(frame)
	}

	return &types.Result{
		Rows:      frame.Rows,
		Columns:   frame.Columns,
		RowCount:  len(frame.Rows),
		Operation: types.OpSelect,
		Dataset:   p.Dataset.Name,
	}
}
