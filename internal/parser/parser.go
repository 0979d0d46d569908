// Package parser recognizes the small fixed set of clause shapes the query
// runner understands. It is not a SQL grammar: every query parses, and
// anything outside the known shapes is simply left unrecognized.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zakazai/querysim/internal/types"
)

// Sentinel values substituted when extraction fails
const (
	UnknownTable    = "unknown_table"
	DefaultDumpPath = "/backup/dump.sql"
)

// WhereKind tags a recognized WHERE shape
type WhereKind int

const (
	WhereNone WhereKind = iota
	WhereSalaryAbove
	WhereAmountAbove
	WhereStockBelow
	WhereDepartmentEngineering
)

// WhereShape is the recognized filter, with its parsed threshold where the shape has one
type WhereShape struct {
	Kind      WhereKind
	Threshold float64
}

// OrderKind tags a recognized ORDER BY shape
type OrderKind int

const (
	OrderNone OrderKind = iota
	OrderSalaryDesc
	OrderAmountDesc
	OrderNameAsc
)

// Statement is everything recognized in one query
type Statement struct {
	Kind       types.OperationKind
	Normalized string

	// Non-SELECT
	Table    string
	DumpPath string

	// SELECT; a nil Projection keeps every column
	Where      WhereShape
	Projection []string
	Order      OrderKind
}

// Normalize trims and lower-cases a query; all matching works on this form
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

var operationPrefixes = []struct {
	prefix string
	kind   types.OperationKind
}{
	{"create", types.OpCreate},
	{"insert", types.OpInsert},
	{"update", types.OpUpdate},
	{"delete", types.OpDelete},
	{"drop", types.OpDrop},
	{"dump", types.OpDump},
}

// Classify infers the operation kind from the start of a normalized query
func Classify(normalized string) types.OperationKind {
	for _, p := range operationPrefixes {
		if strings.HasPrefix(normalized, p.prefix) {
			return p.kind
		}
	}
	return types.OpSelect
}

var tablePatterns = map[types.OperationKind]*regexp.Regexp{
	types.OpCreate: regexp.MustCompile(`create\s+table\s+(\w+)`),
	types.OpInsert: regexp.MustCompile(`insert\s+into\s+(\w+)`),
	types.OpUpdate: regexp.MustCompile(`update\s+(\w+)`),
	types.OpDelete: regexp.MustCompile(`delete\s+from\s+(\w+)`),
	types.OpDrop:   regexp.MustCompile(`drop\s+table\s+(\w+)`),
	types.OpDump:   regexp.MustCompile(`dump\s+(\w+)`),
}

var dumpPathPattern = regexp.MustCompile(`to\s+(?:'([^']+)'|"([^"]+)")`)

// ExtractTable returns the table named by a non-SELECT query, or UnknownTable
func ExtractTable(kind types.OperationKind, normalized string) string {
	re, ok := tablePatterns[kind]
	if !ok {
		return UnknownTable
	}
	if m := re.FindStringSubmatch(normalized); m != nil {
		return m[1]
	}
	return UnknownTable
}

// ExtractDumpPath returns the destination of a DUMP query, or DefaultDumpPath
func ExtractDumpPath(normalized string) string {
	m := dumpPathPattern.FindStringSubmatch(normalized)
	if m == nil {
		return DefaultDumpPath
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

type whereMatcher struct {
	marker   string
	kind     WhereKind
	pattern  *regexp.Regexp
	fallback float64
}

// Checked in order; the first marker found in the clause wins.
var whereMatchers = []whereMatcher{
	{marker: "salary >", kind: WhereSalaryAbove, pattern: regexp.MustCompile(`salary\s*>\s*(\d+)`)},
	{marker: "amount >", kind: WhereAmountAbove, pattern: regexp.MustCompile(`amount\s*>\s*(\d+\.?\d*)`)},
	{marker: "stock_quantity <", kind: WhereStockBelow, pattern: regexp.MustCompile(`stock_quantity\s*<\s*(\d+)`), fallback: 999},
	{marker: "department = 'engineering'", kind: WhereDepartmentEngineering},
}

// ParseWhere recognizes the WHERE shape of a normalized query
func ParseWhere(normalized string) WhereShape {
	idx := strings.Index(normalized, "where")
	if idx < 0 {
		return WhereShape{Kind: WhereNone}
	}
	clause := strings.TrimSpace(normalized[idx+len("where"):])

	for _, m := range whereMatchers {
		if !strings.Contains(clause, m.marker) {
			continue
		}
		shape := WhereShape{Kind: m.kind, Threshold: m.fallback}
		if m.pattern != nil {
			if sub := m.pattern.FindStringSubmatch(clause); sub != nil {
				if v, err := strconv.ParseFloat(sub[1], 64); err == nil {
					shape.Threshold = v
				}
			}
		}
		return shape
	}
	return WhereShape{Kind: WhereNone}
}

// ParseProjection returns the requested select-list tokens, or nil when every
// column is kept (no select, "select *", or no FROM after SELECT)
func ParseProjection(normalized string) []string {
	if !strings.Contains(normalized, "select") || strings.Contains(normalized, "select *") {
		return nil
	}
	selectIdx := strings.Index(normalized, "select")
	fromIdx := strings.Index(normalized, "from")
	if fromIdx <= selectIdx {
		return nil
	}

	clause := strings.TrimSpace(normalized[selectIdx+len("select") : fromIdx])
	parts := strings.Split(clause, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ParseOrder recognizes the ORDER BY shape of a normalized query
func ParseOrder(normalized string) OrderKind {
	idx := strings.Index(normalized, "order by")
	if idx < 0 {
		return OrderNone
	}
	clause := strings.TrimSpace(normalized[idx+len("order by"):])

	switch {
	case strings.Contains(clause, "salary desc"):
		return OrderSalaryDesc
	case strings.Contains(clause, "amount desc"):
		return OrderAmountDesc
	case strings.Contains(clause, "name"):
		return OrderNameAsc
	}
	return OrderNone
}

// Parse recognizes everything the runner understands about query
func Parse(query string) *Statement {
	normalized := Normalize(query)
	stmt := &Statement{
		Kind:       Classify(normalized),
		Normalized: normalized,
	}

	if stmt.Kind != types.OpSelect {
		stmt.Table = ExtractTable(stmt.Kind, normalized)
		if stmt.Kind == types.OpDump {
			stmt.DumpPath = ExtractDumpPath(normalized)
		}
		return stmt
	}

	stmt.Where = ParseWhere(normalized)
	stmt.Projection = ParseProjection(normalized)
	stmt.Order = ParseOrder(normalized)
	return stmt
}
