package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zakazai/querysim/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  types.OperationKind
	}{
		{"CREATE TABLE archive (id INT)", types.OpCreate},
		{"  insert into t values (1)", types.OpInsert},
		{"UPDATE employees SET salary = 1", types.OpUpdate},
		{"DELETE FROM employees WHERE id = 1", types.OpDelete},
		{"DROP TABLE sales", types.OpDrop},
		{"DUMP employees TO '/tmp/out.sql'", types.OpDump},
		{"SELECT * FROM employees", types.OpSelect},
		{"show tables", types.OpSelect},
		{"createfoo", types.OpCreate},
		{"", types.OpSelect},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(Normalize(tt.input)))
		})
	}
}

func TestExtractTable(t *testing.T) {
	tests := []struct {
		name  string
		kind  types.OperationKind
		input string
		want  string
	}{
		{"create", types.OpCreate, "create table archive (id int)", "archive"},
		{"create_without_table_keyword", types.OpCreate, "create index idx", UnknownTable},
		{"insert", types.OpInsert, "insert into logs values (1)", "logs"},
		{"insert_without_into", types.OpInsert, "insert logs", UnknownTable},
		{"update", types.OpUpdate, "update employees set a = 1", "employees"},
		{"delete", types.OpDelete, "delete from employees where id = 1", "employees"},
		{"delete_bare", types.OpDelete, "delete", UnknownTable},
		{"drop", types.OpDrop, "drop table sales", "sales"},
		{"dump", types.OpDump, "dump employees to '/tmp/x'", "employees"},
		{"select_has_no_table_pattern", types.OpSelect, "select * from x", UnknownTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTable(tt.kind, tt.input))
		})
	}
}

func TestExtractDumpPath(t *testing.T) {
	assert.Equal(t, "/tmp/out.sql", ExtractDumpPath("dump employees to '/tmp/out.sql'"))
	assert.Equal(t, "/data/e.sql", ExtractDumpPath(`dump employees to "/data/e.sql"`))
	assert.Equal(t, DefaultDumpPath, ExtractDumpPath("dump employees"))
	assert.Equal(t, DefaultDumpPath, ExtractDumpPath("dump employees to /tmp/unquoted"))
}

func TestParseWhere(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  WhereShape
	}{
		{"no_where", "select * from employees", WhereShape{Kind: WhereNone}},
		{"salary", "select * from employees where salary > 80000", WhereShape{Kind: WhereSalaryAbove, Threshold: 80000}},
		{"salary_integer_part_only", "select * from employees where salary > 80000.75", WhereShape{Kind: WhereSalaryAbove, Threshold: 80000}},
		{"salary_without_number", "select * from employees where salary > x", WhereShape{Kind: WhereSalaryAbove, Threshold: 0}},
		{"salary_needs_space_before_operator", "select * from employees where salary>5", WhereShape{Kind: WhereNone}},
		{"amount_decimal", "select * from sales where amount > 99.5", WhereShape{Kind: WhereAmountAbove, Threshold: 99.5}},
		{"stock", "select * from products where stock_quantity < 50", WhereShape{Kind: WhereStockBelow, Threshold: 50}},
		{"stock_default", "select * from products where stock_quantity < many", WhereShape{Kind: WhereStockBelow, Threshold: 999}},
		{"department", "select * from employees where department = 'engineering'", WhereShape{Kind: WhereDepartmentEngineering}},
		{"department_other_value", "select * from employees where department = 'sales'", WhereShape{Kind: WhereNone}},
		{"first_match_wins", "select * from x where amount > 5 and salary > 10", WhereShape{Kind: WhereSalaryAbove, Threshold: 10}},
		{"unknown_shape", "select * from employees where id = 1", WhereShape{Kind: WhereNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseWhere(tt.input))
		})
	}
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"star", "select * from employees", nil},
		{"columns", "select name, salary from employees", []string{"name", "salary"}},
		{"aggregate_token", "select department, avg(salary) as avg_salary from employees", []string{"department", "avg(salary) as avg_salary"}},
		{"no_from", "select name, salary", nil},
		{"no_select", "show employees", nil},
		{"star_without_space", "select* from employees", []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseProjection(tt.input))
		})
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input string
		want  OrderKind
	}{
		{"select * from employees", OrderNone},
		{"select * from employees order by salary desc", OrderSalaryDesc},
		{"select * from sales order by amount desc", OrderAmountDesc},
		{"select * from employees order by name", OrderNameAsc},
		{"select * from products order by product_name desc", OrderNameAsc},
		{"select * from employees order by salary", OrderNone},
		{"select * from employees order by salary asc", OrderNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOrder(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	stmt := Parse("  SELECT name, salary FROM employees WHERE salary > 80000 ORDER BY salary DESC ")
	assert.Equal(t, &Statement{
		Kind:       types.OpSelect,
		Normalized: "select name, salary from employees where salary > 80000 order by salary desc",
		Where:      WhereShape{Kind: WhereSalaryAbove, Threshold: 80000},
		Projection: []string{"name", "salary"},
		Order:      OrderSalaryDesc,
	}, stmt)

	stmt = Parse("DUMP employees TO '/tmp/out.sql'")
	assert.Equal(t, types.OpDump, stmt.Kind)
	assert.Equal(t, "employees", stmt.Table)
	assert.Equal(t, "/tmp/out.sql", stmt.DumpPath)

	stmt = Parse("DROP TABLE")
	assert.Equal(t, types.OpDrop, stmt.Kind)
	assert.Equal(t, UnknownTable, stmt.Table)
	assert.Empty(t, stmt.DumpPath)
}
