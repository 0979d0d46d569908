package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zakazai/querysim/internal/lexer"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lexer.Token
	}{
		{
			name:  "Select_all_from_table",
			input: "SELECT * FROM employees;",
			expected: []lexer.Token{
				{Type: lexer.KEYWORD, Literal: "SELECT", Offset: 0},
				{Type: lexer.ASTERISK, Literal: "*", Offset: 7},
				{Type: lexer.KEYWORD, Literal: "FROM", Offset: 9},
				{Type: lexer.IDENTIFIER, Literal: "employees", Offset: 14},
				{Type: lexer.SEMICOLON, Literal: ";", Offset: 23},
			},
		},
		{
			name:  "Where_with_string",
			input: "where department = 'Engineering'",
			expected: []lexer.Token{
				{Type: lexer.KEYWORD, Literal: "WHERE", Offset: 0},
				{Type: lexer.IDENTIFIER, Literal: "department", Offset: 6},
				{Type: lexer.EQUALS, Literal: "=", Offset: 17},
				{Type: lexer.STRING, Literal: "'Engineering'", Offset: 19},
			},
		},
		{
			name:  "Comparison_with_decimal",
			input: "amount > 99.5",
			expected: []lexer.Token{
				{Type: lexer.IDENTIFIER, Literal: "amount", Offset: 0},
				{Type: lexer.SYMBOL, Literal: ">", Offset: 7},
				{Type: lexer.NUMBER, Literal: "99.5", Offset: 9},
			},
		},
		{
			name:  "Dump_to_path",
			input: `DUMP employees TO "/tmp/a.sql"`,
			expected: []lexer.Token{
				{Type: lexer.KEYWORD, Literal: "DUMP", Offset: 0},
				{Type: lexer.IDENTIFIER, Literal: "employees", Offset: 5},
				{Type: lexer.KEYWORD, Literal: "TO", Offset: 15},
				{Type: lexer.STRING, Literal: `"/tmp/a.sql"`, Offset: 18},
			},
		},
		{
			name:  "Create_table",
			input: "CREATE TABLE archive (id INT)",
			expected: []lexer.Token{
				{Type: lexer.KEYWORD, Literal: "CREATE", Offset: 0},
				{Type: lexer.KEYWORD, Literal: "TABLE", Offset: 7},
				{Type: lexer.IDENTIFIER, Literal: "archive", Offset: 13},
				{Type: lexer.LPAREN, Literal: "(", Offset: 21},
				{Type: lexer.IDENTIFIER, Literal: "id", Offset: 22},
				{Type: lexer.IDENTIFIER, Literal: "INT", Offset: 25},
				{Type: lexer.RPAREN, Literal: ")", Offset: 28},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lexer.Tokenize(tt.input))
		})
	}
}

func TestLexerEOF(t *testing.T) {
	l := lexer.New("")
	tok := l.NextToken()
	assert.Equal(t, lexer.EOF, tok.Type)
	assert.Equal(t, lexer.EOF, l.NextToken().Type)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single_without_terminator",
			input: "SELECT * FROM sales",
			want:  []string{"SELECT * FROM sales"},
		},
		{
			name:  "two_statements",
			input: "SELECT * FROM sales; DROP TABLE sales;",
			want:  []string{"SELECT * FROM sales", "DROP TABLE sales"},
		},
		{
			name:  "semicolon_inside_string",
			input: "DUMP sales TO '/tmp/a;b.sql'; SELECT 1",
			want:  []string{"DUMP sales TO '/tmp/a;b.sql'", "SELECT 1"},
		},
		{
			name:  "empty_statements_dropped",
			input: " ; ;\n",
			want:  nil,
		},
		{
			name:  "unterminated_string",
			input: "SELECT 'abc; def",
			want:  []string{"SELECT 'abc; def"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexer.Split(tt.input))
		})
	}
}
