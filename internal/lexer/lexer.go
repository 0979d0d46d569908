package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType represents the type of a token
type TokenType int

const (
	// EOF represents the end of input
	EOF TokenType = iota
	// KEYWORD represents a keyword token
	KEYWORD
	// IDENTIFIER represents an identifier token
	IDENTIFIER
	// NUMBER represents a number token
	NUMBER
	// STRING represents a quoted string token
	STRING
	// SYMBOL represents any other single character
	SYMBOL
	// LPAREN represents a left parenthesis
	LPAREN
	// RPAREN represents a right parenthesis
	RPAREN
	// COMMA represents a comma
	COMMA
	// SEMICOLON represents a statement terminator
	SEMICOLON
	// ASTERISK represents an asterisk
	ASTERISK
	// EQUALS represents an equals sign
	EQUALS
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Offset  int // byte offset of the token in the input
}

// Lexer represents a lexical analyzer
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// New creates a new lexer with the given input
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// NextToken returns the next token, or an EOF token once input is exhausted
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()
	offset := l.position

	switch l.ch {
	case '(':
		tok = Token{Type: LPAREN, Literal: string(l.ch)}
	case ')':
		tok = Token{Type: RPAREN, Literal: string(l.ch)}
	case ',':
		tok = Token{Type: COMMA, Literal: string(l.ch)}
	case ';':
		tok = Token{Type: SEMICOLON, Literal: string(l.ch)}
	case '*':
		tok = Token{Type: ASTERISK, Literal: string(l.ch)}
	case '=':
		tok = Token{Type: EQUALS, Literal: string(l.ch)}
	case 0:
		if l.position >= len(l.input) {
			return Token{Type: EOF, Literal: "", Offset: len(l.input)}
		}
		tok = Token{Type: SYMBOL, Literal: string(l.ch)}
	case '"', '\'':
		quote := l.ch
		l.readChar()
		literal := l.readString(quote)
		tok = Token{Type: STRING, Literal: fmt.Sprintf("%c%s%c", quote, literal, quote)}
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Offset = offset
			upperLiteral := strings.ToUpper(tok.Literal)
			if isKeyword(upperLiteral) {
				tok.Type = KEYWORD
				tok.Literal = upperLiteral
			} else {
				tok.Type = IDENTIFIER
			}
			return tok
		} else if isDigit(l.ch) {
			tok.Type = NUMBER
			tok.Literal = l.readNumber()
			tok.Offset = offset
			return tok
		}
		tok = Token{Type: SYMBOL, Literal: string(l.ch)}
	}

	tok.Offset = offset
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString stops on the closing quote, leaving it as the current char.
// An unterminated string runs to the end of input.
func (l *Lexer) readString(quote byte) string {
	position := l.position
	for l.position < len(l.input) && l.ch != quote {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	end := l.position
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[position:end]
}

func isLetter(ch byte) bool {
	return ch == '_' || unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

var keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "ORDER": true, "BY": true,
	"ASC": true, "DESC": true, "LIMIT": true, "GROUP": true, "AND": true, "OR": true,
	"INSERT": true, "INTO": true, "VALUES": true, "UPDATE": true, "SET": true,
	"DELETE": true, "CREATE": true, "TABLE": true, "DROP": true, "DUMP": true,
	"TO": true, "ALTER": true, "NULL": true,
}

func isKeyword(word string) bool {
	return keywords[word]
}

func (t Token) String() string {
	return fmt.Sprintf("Token{Type: %v, Literal: %q}", t.Type, t.Literal)
}

// Tokenize returns every token of input, excluding the trailing EOF
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Split breaks input into statements on semicolons that sit outside quoted
// strings. Statements are trimmed; empty ones are dropped.
func Split(input string) []string {
	var statements []string
	start := 0
	add := func(end int) {
		if stmt := strings.TrimSpace(input[start:end]); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	l := New(input)
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			add(len(input))
			return statements
		}
		if tok.Type == SEMICOLON {
			add(tok.Offset)
			start = tok.Offset + 1
		}
	}
}
