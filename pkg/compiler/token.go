package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	NUMBER // decimal integer literal

	// Paired delimiters
	LPAREN // (
	RPAREN // )

	// Arithmetic operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:    "EOF",
	NUMBER: "NUMBER",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	PLUS:   "PLUS",
	MINUS:  "MINUS",
	STAR:   "STAR",
	SLASH:  "SLASH",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
