package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// maxNestingDepth bounds recursion on parenthesised sub-expressions so a
// pathological input cannot blow the call stack.
const maxNestingDepth = 1024

// Parser consumes the flat token slice produced by the Lexer and builds an
// expression AST.
//
// Grammar:
//
//	expression     = additive
//	additive       = multiplicative (("+" | "-") multiplicative)*
//	multiplicative = primary (("*" | "/") primary)*
//	primary        = NUMBER | "(" expression ")"
type Parser struct {
	tokens      []Token
	pos         int
	depth       int // current parenthesis nesting depth
	nextTemp    int // monotonic counter backing newTemp
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError wraps an error message with the source line where the token appears.
func (p *Parser) fmtError(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return fmt.Errorf("line %d: %s\n  |> %s", tok.Line, msg, snippet)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.fmtError(tok, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

// newTemp returns the next temporary variable name. Temporaries are handed
// out as operator nodes are assembled, bottom-up, so within one parse the
// names run t0, t1, t2, ... with no gaps.
func (p *Parser) newTemp() string {
	name := fmt.Sprintf("t%d", p.nextTemp)
	p.nextTemp++
	return name
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAdditive()
}

// parseAdditive handles + and -. The accumulate-into-expr loop makes the
// operators left-associative: "9 - 3 - 2" parses as "(9 - 3) - 2".
func (p *Parser) parseAdditive() (Expr, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance().Type
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Name: p.newTemp(), Left: expr, Right: right}
	}
	return expr, nil
}

// parseMultiplicative handles * and /, one precedence level below additive.
func (p *Parser) parseMultiplicative() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == STAR || p.peek().Type == SLASH {
		op := p.advance().Type
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Name: p.newTemp(), Left: expr, Right: right}
	}
	return expr, nil
}

// parsePrimary handles number literals and parenthesised expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.advance()
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.fmtError(tok, "integer %q out of 64-bit range", tok.Lexeme)
		}
		return &Literal{Value: val}, nil

	case LPAREN:
		p.advance()
		p.depth++
		if p.depth > maxNestingDepth {
			return nil, p.fmtError(tok, "expression nested too deeply")
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		p.depth--
		return expr, nil

	default:
		return nil, p.fmtError(tok, "number or '(' expected, got %s (%q)", tok.Type, tok.Lexeme)
	}
}

// Parse builds the AST for a single complete expression. The whole input
// must be consumed; trailing tokens are a syntax error.
func Parse(tokens []Token, rawSource string) (Expr, error) {
	p := NewParser(tokens, rawSource)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, p.fmtError(tok, "unexpected input after expression: %s (%q)", tok.Type, tok.Lexeme)
	}
	return expr, nil
}
