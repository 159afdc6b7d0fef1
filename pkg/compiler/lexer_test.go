package compiler

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
		wantErr  bool
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Basic Tokens",
			input: "+ - * / ( )",
			expected: []Token{
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: STAR, Lexeme: "*", Line: 1},
				{Type: SLASH, Lexeme: "/", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Numbers",
			input: "0 7 9000",
			expected: []Token{
				{Type: NUMBER, Lexeme: "0", Line: 1},
				{Type: NUMBER, Lexeme: "7", Line: 1},
				{Type: NUMBER, Lexeme: "9000", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "No Whitespace",
			input: "1+2*(3)",
			expected: []Token{
				{Type: NUMBER, Lexeme: "1", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: NUMBER, Lexeme: "2", Line: 1},
				{Type: STAR, Lexeme: "*", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: NUMBER, Lexeme: "3", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Line Tracking",
			input: "1 +\n2",
			expected: []Token{
				{Type: NUMBER, Lexeme: "1", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: NUMBER, Lexeme: "2", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:  "Line Comment",
			input: "1 + 2 // trailing note",
			expected: []Token{
				{Type: NUMBER, Lexeme: "1", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: NUMBER, Lexeme: "2", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Block Comment",
			input: "1 /* the\naddend */ + 2",
			expected: []Token{
				{Type: NUMBER, Lexeme: "1", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 2},
				{Type: NUMBER, Lexeme: "2", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:    "Illegal Character",
			input:   "1 + x",
			wantErr: true,
		},
		{
			name:    "Unterminated Block Comment",
			input:   "1 /* oops",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lex(%q): expected error, got %v", tt.input, tokens)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lex(%q): unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Lex(%q)\n got: %v\nwant: %v", tt.input, tokens, tt.expected)
			}
		})
	}
}
