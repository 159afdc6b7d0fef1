// Package compiler provides an arithmetic-expression compiler: a lexer, a
// recursive-descent parser, and an evaluator that doubles as a
// three-address-code emitter.
//
// Pipeline: expression text → Lex → Parse → Eval → TAC text + value
package compiler
