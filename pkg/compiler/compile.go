package compiler

import (
	"fmt"
	"os"

	"exprc/pkg/tac"
)

// Result is everything one compilation run produces.
type Result struct {
	Value int64       // the expression's numeric value
	IR    tac.Program // one instruction per operator node, in emission order
}

// Compile runs the whole pipeline over src: lex, parse, evaluate/emit.
// As a consistency check the emitted program is then executed on the TAC
// machine and its result compared against the tree evaluation.
func Compile(src string) (*Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		return nil, err
	}

	root, err := Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return nil, err
	}

	value, ir, err := Eval(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eval error:", err)
		return nil, err
	}

	if err := verifyEmitted(value, ir); err != nil {
		return nil, err
	}

	return &Result{Value: value, IR: ir}, nil
}

// verifyEmitted executes the emitted program on the TAC machine and compares
// its result with the tree evaluation. A bare literal emits no instructions;
// there is nothing to re-run then.
func verifyEmitted(value int64, ir tac.Program) error {
	if len(ir) == 0 {
		return nil
	}
	got, err := tac.NewMachine().Run(ir)
	if err != nil {
		return fmt.Errorf("executing emitted program: %w", err)
	}
	if got != value {
		return fmt.Errorf("emitted program computed %d, tree evaluation %d", got, value)
	}
	return nil
}
