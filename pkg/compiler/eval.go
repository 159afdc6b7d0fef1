package compiler

import (
	"fmt"

	"exprc/pkg/tac"
)

// opcodes maps arithmetic token types to their TAC operation.
var opcodes = map[TokenType]tac.Op{
	PLUS:  tac.Add,
	MINUS: tac.Sub,
	STAR:  tac.Mul,
	SLASH: tac.Div,
}

// Evaluator walks an expression tree bottom-up, computing its value and
// recording one three-address instruction per operator node.
type Evaluator struct {
	insts tac.Program
}

// Eval evaluates root and returns its value together with the emitted
// three-address program. Instructions appear in strict post-order: both
// children of a node are emitted before the node's own instruction, left
// child before right. A bare literal emits nothing.
//
// On error no program is returned; in particular a division by zero
// (tac.ErrDivisionByZero) discards everything emitted so far.
func Eval(root Expr) (int64, tac.Program, error) {
	ev := &Evaluator{}
	val, err := ev.eval(root)
	if err != nil {
		return 0, nil, err
	}
	return val, ev.insts, nil
}

func (ev *Evaluator) eval(e Expr) (int64, error) {
	switch n := e.(type) {
	case *Literal:
		return n.Value, nil

	case *BinaryExpr:
		op, ok := opcodes[n.Op]
		if !ok {
			return 0, fmt.Errorf("unknown operator/operand %s", n.Op)
		}

		left, err := ev.eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := ev.eval(n.Right)
		if err != nil {
			return 0, err
		}

		in := tac.Instruction{Dest: n.Name, Op: op, Left: operand(n.Left), Right: operand(n.Right)}
		result, err := op.Apply(left, right)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", in, err)
		}
		ev.insts = append(ev.insts, in)
		return result, nil

	default:
		return 0, fmt.Errorf("unknown operator/operand %T", e)
	}
}

// operand renders a child node as a TAC operand: the literal value for
// leaves, the construction-time temporary name for operator nodes.
func operand(e Expr) tac.Operand {
	switch n := e.(type) {
	case *Literal:
		return tac.Const(n.Value)
	case *BinaryExpr:
		return tac.Temp(n.Name)
	}
	return tac.Operand{}
}
