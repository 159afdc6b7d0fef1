// Package tac models the compiler's three-address-code output: one
// instruction per arithmetic operation, each binding a temporary variable.
// The text form is one instruction per line:
//
//	t0 = 6 * 4
//	t1 = 9000 + t0
//
// Parse reads that text back, and Machine executes a Program.
package tac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrDivisionByZero is returned when the right operand of a division
// evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// Op is one of the four arithmetic operations.
type Op int

const (
	Add Op = iota // +
	Sub           // -
	Mul           // *
	Div           // /
)

// opNames is indexed by Op.
var opNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
}

// opSymbols is the inverse of opNames, used when parsing instruction text.
var opSymbols = map[string]Op{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
}

func (op Op) String() string {
	if int(op) >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Apply computes the operation over two values. Integer division truncates
// toward zero; dividing by zero returns ErrDivisionByZero.
func (op Op) Apply(left, right int64) (int64, error) {
	switch op {
	case Add:
		return left + right, nil
	case Sub:
		return left - right, nil
	case Mul:
		return left * right, nil
	case Div:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unknown operation %s", op)
	}
}

// Operand is either a temporary name or an integer constant.
type Operand struct {
	Name  string // temporary name; empty for constants
	Value int64  // constant value; ignored when Name is set
}

// Temp returns a named-temporary operand.
func Temp(name string) Operand { return Operand{Name: name} }

// Const returns a constant operand.
func Const(v int64) Operand { return Operand{Value: v} }

// IsConst reports whether the operand is a constant rather than a temporary.
func (o Operand) IsConst() bool { return o.Name == "" }

func (o Operand) String() string {
	if o.IsConst() {
		return strconv.FormatInt(o.Value, 10)
	}
	return o.Name
}

// Instruction is a single three-address operation: Dest = Left Op Right.
type Instruction struct {
	Dest  string
	Op    Op
	Left  Operand
	Right Operand
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s = %s %s %s", in.Dest, in.Left, in.Op, in.Right)
}

// Program is an instruction sequence in execution order.
type Program []Instruction

// String renders the program in its textual form, one instruction per line.
func (p Program) String() string {
	var b strings.Builder
	for _, in := range p {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads instruction text back into a Program. It accepts the exact
// format String produces — "dest = left op right", one per line — with
// blank lines ignored.
func Parse(text string) (Program, error) {
	var prog Program
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 || fields[1] != "=" {
			return nil, fmt.Errorf("malformed instruction on line %d: %q", lineNo, line)
		}

		op, ok := opSymbols[fields[3]]
		if !ok {
			return nil, fmt.Errorf("unknown operation %q on line %d", fields[3], lineNo)
		}

		left, err := parseOperand(fields[2], lineNo)
		if err != nil {
			return nil, err
		}
		right, err := parseOperand(fields[4], lineNo)
		if err != nil {
			return nil, err
		}

		prog = append(prog, Instruction{Dest: fields[0], Op: op, Left: left, Right: right})
	}
	return prog, nil
}

func parseOperand(s string, lineNo int) (Operand, error) {
	r := rune(s[0])
	if unicode.IsLetter(r) || r == '_' {
		return Temp(s), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("invalid operand %q on line %d", s, lineNo)
	}
	return Const(v), nil
}
