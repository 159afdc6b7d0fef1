package compiler

import (
	"fmt"
	"strconv"
)

//  Expression nodes

// Expr is implemented by every node that produces a value. The tree is
// strictly binary: every BinaryExpr owns exactly two children, every leaf
// is a Literal.
type Expr interface {
	exprNode()
	String() string
}

// Literal is an integer constant. It is always a leaf.
//
//	9000 + (6 * 4)
//	^^^^  Literal{Value: 9000}
type Literal struct {
	Value int64
}

func (*Literal) exprNode()        {}
func (l *Literal) String() string { return strconv.FormatInt(l.Value, 10) }

// BinaryExpr represents one arithmetic operation: Left Op Right.
//
// Name is the temporary variable ("t0", "t1", ...) assigned when the parser
// built the node. It appears only in the emitted three-address code, never
// in evaluation.
type BinaryExpr struct {
	Op    TokenType
	Name  string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
