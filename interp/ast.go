package interp

import (
	"github.com/nibble4/nibble4/cpu"
)

// Expr is a node of the expression tree.
type Expr interface {
	expr()
}

// Number is an integer literal leaf, 0-15.
type Number uint8

// Variable is an identifier leaf.
type Variable string

// Binary is an operator node. Op is the machine instruction the
// operator lowers to.
type Binary struct {
	Op  cpu.Opcode
	Lhs Expr
	Rhs Expr
}

func (Number) expr()   {}
func (Variable) expr() {}
func (*Binary) expr()  {}

// Stmt is a single parsed statement.
type Stmt interface {
	stmt()
}

// LetStmt declares a variable: `let NAME = EXPR`.
type LetStmt struct {
	Name string
	Expr Expr
}

// AssignStmt reassigns an already declared variable: `NAME = EXPR`.
type AssignStmt struct {
	Name string
	Expr Expr
}

// PrintStmt evaluates and prints an expression: `print(EXPR)`.
type PrintStmt struct {
	Expr Expr
}

func (*LetStmt) stmt()    {}
func (*AssignStmt) stmt() {}
func (*PrintStmt) stmt()  {}
