package interp

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nibble4/nibble4/cpu"
)

// binaryOp maps an expression operator to the instruction it lowers
// to.
var binaryOp = map[string]cpu.Opcode{
	"+": cpu.OP_ADD,
	"-": cpu.OP_SUB,
	"&": cpu.OP_AND,
	"|": cpu.OP_OR,
	"^": cpu.OP_XOR,
}

// Operator groups, loosest binding first. Splitting at the rightmost
// occurrence within a group makes same-precedence chains group left to
// right: `a - b + c` parses as `(a - b) + c`.
var opGroups = [][]string{
	{" + ", " - "},
	{" & ", " | ", " ^ "},
}

// ParseStatement parses one source line into a statement.
func ParseStatement(input string) (stmt Stmt, err error) {
	input = strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(input, "let "):
		return parseLet(input)
	case strings.HasPrefix(input, "print(") && strings.HasSuffix(input, ")"):
		return parsePrint(input)
	case strings.Contains(input, " = "):
		return parseAssign(input)
	}

	err = ErrStatement(input)

	return
}

// parseLet parses `let NAME = EXPR`.
func parseLet(input string) (stmt Stmt, err error) {
	parts := strings.SplitN(input[len("let "):], " = ", 2)
	if len(parts) != 2 {
		err = ErrLetSyntax
		return
	}

	expr, err := ParseExpression(parts[1])
	if err != nil {
		return
	}

	stmt = &LetStmt{Name: strings.TrimSpace(parts[0]), Expr: expr}

	return
}

// parseAssign parses `NAME = EXPR`.
func parseAssign(input string) (stmt Stmt, err error) {
	parts := strings.SplitN(input, " = ", 2)
	if len(parts) != 2 {
		err = ErrAssignSyntax
		return
	}

	expr, err := ParseExpression(parts[1])
	if err != nil {
		return
	}

	stmt = &AssignStmt{Name: strings.TrimSpace(parts[0]), Expr: expr}

	return
}

// parsePrint parses `print(EXPR)`.
func parsePrint(input string) (stmt Stmt, err error) {
	inner := input[len("print(") : len(input)-1]

	expr, err := ParseExpression(inner)
	if err != nil {
		return
	}

	stmt = &PrintStmt{Expr: expr}

	return
}

// ParseExpression parses a space-delimited expression into a tree.
// Leaves are decimal literals (0-15) or identifiers.
func ParseExpression(input string) (expr Expr, err error) {
	input = strings.TrimSpace(input)

	for _, group := range opGroups {
		pos := -1
		var found string
		for _, op := range group {
			at := strings.LastIndex(input, op)
			if at > pos {
				pos = at
				found = op
			}
		}
		if pos < 0 {
			continue
		}

		var lhs, rhs Expr
		lhs, err = ParseExpression(input[:pos])
		if err != nil {
			return
		}
		rhs, err = ParseExpression(input[pos+len(found):])
		if err != nil {
			return
		}

		expr = &Binary{
			Op:  binaryOp[strings.TrimSpace(found)],
			Lhs: lhs,
			Rhs: rhs,
		}

		return
	}

	if v64, perr := strconv.ParseUint(input, 10, 8); perr == nil {
		if v64 > 15 {
			err = ErrNumberRange(v64)
			return
		}
		expr = Number(v64)
		return
	}

	if isIdentifier(input) {
		expr = Variable(input)
		return
	}

	err = ErrExpression(input)

	return
}

// isIdentifier reports whether a word is a plain identifier.
func isIdentifier(word string) bool {
	if len(word) == 0 {
		return false
	}

	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}
