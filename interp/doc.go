// Package interp implements a small expression language that compiles
// onto the nibble4 CPU. Statements are `let NAME = EXPR`,
// `NAME = EXPR` (the name must already be declared), and
// `print(EXPR)`. Every binary operation in an expression is lowered to
// a short machine-code snippet, run on a fresh CPU, and the result is
// read back from memory; nothing survives an evaluation except the
// variable table.
package interp
