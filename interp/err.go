package interp

import (
	"errors"

	"github.com/nibble4/nibble4/translate"
)

var f = translate.From

var (
	// Parser errors
	ErrLetSyntax    = errors.New(f("invalid let statement, use: let x = expression"))
	ErrAssignSyntax = errors.New(f("invalid assignment, use: variable = expression"))
)

type ErrStatement string

func (err ErrStatement) Error() string {
	return f("unknown statement '%v'", string(err))
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("invalid expression '%v'", string(err))
}

type ErrNumberRange uint64

func (err ErrNumberRange) Error() string {
	return f("number %v exceeds 4-bit range (0-15)", uint64(err))
}

type ErrVariableUnknown string

func (err ErrVariableUnknown) Error() string {
	return f("variable '%v' not found", string(err))
}

type ErrVariableUndeclared string

func (err ErrVariableUndeclared) Error() string {
	return f("variable '%v' not declared", string(err))
}

// ErrScript indicates the location of a script error.
type ErrScript struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrScript) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
