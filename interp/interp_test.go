package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpreterArithmetic(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()
	out := &bytes.Buffer{}
	in.Output = out

	program := []string{
		"let a = 5",
		"let b = 3",
		"let result = a + b",
		"print(result)",
	}

	err := in.Run(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(uint8(8), in.Variable["result"])
	assert.Equal("Result: 8\n", out.String())
}

func TestInterpreterLogic(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()
	out := &bytes.Buffer{}
	in.Output = out

	program := []string{
		"let a = 12",
		"let b = 5",
		"let r = a & b",
		"print(r)",
	}

	err := in.Run(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(uint8(4), in.Variable["r"])
	assert.Equal("Result: 4\n", out.String())
}

func TestInterpreterChain(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()
	out := &bytes.Buffer{}
	in.Output = out

	program := []string{
		"let a = 8",
		"let b = 3",
		"let c = 2",
		"let result = a - b + c",
		"print(result)",
	}

	err := in.Run(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(uint8(7), in.Variable["result"])
}

func TestInterpreterAssign(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()

	program := []string{
		"let a = 2",
		"a = a + 1",
	}

	err := in.Run(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(uint8(3), in.Variable["a"])
}

func TestInterpreterWrap(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()

	// 4-bit arithmetic wraps.
	err := in.Run(strings.NewReader("let a = 15 + 1"))
	assert.NoError(err)
	assert.Equal(uint8(0), in.Variable["a"])

	err = in.Run(strings.NewReader("let a = 5 - 7"))
	assert.NoError(err)
	assert.Equal(uint8(14), in.Variable["a"])
}

func TestInterpreterErrScript(t *testing.T) {
	assert := assert.New(t)

	type testcase struct {
		program []string
		lineno  int
		err     error
	}

	cases := []testcase{
		{[]string{"let a = 1", "b = 2"}, 2, ErrVariableUndeclared("b")},
		{[]string{"print(x)"}, 1, ErrVariableUnknown("x")},
		{[]string{"let a = 20"}, 1, ErrNumberRange(20)},
		{[]string{"nonsense here"}, 1, ErrStatement("nonsense here")},
	}

	for n, tc := range cases {
		in := NewInterpreter()
		err := in.Run(strings.NewReader(strings.Join(tc.program, "\n")))
		assert.Error(err, "case %v", n)
		assert.ErrorIs(err, tc.err, "case %v", n)

		var se ErrScript
		if assert.ErrorAs(err, &se, "case %v", n) {
			assert.Equal(tc.lineno, se.LineNo, "case %v", n)
		}
	}
}

func TestInterpreterExecuteLine(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()

	// Statement by statement, the variable table persists and a
	// failing line does not disturb it.
	assert.NoError(in.ExecuteLine("let a = 9"))
	assert.Error(in.ExecuteLine("let b = a + nope"))
	assert.NoError(in.ExecuteLine("let c = a - 2"))
	assert.Equal(uint8(7), in.Variable["c"])
	_, ok := in.Variable["b"]
	assert.False(ok)
}

func TestInterpreterDefines(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter()

	defines := map[string]string{}
	for key, value := range in.Defines() {
		defines[key] = value
	}
	assert.Equal("20", defines["RUN_BUDGET"])
	assert.Equal("16", defines["MEM_SIZE"])
}
