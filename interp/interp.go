package interp

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/nibble4/nibble4/cpu"
	"github.com/nibble4/nibble4/internal"
)

const (
	RUN_BUDGET = 20  // Cycle budget for one lowered snippet.
	TEMP_BASE  = 0xf // Top of the scratch window; temps descend from here.
	TEMP_SIZE  = 3   // Scratch addresses per evaluation (two operands, one result).
)

var _interp_defines = map[string]string{
	"RUN_BUDGET": fmt.Sprintf("%v", RUN_BUDGET),
	"TEMP_BASE":  fmt.Sprintf("%#x", TEMP_BASE),
	"TEMP_SIZE":  fmt.Sprintf("%v", TEMP_SIZE),
}

// Interpreter state. Variable table + the CPU that every binary
// operation is lowered onto.
type Interpreter struct {
	Verbose bool      // If set, enables verbose logging.
	Output  io.Writer // Destination of print statements; defaults to stdout.

	Cpu      *cpu.Cpu         // Reference to the CPU simulation.
	Variable map[string]uint8 // Variable table.

	tempCursor uint8 // Next scratch slot offset, modulo TEMP_SIZE.
}

// NewInterpreter creates a new interpreter with a fresh CPU.
func NewInterpreter() (in *Interpreter) {
	in = &Interpreter{
		Output:   os.Stdout,
		Cpu:      cpu.NewCpu(),
		Variable: map[string]uint8{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (in *Interpreter) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_interp_defines),
		in.Cpu.Defines(),
	)
}

// Reset clears the variable table, the scratch cursor, and the CPU.
func (in *Interpreter) Reset() {
	in.Cpu.Reset()
	clear(in.Variable)
	in.tempCursor = 0
}

// tempAddr returns the next scratch memory address, cycling down from
// TEMP_BASE.
func (in *Interpreter) tempAddr() (addr uint8) {
	addr = TEMP_BASE - in.tempCursor
	in.tempCursor = (in.tempCursor + 1) % TEMP_SIZE

	return
}

// evalBinary lowers one binary operation to a machine-code snippet,
// runs it on a reset CPU, and reads the result back from scratch
// memory.
func (in *Interpreter) evalBinary(op cpu.Opcode, a uint8, b uint8) (value uint8) {
	temp1 := in.tempAddr()
	temp2 := in.tempAddr()
	result := in.tempAddr()

	snippet := []uint8{
		uint8(cpu.OP_LDI), a,
		uint8(cpu.OP_STORE), temp1,
		uint8(cpu.OP_LDI), b,
		uint8(cpu.OP_STORE), temp2,
		uint8(cpu.OP_LOAD), temp1,
		uint8(op), temp2,
		uint8(cpu.OP_STORE), result,
		uint8(cpu.OP_HALT),
	}

	in.Cpu.Reset()
	in.Cpu.LoadProgram(snippet)
	in.Cpu.Run(RUN_BUDGET)

	value = in.Cpu.Memory.Read(result)

	if in.Verbose {
		log.Printf("interp: %v: %v, %v -> %v (temp1=0x%X temp2=0x%X result=0x%X)",
			op, a, b, value, temp1, temp2, result)
	}

	return
}

// Eval evaluates an expression tree to a nibble.
func (in *Interpreter) Eval(expr Expr) (value uint8, err error) {
	switch ex := expr.(type) {
	case Number:
		value = uint8(ex)
	case Variable:
		var ok bool
		value, ok = in.Variable[string(ex)]
		if !ok {
			err = ErrVariableUnknown(ex)
		}
	case *Binary:
		var a, b uint8
		a, err = in.Eval(ex.Lhs)
		if err != nil {
			return
		}
		b, err = in.Eval(ex.Rhs)
		if err != nil {
			return
		}
		value = in.evalBinary(ex.Op, a, b)
	}

	return
}

// Execute runs a single statement.
func (in *Interpreter) Execute(stmt Stmt) (err error) {
	switch st := stmt.(type) {
	case *LetStmt:
		var value uint8
		value, err = in.Eval(st.Expr)
		if err != nil {
			return
		}
		in.Variable[st.Name] = value
	case *AssignStmt:
		_, ok := in.Variable[st.Name]
		if !ok {
			err = ErrVariableUndeclared(st.Name)
			return
		}
		var value uint8
		value, err = in.Eval(st.Expr)
		if err != nil {
			return
		}
		in.Variable[st.Name] = value
	case *PrintStmt:
		var value uint8
		value, err = in.Eval(st.Expr)
		if err != nil {
			return
		}
		fmt.Fprintf(in.Output, "Result: %v\n", value)
	}

	return
}

// ExecuteLine parses and runs one source line. Blank lines are
// ignored.
func (in *Interpreter) ExecuteLine(line string) (err error) {
	stmt, err := ParseStatement(line)
	if err != nil {
		return
	}

	return in.Execute(stmt)
}

// Run resets the interpreter, then parses and runs an input stream,
// one statement per line. Any error aborts the run with the 1-based
// line number attached.
func (in *Interpreter) Run(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrScript{LineNo: lineno, Line: line, Err: err}
		}
	}()

	in.Reset()

	type located struct {
		lineno int
		line   string
		stmt   Stmt
	}

	var stmts []located
	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if in.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		var stmt Stmt
		stmt, err = ParseStatement(line)
		if err != nil {
			return
		}
		stmts = append(stmts, located{lineno: lineno, line: line, stmt: stmt})
	}

	for _, st := range stmts {
		lineno, line = st.lineno, st.line
		err = in.Execute(st.stmt)
		if err != nil {
			return
		}
	}

	return
}
