package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// AsmInstruction is one parsed instruction line: the canonical
// mnemonic, its optional operand, and where it came from.
type AsmInstruction struct {
	LineNo     int
	Addr       int
	Mnemonic   string
	Operand    uint8
	HasOperand bool
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"MEM_SIZE":  fmt.Sprintf("%v", MEM_SIZE),
	"ADDR_MASK": fmt.Sprintf("%#x", ADDR_MASK),
	"DATA_MASK": fmt.Sprintf("%#x", DATA_MASK),
}

// Assembler is a two-phase assembler for the nibble4 instruction set.
// Phase one strips comments, records label definitions at the current
// byte offset, and parses each line into a mnemonic plus optional
// operand; phase two (Program.Binary) encodes the opcode table.
//
// Labels are definitions only: an operand that is a bare identifier is
// a parse error, never resolved against the label table.
type Assembler struct {
	Verbose     bool             // If set, verbosely logs the assembler actions.
	Instruction []AsmInstruction // List of parsed instructions.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to byte addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the 4-bit value of a literal word. Values outside
// 0-15 are an error here, not masked.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	v64, perr := strconv.ParseUint(word, 0, 8)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 > 15 {
		err = ErrOperandRange(v64)
		return
	}

	value = uint8(v64)

	return
}

// parenEval does compile-time $(...) evaluations over the integer
// equates.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// Defines returns an iterator over the built-in equates.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	return maps.All(sysEquate)
}

// currentAddr gets the current byte address.
func (asm *Assembler) currentAddr() int {
	if len(asm.Instruction) == 0 {
		return 0
	}

	last := asm.Instruction[len(asm.Instruction)-1]

	return last.Addr + mnemonicMap[last.Mnemonic].Size()
}

// Parse parses an input stream into a Program. Any error aborts the
// whole assembly with the 1-based source line number attached; there
// is no partial output.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)
	asm.Instruction = asm.Instruction[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		// Do $() evaluations
		re := regexp.MustCompile(`\$\([^\$]*\)`)
		evaluated := re.ReplaceAllStringFunc(line, func(str string) string {
			value, _err := asm.parenEval(str[2 : len(str)-1])
			if _err != nil {
				err = _err
			}
			return fmt.Sprintf("%v", value)
		})
		if err != nil {
			return
		}

		words := strings.Fields(evaluated)
		if len(words) == 0 {
			continue
		}

		// .equ CONST VALUE
		if words[0] == ".equ" {
			if len(words) != 3 {
				err = ErrEquateSyntax
				return
			}
			_, ok := asm.Equate[words[1]]
			if ok {
				err = ErrEquateDuplicate
				return
			}
			asm.Equate[words[1]] = words[2]
			continue
		}

		// Equate substitution
		for n, word := range words {
			equate, ok := asm.Equate[word]
			if ok {
				words[n] = equate
			}
		}

		// Label definitions bind to the current byte offset.
		for strings.HasSuffix(words[0], ":") {
			label := words[0][:len(words[0])-1]
			_, ok := asm.Label[label]
			if ok {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = asm.currentAddr()
			words = words[1:]
			if len(words) == 0 {
				break
			}
		}
		if len(words) == 0 {
			continue
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instruction),
	}

	return
}

// parseWords evaluates the words of an instruction line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	mnemonic := strings.ToUpper(words[0])
	op, ok := mnemonicMap[mnemonic]
	if !ok {
		return ErrMnemonicUnknown
	}

	inst := AsmInstruction{
		LineNo:   lineno,
		Addr:     asm.currentAddr(),
		Mnemonic: op.String(),
	}

	if op.HasOperand() {
		if len(words) < 2 {
			return ErrOperandMissing
		}
		if len(words) > 2 {
			return ErrOperandExtra
		}
		inst.Operand, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		inst.HasOperand = true
	} else if len(words) > 1 {
		return ErrOperandExtra
	}

	asm.Instruction = append(asm.Instruction, inst)

	return
}

// Disassemble renders machine code as an address/mnemonic/operand
// listing, reversing the opcode table.
func Disassemble(machineCode []uint8) (listing string) {
	var sb strings.Builder

	n := 0
	for n < len(machineCode) {
		op := Opcode(machineCode[n] & DATA_MASK)
		if op.HasOperand() && n+1 < len(machineCode) {
			fmt.Fprintf(&sb, "%02X: %v 0x%X\n", n, op, machineCode[n+1]&DATA_MASK)
			n += 2
		} else {
			fmt.Fprintf(&sb, "%02X: %v\n", n, op)
			n += 1
		}
	}

	listing = sb.String()

	return
}
