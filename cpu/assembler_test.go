package cpu

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Instructions))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%v", MEM_SIZE), asm.Equate["MEM_SIZE"])
	assert.Equal(fmt.Sprintf("%#x", ADDR_MASK), asm.Equate["ADDR_MASK"])
	assert.Equal(fmt.Sprintf("%#x", DATA_MASK), asm.Equate["DATA_MASK"])

	defines := map[string]string{}
	for key, value := range asm.Defines() {
		defines[key] = value
	}
	assert.Equal(fmt.Sprintf("%v", MEM_SIZE), defines["MEM_SIZE"])
}

func TestAssemblerProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; add two numbers",
		"LDI 5",
		"STORE 0xE",
		"LDI 3",
		"STORE 0xD",
		"",
		"LOAD 0xE",
		"ADD 0xD",
		"STORE 0xF",
		"HALT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []uint8{
		uint8(OP_LDI), 0x5,
		uint8(OP_STORE), 0xe,
		uint8(OP_LDI), 0x3,
		uint8(OP_STORE), 0xd,
		uint8(OP_LOAD), 0xe,
		uint8(OP_ADD), 0xd,
		uint8(OP_STORE), 0xf,
		uint8(OP_HALT),
	}
	assert.Equal(expected, prog.Binary())
}

func TestAssemblerAliases(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"ld 1",
		"st 2",
		"jmp 0",
		"hlt",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	// Aliases and lowercase both normalize to the canonical mnemonic.
	mnemonics := []string{}
	for _, inst := range prog.Instructions {
		mnemonics = append(mnemonics, inst.Mnemonic)
	}
	assert.Equal([]string{"LOAD", "STORE", "JUMP", "HALT"}, mnemonics)

	expected := []uint8{
		uint8(OP_LOAD), 0x1,
		uint8(OP_STORE), 0x2,
		uint8(OP_JUMP), 0x0,
		uint8(OP_HALT),
	}
	assert.Equal(expected, prog.Binary())
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"start:",
		"LDI 3",
		"loop: DEC",
		"JNZ 2",
		"HALT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	// Labels bind to the byte offset of the following instruction.
	assert.Equal(0, asm.Label["start"])
	assert.Equal(2, asm.Label["loop"])

	// Address accounting: 2 bytes for operand instructions, 1 without.
	assert.Equal(0, prog.Instructions[0].Addr)
	assert.Equal(2, prog.Instructions[1].Addr)
	assert.Equal(3, prog.Instructions[2].Addr)
	assert.Equal(5, prog.Instructions[3].Addr)
}

func TestAssemblerEquates(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "2")

	program := []string{
		".equ COUNT 3",
		"LDI COUNT",
		"STORE BASE",
		"LDI $(COUNT * 2 + 1)",
		"STORE $(DATA_MASK - 1)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	expected := []uint8{
		uint8(OP_LDI), 0x3,
		uint8(OP_STORE), 0x2,
		uint8(OP_LDI), 0x7,
		uint8(OP_STORE), 0xe,
	}
	assert.Equal(expected, prog.Binary())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	type testcase struct {
		program []string
		lineno  int
		err     error
	}

	cases := []testcase{
		{[]string{"FOO 1"}, 1, ErrMnemonicUnknown},
		{[]string{"NOP", "LDI"}, 2, ErrOperandMissing},
		{[]string{"LDI 1 2"}, 1, ErrOperandExtra},
		{[]string{"HALT 1"}, 1, ErrOperandExtra},
		{[]string{"LDI 16"}, 1, ErrOperandRange(16)},
		{[]string{"LDI 0x1F"}, 1, ErrOperandRange(0x1f)},
		{[]string{"NOP", "NOP", "LDI banana"}, 3, ErrParseNumber("banana")},
		{[]string{"loop:", "JMP loop"}, 2, ErrParseNumber("loop")},
		{[]string{".equ A"}, 1, ErrEquateSyntax},
		{[]string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{[]string{"x:", "x: NOP"}, 2, ErrLabelDuplicate},
	}

	for n, tc := range cases {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(strings.Join(tc.program, "\n")))
		assert.Error(err, "case %v", n)
		assert.ErrorIs(err, tc.err, "case %v", n)

		var se ErrSyntax
		if assert.ErrorAs(err, &se, "case %v", n) {
			assert.Equal(tc.lineno, se.LineNo, "case %v", n)
		}
	}
}

func TestAssemblerBadExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader("LDI $(banana +)"))
	assert.Error(err)

	var se ErrSyntax
	if assert.ErrorAs(err, &se) {
		assert.Equal(1, se.LineNo)
	}
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	bin := []uint8{
		uint8(OP_LDI), 0x5,
		uint8(OP_STORE), 0xe,
		uint8(OP_HALT),
	}

	listing := Disassemble(bin)
	assert.Equal("00: LDI 0x5\n02: STORE 0xE\n04: HALT\n", listing)
}

func TestDisassembleRoundTrip(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"LDI 3",
		"STORE 0xE",
		"DEC",
		"JNZ 4",
		"HALT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	bin := prog.Binary()

	// A listing reassembles to the same bytes: the address column
	// parses as a label definition.
	reasm := &Assembler{}
	prog2, err := reasm.Parse(strings.NewReader(Disassemble(bin)))
	assert.NoError(err)
	assert.Equal(bin, prog2.Binary())
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("LDI 5\nHALT\n"))
	assert.NoError(err)

	inst := prog.Debug(0x1)
	if assert.NotNil(inst) {
		assert.Equal("LDI", inst.Mnemonic)
		assert.Equal(1, inst.LineNo)
	}

	inst = prog.Debug(0x2)
	if assert.NotNil(inst) {
		assert.Equal("HALT", inst.Mnemonic)
		assert.Equal(2, inst.LineNo)
	}

	assert.Nil(prog.Debug(0x9))
}
