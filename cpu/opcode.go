package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction identifier occupying the first byte
// of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0x0) // NOP
	OP_LOAD  = Opcode(0x1) // LOAD
	OP_STORE = Opcode(0x2) // STORE
	OP_ADD   = Opcode(0x3) // ADD
	OP_SUB   = Opcode(0x4) // SUB
	OP_AND   = Opcode(0x5) // AND
	OP_OR    = Opcode(0x6) // OR
	OP_XOR   = Opcode(0x7) // XOR
	OP_JUMP  = Opcode(0x8) // JUMP
	OP_JZ    = Opcode(0x9) // JZ
	OP_LDI   = Opcode(0xa) // LDI
	OP_INC   = Opcode(0xb) // INC
	OP_DEC   = Opcode(0xc) // DEC
	OP_CMP   = Opcode(0xd) // CMP
	OP_JNZ   = Opcode(0xe) // JNZ
	OP_HALT  = Opcode(0xf) // HALT
)

// HasOperand reports whether the instruction carries an operand byte.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_NOP, OP_INC, OP_DEC, OP_HALT:
		return false
	}

	return true
}

// Size returns the instruction length in bytes.
func (op Opcode) Size() int {
	if op.HasOperand() {
		return 2
	}

	return 1
}

// skipsOperand reports whether the post-execute advance must step past
// an operand byte. Jumps manage the program counter themselves.
func (op Opcode) skipsOperand() bool {
	switch op {
	case OP_JUMP, OP_JZ, OP_JNZ:
		return false
	}

	return op.HasOperand()
}

// mnemonicMap maps source mnemonics, including aliases, to opcodes.
var mnemonicMap = map[string]Opcode{
	"NOP":   OP_NOP,
	"LOAD":  OP_LOAD,
	"LD":    OP_LOAD,
	"STORE": OP_STORE,
	"ST":    OP_STORE,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"AND":   OP_AND,
	"OR":    OP_OR,
	"XOR":   OP_XOR,
	"JUMP":  OP_JUMP,
	"JMP":   OP_JUMP,
	"JZ":    OP_JZ,
	"LDI":   OP_LDI,
	"INC":   OP_INC,
	"DEC":   OP_DEC,
	"CMP":   OP_CMP,
	"JNZ":   OP_JNZ,
	"HALT":  OP_HALT,
	"HLT":   OP_HALT,
}

// Instruction is a decoded instruction: an opcode plus its 4-bit
// operand, when the opcode carries one.
type Instruction struct {
	Op      Opcode
	Operand uint8 // Address or immediate; meaningless when !Op.HasOperand()
}

// String returns the assembly language representation.
func (inst Instruction) String() (out string) {
	if inst.Op.HasOperand() {
		out = fmt.Sprintf("%v 0x%X", inst.Op, inst.Operand)
	} else {
		out = inst.Op.String()
	}

	return
}
