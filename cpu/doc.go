// Package cpu implements the nibble4 processor and its assembler.
//
// The CPU is a register-memory machine with a 4-bit accumulator, a
// 4-bit program counter, an instruction register, zero and carry
// flags, and sixteen 4-bit memory cells. All arithmetic and logic
// routes through the gate-level ALU in package logic.
//
// The assembler translates a line-oriented mnemonic language into the
// two-byte instruction encoding, supporting labels, equates, and
// compile-time expression evaluation. Disassembly reverses the opcode
// table into an address/mnemonic listing.
package cpu
