package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/nibble4/nibble4/logic"
)

var _cpu_defines = map[string]string{
	"MEM_SIZE":  fmt.Sprintf("%v", MEM_SIZE),
	"ADDR_MASK": fmt.Sprintf("%#x", ADDR_MASK),
	"DATA_MASK": fmt.Sprintf("%#x", DATA_MASK),
}

// Cpu is the nibble4 processor. It exclusively owns its register file,
// memory bank, and ALU; Reset always clears all of them together.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers Registers  // Register file.
	Memory    Memory     // 16 x 4-bit memory bank.
	Alu       *logic.Alu // Gate-level arithmetic logic unit.

	Halted bool // Set by executing HALT; only Reset clears it.
	Cycles int  // Executed cycle counter.
}

// NewCpu creates a CPU with a freshly calibrated ALU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Alu: logic.NewAlu(),
	}

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"a", "pc", "ir", "zero", "carry", "halted", "cycles"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "a":
			strval = fmt.Sprintf("0x%X", cpu.Registers.A.Read())
		case "pc":
			strval = fmt.Sprintf("0x%X", cpu.Registers.Pc.Read())
		case "ir":
			strval = fmt.Sprintf("0x%X", cpu.Registers.Ir.Read())
		case "zero":
			strval = fmt.Sprintf("%v", cpu.Registers.Zero)
		case "carry":
			strval = fmt.Sprintf("%v", cpu.Registers.Carry)
		case "halted":
			strval = fmt.Sprintf("%v", cpu.Halted)
		case "cycles":
			strval = fmt.Sprintf("%v", cpu.Cycles)
		}
		text += fmt.Sprintf("% 7s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state: registers, memory, halt latch, and cycle count
// are cleared as a unit. Partial reset is never valid.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Memory.Clear()
	cpu.Halted = false
	cpu.Cycles = 0
}

// LoadProgram copies a program into memory starting at address 0.
func (cpu *Cpu) LoadProgram(program []uint8) {
	cpu.Memory.LoadProgram(program)
}

// Fetch reads the byte at PC into the instruction register and returns
// the raw byte.
func (cpu *Cpu) Fetch() (opcode uint8) {
	pc := cpu.Registers.Pc.Read()
	opcode = cpu.Memory.Read(pc)
	cpu.Registers.Ir.Write(opcode)

	return
}

// Decode maps an opcode nibble to an Instruction. Opcodes that carry
// an operand read the second byte at PC+1, address-masked. Every
// nibble decodes to some instruction; there are no illegal opcodes.
func (cpu *Cpu) Decode(opcode uint8) (inst Instruction) {
	inst.Op = Opcode(opcode & DATA_MASK)

	if inst.Op.HasOperand() {
		pc := cpu.Registers.Pc.Read()
		inst.Operand = cpu.Memory.Read((pc + 1) & ADDR_MASK)
	}

	return
}

// Execute runs a single decoded instruction, then advances the program
// counter: once past the opcode, and once more past the operand byte
// for instructions that carry one. Jumps and HALT short-circuit the
// advance.
func (cpu *Cpu) Execute(inst Instruction) {
	if cpu.Verbose {
		log.Printf("%X: %v", cpu.Registers.Pc.Read(), inst)
	}

	switch inst.Op {
	case OP_NOP:
		// pass
	case OP_LOAD:
		value := cpu.Memory.Read(inst.Operand)
		cpu.Registers.A.Write(value)
		cpu.Registers.UpdateFlags(value, false)
	case OP_STORE:
		cpu.Memory.Write(inst.Operand, cpu.Registers.A.Read())
	case OP_ADD:
		cpu.aluInstruction(logic.ALU_ADD, cpu.Memory.Read(inst.Operand))
	case OP_SUB:
		cpu.aluInstruction(logic.ALU_SUB, cpu.Memory.Read(inst.Operand))
	case OP_AND:
		cpu.aluInstruction(logic.ALU_AND, cpu.Memory.Read(inst.Operand))
	case OP_OR:
		cpu.aluInstruction(logic.ALU_OR, cpu.Memory.Read(inst.Operand))
	case OP_XOR:
		cpu.aluInstruction(logic.ALU_XOR, cpu.Memory.Read(inst.Operand))
	case OP_JUMP:
		cpu.Registers.Pc.Write(inst.Operand)
		return
	case OP_JZ:
		if cpu.Registers.Zero {
			cpu.Registers.Pc.Write(inst.Operand)
			return
		}
		// Not taken: one extra step past the operand byte.
		cpu.Registers.Pc.Increment()
	case OP_JNZ:
		if !cpu.Registers.Zero {
			cpu.Registers.Pc.Write(inst.Operand)
			return
		}
		cpu.Registers.Pc.Increment()
	case OP_LDI:
		cpu.Registers.A.Write(inst.Operand)
		cpu.Registers.UpdateFlags(inst.Operand, false)
	case OP_INC:
		cpu.aluInstruction(logic.ALU_ADD, 1)
	case OP_DEC:
		cpu.aluInstruction(logic.ALU_SUB, 1)
	case OP_CMP:
		// Flags only; the result nibble is discarded.
		a := cpu.Registers.A.Read()
		b := cpu.Memory.Read(inst.Operand)
		res := cpu.Alu.Compute(a, b, logic.ALU_SUB)
		cpu.Registers.UpdateFlags(res.Value, res.Carry)
	case OP_HALT:
		cpu.Halted = true
		return
	}

	cpu.Registers.Pc.Increment()
	if inst.Op.skipsOperand() {
		cpu.Registers.Pc.Increment()
	}
}

// aluInstruction routes an accumulator/operand pair through the ALU
// and writes back both the result and the flags.
func (cpu *Cpu) aluInstruction(op logic.AluOp, b uint8) {
	a := cpu.Registers.A.Read()
	res := cpu.Alu.Compute(a, b, op)
	cpu.Registers.A.Write(res.Value)
	cpu.Registers.UpdateFlags(res.Value, res.Carry)
}

// Cycle runs one fetch-decode-execute cycle. A halted CPU does
// nothing.
func (cpu *Cpu) Cycle() {
	if cpu.Halted {
		return
	}

	opcode := cpu.Fetch()
	inst := cpu.Decode(opcode)
	cpu.Execute(inst)
	cpu.Cycles++
}

// Run cycles until the CPU halts or the cycle budget is exhausted.
// The budget is a hard cap on the total cycle counter, not a timeout.
func (cpu *Cpu) Run(maxCycles int) {
	for !cpu.Halted && cpu.Cycles < maxCycles {
		cpu.Cycle()
	}
}
