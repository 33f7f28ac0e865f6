package cpu

// Program is the output of a successful assembly.
type Program struct {
	Instructions []AsmInstruction
}

// Binary encodes the program into its machine-code byte stream: one
// byte for operand-less instructions, two bytes for the rest.
func (prog *Program) Binary() (bin []uint8) {
	for _, inst := range prog.Instructions {
		op := mnemonicMap[inst.Mnemonic]
		bin = append(bin, uint8(op))
		if op.HasOperand() {
			bin = append(bin, inst.Operand)
		}
	}

	return
}

// Debug finds the instruction covering a byte address.
func (prog *Program) Debug(addr uint8) (inst *AsmInstruction) {
	for n, in := range prog.Instructions {
		op := mnemonicMap[in.Mnemonic]
		if int(addr) >= in.Addr && int(addr) < in.Addr+op.Size() {
			inst = &prog.Instructions[n]
			break
		}
	}

	return
}
