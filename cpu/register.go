package cpu

// Register is a single 4-bit register.
type Register struct {
	value uint8
}

// Read returns the register value.
func (r *Register) Read() uint8 {
	return r.value
}

// Write stores a nibble, masking wider values.
func (r *Register) Write(value uint8) {
	r.value = value & DATA_MASK
}

// Increment adds one, wrapping at 16.
func (r *Register) Increment() {
	r.value = (r.value + 1) & DATA_MASK
}

// Decrement subtracts one, wrapping at 0.
func (r *Register) Decrement() {
	r.value = (r.value - 1) & DATA_MASK
}

// Clear sets the register to zero.
func (r *Register) Clear() {
	r.value = 0
}

// IsZero reports whether the register holds zero.
func (r *Register) IsZero() bool {
	return r.value == 0
}

// Registers is the CPU register file: accumulator, program counter,
// instruction register, and the two status flags. The flags are
// derived state; UpdateFlags overwrites both on every call.
type Registers struct {
	A  Register // Accumulator
	Pc Register // Program counter
	Ir Register // Instruction register

	Zero  bool // Last result was zero
	Carry bool // Last operation carried
}

// Reset clears all registers and flags.
func (regs *Registers) Reset() {
	regs.A.Clear()
	regs.Pc.Clear()
	regs.Ir.Clear()
	regs.Zero = false
	regs.Carry = false
}

// UpdateFlags overwrites both flags from an ALU-produced value and
// carry output.
func (regs *Registers) UpdateFlags(value uint8, carry bool) {
	regs.Zero = (value & DATA_MASK) == 0
	regs.Carry = carry
}
