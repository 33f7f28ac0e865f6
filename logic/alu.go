package logic

// AluOp is an ALU operation selector.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_ADD = AluOp(0) // add
	ALU_SUB = AluOp(1) // sub
	ALU_AND = AluOp(2) // and
	ALU_OR  = AluOp(3) // or
	ALU_XOR = AluOp(4) // xor
)

// Result is the outcome of an ALU operation.
type Result struct {
	Value uint8 // 4-bit result
	Carry bool  // Carry out of the high bit
	Zero  bool  // Result is zero
}

// Alu is the 4-bit arithmetic logic unit. Addition ripples through a
// chain of four full adders; each bitwise operation has four dedicated
// gates, one per bit position.
type Alu struct {
	adder [4]*FullAdder // index 0 is the LSB stage
	and   [4]*Gate
	or    [4]*Gate
	xor   [4]*Gate
}

// NewAlu creates an ALU with every adder and gate calibrated.
func NewAlu() (alu *Alu) {
	alu = &Alu{}

	for n := range 4 {
		alu.adder[n] = NewFullAdder()
		alu.and[n] = NewGate(GATE_AND)
		alu.or[n] = NewGate(GATE_OR)
		alu.xor[n] = NewGate(GATE_XOR)
		alu.and[n].Calibrate(DEFAULT_CALIBRATION)
		alu.or[n].Calibrate(DEFAULT_CALIBRATION)
		alu.xor[n].Calibrate(DEFAULT_CALIBRATION)
	}

	return
}

// Compute performs the requested operation on two 4-bit operands.
// Wider values are masked, never rejected.
func (alu *Alu) Compute(a, b uint8, op AluOp) (res Result) {
	a &= 0x0f
	b &= 0x0f

	switch op {
	case ALU_ADD:
		res = alu.add(a, b)
	case ALU_SUB:
		res = alu.subtract(a, b)
	case ALU_AND:
		res = alu.bitwise(&alu.and, a, b)
	case ALU_OR:
		res = alu.bitwise(&alu.or, a, b)
	case ALU_XOR:
		res = alu.bitwise(&alu.xor, a, b)
	}

	return
}

// add ripples a+b through the adder chain, LSB to MSB, with a false
// carry into the first stage.
func (alu *Alu) add(a, b uint8) (res Result) {
	aBits := toBits(a)
	bBits := toBits(b)

	var sums [4]bool
	carry := false
	for n := range 4 {
		sums[n], carry = alu.adder[n].Compute(aBits[n], bBits[n], carry)
	}

	res.Value = fromBits(sums)
	res.Carry = carry
	res.Zero = res.Value == 0

	return
}

// subtract computes a-b as a + (~b + 1). The carry flag is the carry
// out of the complement addition, not a borrow flag.
func (alu *Alu) subtract(a, b uint8) (res Result) {
	complement := alu.add((^b)&0x0f, 1)

	return alu.add(a, complement.Value)
}

// bitwise applies one gate per bit position. Carry is always false.
func (alu *Alu) bitwise(gates *[4]*Gate, a, b uint8) (res Result) {
	aBits := toBits(a)
	bBits := toBits(b)

	var out [4]bool
	for n := range 4 {
		out[n] = Bit(gates[n].Compute(bitIn(aBits[n]), bitIn(bBits[n])))
	}

	res.Value = fromBits(out)
	res.Carry = false
	res.Zero = res.Value == 0

	return
}

// toBits splits a nibble into bits, LSB first.
func toBits(value uint8) (bits [4]bool) {
	for n := range 4 {
		bits[n] = (value & (1 << n)) != 0
	}

	return
}

// fromBits packs bits into a nibble, LSB first.
func fromBits(bits [4]bool) (value uint8) {
	for n := range 4 {
		if bits[n] {
			value |= 1 << n
		}
	}

	return
}
