package logic

// FullAdder adds two bits plus a carry-in. It is built from two half
// adders in series and an OR gate combining the intermediate carries:
// sum = a XOR b XOR cin, carry = (a AND b) OR (cin AND (a XOR b)).
type FullAdder struct {
	first  *HalfAdder // a + b
	second *HalfAdder // (a XOR b) + cin
	or     *Gate      // carry1 OR carry2
}

// NewFullAdder creates a full adder with all gates calibrated.
func NewFullAdder() (fa *FullAdder) {
	fa = &FullAdder{
		first:  NewHalfAdder(),
		second: NewHalfAdder(),
		or:     NewGate(GATE_OR),
	}

	fa.or.Calibrate(DEFAULT_CALIBRATION)

	return
}

// Compute adds a, b, and the carry-in.
func (fa *FullAdder) Compute(a, b, carryIn bool) (sum, carry bool) {
	sum1, carry1 := fa.first.Compute(a, b)
	sum, carry2 := fa.second.Compute(sum1, carryIn)

	carry = Bit(fa.or.Compute(bitIn(carry1), bitIn(carry2)))

	return
}
