package logic

// HalfAdder combines an XOR gate and an AND gate to add two single
// bits. The two gates are independent units with no shared state.
type HalfAdder struct {
	xor *Gate
	and *Gate
}

// NewHalfAdder creates a half adder with both gates calibrated.
func NewHalfAdder() (ha *HalfAdder) {
	ha = &HalfAdder{
		xor: NewGate(GATE_XOR),
		and: NewGate(GATE_AND),
	}

	ha.xor.Calibrate(DEFAULT_CALIBRATION)
	ha.and.Calibrate(DEFAULT_CALIBRATION)

	return
}

// Compute adds two bits. Sum is a XOR b, carry is a AND b.
func (ha *HalfAdder) Compute(a, b bool) (sum, carry bool) {
	af := bitIn(a)
	bf := bitIn(b)

	sum = Bit(ha.xor.Compute(af, bf))
	carry = Bit(ha.and.Compute(af, bf))

	return
}
