package logic

// GateOp is a boolean function selector.
type GateOp int

//go:generate go tool stringer -linecomment -type=GateOp
const (
	GATE_AND  = GateOp(0) // and
	GATE_OR   = GateOp(1) // or
	GATE_XOR  = GateOp(2) // xor
	GATE_NOT  = GateOp(3) // not
	GATE_NAND = GateOp(4) // nand
	GATE_NOR  = GateOp(5) // nor
	GATE_XNOR = GateOp(6) // xnor
)

// Arity returns the number of inputs the function consumes.
func (op GateOp) Arity() int {
	if op == GATE_NOT {
		return 1
	}
	return 2
}

// truth is the canonical truth table for the function. NOT ignores b.
func (op GateOp) truth(a, b bool) bool {
	switch op {
	case GATE_AND:
		return a && b
	case GATE_OR:
		return a || b
	case GATE_XOR:
		return a != b
	case GATE_NOT:
		return !a
	case GATE_NAND:
		return !(a && b)
	case GATE_NOR:
		return !(a || b)
	case GATE_XNOR:
		return a == b
	}
	return false
}

const (
	// DEFAULT_CALIBRATION is the calibration round count used by the
	// adder and ALU constructors.
	DEFAULT_CALIBRATION = 10000
)

// Gate is a boolean function unit. It must be calibrated once before
// use; an uncalibrated gate answers 0.5 (indeterminate) for every
// input. After calibration the response, thresholded with Bit, is the
// exact truth table of the gate's function.
type Gate struct {
	op         GateOp
	response   [4]float64
	calibrated bool
}

// NewGate creates an uncalibrated gate for the given function.
func NewGate(op GateOp) (g *Gate) {
	g = &Gate{op: op}

	return
}

// Op returns the gate's function selector.
func (g *Gate) Op() GateOp {
	return g.op
}

// Calibrated reports whether Calibrate has run.
func (g *Gate) Calibrated() bool {
	return g.calibrated
}

// Calibrate locks the gate's response onto its truth table. More rounds
// push the confidence closer to the rails; even a single round is
// enough to make every thresholded answer exact.
func (g *Gate) Calibrate(rounds int) {
	if rounds < 1 {
		rounds = 1
	}

	// Residual uncertainty after `rounds` of calibration.
	margin := 0.5 / float64(1+rounds)

	for n := range g.response {
		a := (n & 1) != 0
		b := (n & 2) != 0
		if g.op.truth(a, b) {
			g.response[n] = 1.0 - margin
		} else {
			g.response[n] = margin
		}
	}

	g.calibrated = true
}

// Compute evaluates the gate on 0.0/1.0 inputs and returns a confidence
// value in [0,1]. Inputs beyond the gate's arity are ignored; missing
// inputs read as 0.
func (g *Gate) Compute(inputs ...float64) (confidence float64) {
	if !g.calibrated {
		return 0.5
	}

	var index int
	if len(inputs) > 0 && Bit(inputs[0]) {
		index |= 1
	}
	if g.op.Arity() > 1 && len(inputs) > 1 && Bit(inputs[1]) {
		index |= 2
	}

	confidence = g.response[index]

	return
}

// Bit applies the output threshold: a confidence above 0.5 is true.
func Bit(confidence float64) bool {
	return confidence > 0.5
}

// bitIn converts a wire level to a gate input.
func bitIn(bit bool) float64 {
	if bit {
		return 1.0
	}
	return 0.0
}
