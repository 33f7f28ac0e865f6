// Package logic implements the digital-logic substrate of the nibble4
// machine: boolean function units (gates), half and full adders, and the
// 4-bit ALU composed from them.
//
// A Gate is a calibrated evaluator of a boolean function. It reports a
// confidence value in [0,1]; thresholding at 0.5 recovers the exact
// function once Calibrate has run. The adders and the ALU never consume
// the raw confidence, only the thresholded bit.
package logic
