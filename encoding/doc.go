// Package encoding implements the line coding transcoders: functions that
// turn a bit sequence into a piecewise-constant voltage waveform.
//
// # Schemes
//
// Six peer encoders share one input contract (bits.Sequence) and one output
// contract (Waveform, two samples per bit: start of cell and cell midpoint):
//
//	Scheme                   1-bit                      0-bit
//	NRZ-L                    +1 +1                      -1 -1
//	NRZ-I                    invert level, hold         hold level
//	Bipolar AMI              invert polarity, emit      0 0
//	Pseudoternary            0 0                        invert polarity, emit
//	Manchester               +1 -1                      -1 +1
//	Differential Manchester  L -L, keep L               L -L, then invert L
//
// # Carry-over State
//
// NRZ-I and Bipolar AMI seed their level or polarity from a State the caller
// keeps between separate calls, and hand back the final value:
//
//	carry := encoding.NewCarry()
//	first, _ := encoding.Encode(format.SchemeNRZI, bits.MustParse("101"), carry)
//	next, _ := encoding.Encode(format.SchemeNRZI, bits.MustParse("1"), carry) // continues from first
//
// Pseudoternary and Differential Manchester always restart from DefaultSeed.
// The package holds no mutable state of its own.
//
// # Basic Usage
//
//	seq, err := bits.Parse("10110")
//	if err != nil {
//	    return err // wraps errs.ErrInvalidSymbol
//	}
//	w := encoding.EncodeManchester(seq)
//	for _, s := range w {
//	    fmt.Println(s.Position(), s.Level)
//	}
//
// # Decoding
//
// Each scheme has a decoder that validates the waveform and recovers the
// bits. Differential Manchester carries bit i in the boundary before cell
// i+1, so its decoder recovers all but the final bit.
//
// # Thread Safety
//
// The Encode* and Decode* functions are safe for concurrent use. NRZIEncoder,
// AMIEncoder and Carry are not; give each stream its own.
package encoding
