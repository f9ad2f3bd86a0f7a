// Package linecode transcodes bit strings into the line-level waveforms of
// classic digital line codes.
//
// Six schemes are supported: NRZ-L, NRZ-I, Bipolar AMI, Pseudoternary,
// Manchester and Differential Manchester. Every scheme emits two samples per
// bit, one at the start of the bit cell and one at its midpoint, with levels
// drawn from {-1, 0, +1}.
//
// # Core Features
//
//   - Strict bit parsing: anything other than '0' or '1' is rejected
//   - Explicit carry state for NRZ-I and Bipolar AMI across separate calls
//   - Decoders for every scheme
//   - A checksummed, optionally compressed binary frame format for waveforms
//   - Signal statistics (DC component, power, transitions) for comparing schemes
//
// # Basic Usage
//
// Encoding a bit string:
//
//	import "github.com/arloliu/linecode"
//
//	w, err := linecode.EncodeString(format.SchemeManchester, "10110", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range w {
//	    fmt.Printf("%d %s %+d\n", s.Cell, s.Label(), s.Level)
//	}
//
// Continuing an NRZ-I stream across calls:
//
//	carry := linecode.NewCarry()
//	first, _ := linecode.EncodeString(format.SchemeNRZI, "1101", carry)
//	second, _ := linecode.EncodeString(format.SchemeNRZI, "0011", carry)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the bits and
// encoding packages. Use the frame package to serialize waveforms and the
// analysis package to compare schemes.
package linecode

import (
	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/format"
)

// ParseBits parses a string of '0' and '1' characters.
//
// Returns an error wrapping errs.ErrInvalidSymbol that names the first
// offending character and its offset.
func ParseBits(text string) (bits.Sequence, error) {
	return bits.Parse(text)
}

// Encode encodes seq with the given scheme.
//
// Parameters:
//   - scheme: Line code to apply
//   - seq: Bits to encode
//   - carry: Carried NRZ-I level and Bipolar AMI polarity; nil starts from the
//     default seed and retains nothing. Other schemes ignore it.
//
// Returns:
//   - encoding.Waveform: Two samples per bit
//   - error: errs.ErrUnknownScheme if scheme is not defined
func Encode(scheme format.Scheme, seq bits.Sequence, carry *encoding.Carry) (encoding.Waveform, error) {
	return encoding.Encode(scheme, seq, carry)
}

// EncodeString parses text and encodes the result with the given scheme.
//
// Nothing is encoded, and carry is left untouched, if text contains an
// invalid symbol.
func EncodeString(scheme format.Scheme, text string, carry *encoding.Carry) (encoding.Waveform, error) {
	seq, err := bits.Parse(text)
	if err != nil {
		return nil, err
	}

	return encoding.Encode(scheme, seq, carry)
}

// Decode recovers the bit sequence from a waveform produced with scheme.
//
// Differential Manchester yields one bit fewer than was encoded, since the
// last bit leaves no trace in its own waveform.
func Decode(scheme format.Scheme, w encoding.Waveform, carry *encoding.Carry) (bits.Sequence, error) {
	return encoding.Decode(scheme, w, carry)
}

// NewCarry returns carry state seeded with the default level and polarity.
func NewCarry() *encoding.Carry {
	return encoding.NewCarry()
}
