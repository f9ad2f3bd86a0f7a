// Package bits converts user-supplied text and raw octets into the bit
// sequences consumed by the line coding encoders.
package bits

import (
	"fmt"
	"strings"

	"github.com/arloliu/linecode/errs"
	"github.com/yyyoichi/bitstream-go"
)

// Bit is a single binary digit, either 0 or 1.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Sequence is an ordered message of bits.
//
// Encoders never modify a Sequence passed to them.
type Sequence []Bit

// Parse converts text made of '0' and '1' characters into a Sequence.
//
// Any other character fails the whole parse with an error wrapping
// errs.ErrInvalidSymbol; nothing is silently dropped here. Callers that want
// the lenient input-field behavior should run the text through Filter first.
// Empty text yields an empty, non-nil Sequence.
//
// Parameters:
//   - text: Binary digits, most significant first in transmission order
//
// Returns:
//   - Sequence: Parsed bits, same length as text
//   - error: errs.ErrInvalidSymbol naming the offending rune and its byte offset
func Parse(text string) (Sequence, error) {
	seq := make(Sequence, 0, len(text))
	for i, r := range text {
		switch r {
		case '0':
			seq = append(seq, Zero)
		case '1':
			seq = append(seq, One)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", errs.ErrInvalidSymbol, r, i)
		}
	}

	return seq, nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests and
// package-level literals.
func MustParse(text string) Sequence {
	seq, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return seq
}

// Filter drops every character that is not '0' or '1'.
func Filter(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '0' || r == '1' {
			return r
		}

		return -1
	}, text)
}

// FromBytes expands octets into a Sequence, most significant bit first.
func FromBytes(data []byte) Sequence {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			w.WriteBool((b>>uint(i))&1 == 1)
		}
	}

	return FromWords(w.Data(), len(data)*8)
}

// FromWords unpacks the first n bits of words produced by Pack.
func FromWords(words []uint64, n int) Sequence {
	if n > len(words)*64 {
		n = len(words) * 64
	}

	r := bitstream.NewBitReader(words, 0, 0)
	seq := make(Sequence, n)
	for i := range seq {
		if set, _ := r.ReadBitAt(i); set {
			seq[i] = One
		}
	}

	return seq
}

// Pack stores the sequence one bit per position in 64-bit words.
//
// Returns:
//   - []uint64: Packed words, nil for an empty sequence
//   - int: Number of meaningful bits
func (s Sequence) Pack() ([]uint64, int) {
	if len(s) == 0 {
		return nil, 0
	}

	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range s {
		w.WriteBool(b == One)
	}

	return w.Data(), len(s)
}

// Complement returns a new Sequence with every bit flipped.
func (s Sequence) Complement() Sequence {
	out := make(Sequence, len(s))
	for i, b := range s {
		out[i] = b ^ 1
	}

	return out
}

// Ones counts the 1-bits in the sequence.
func (s Sequence) Ones() int {
	n := 0
	for _, b := range s {
		if b == One {
			n++
		}
	}

	return n
}

// Equal reports whether both sequences hold the same bits in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		sb.WriteByte('0' + byte(b))
	}

	return sb.String()
}
