package encoding

import (
	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/format"
)

// EncodeAMI encodes seq with Bipolar Alternate Mark Inversion starting from seed.
//
// Each 1-bit (mark) inverts the polarity and is emitted at the new polarity,
// so consecutive marks always have opposite signs. Each 0-bit (space) is
// emitted at level 0 and leaves the polarity untouched. The returned State is
// the polarity of the last mark and seeds the next call.
//
// Parameters:
//   - seq: Bits to encode
//   - seed: Polarity of the mark preceding the first cell
//
// Returns:
//   - Waveform: Two equal samples per bit
//   - State: Final polarity
func EncodeAMI(seq bits.Sequence, seed State) (Waveform, State) {
	return encodeAlternating(seq, bits.One, seed.orDefault())
}

// EncodePseudoternary encodes seq with Pseudoternary coding, the dual of
// Bipolar AMI: 0-bits alternate polarity and 1-bits are emitted at level 0.
// The polarity restarts from DefaultSeed on every call.
func EncodePseudoternary(seq bits.Sequence) Waveform {
	w, _ := encodeAlternating(seq, bits.Zero, DefaultSeed)
	return w
}

// encodeAlternating emits the mark bit at alternating polarity and every
// other bit at level 0.
func encodeAlternating(seq bits.Sequence, mark bits.Bit, polarity State) (Waveform, State) {
	w := newWaveform(len(seq))
	for i, b := range seq {
		level := LevelZero
		if b == mark {
			polarity = polarity.Invert()
			level = polarity.Level()
		}
		w = w.appendCell(i, level, level)
	}

	return w, polarity
}

// AMIEncoder encodes with Bipolar AMI and keeps the mark polarity between
// calls, so consecutive Encode calls continue one stream.
//
// Not safe for concurrent use.
type AMIEncoder struct {
	seed     State
	polarity State
}

var _ Encoder = (*AMIEncoder)(nil)

// NewAMIEncoder creates a Bipolar AMI encoder seeded with polarity seed.
func NewAMIEncoder(seed State) *AMIEncoder {
	seed = seed.orDefault()
	return &AMIEncoder{seed: seed, polarity: seed}
}

func (e *AMIEncoder) Scheme() format.Scheme { return format.SchemeBipolarAMI }

// Encode encodes seq from the polarity the previous call ended on.
func (e *AMIEncoder) Encode(seq bits.Sequence) Waveform {
	var w Waveform
	w, e.polarity = EncodeAMI(seq, e.polarity)

	return w
}

// State returns the polarity of the last emitted mark.
func (e *AMIEncoder) State() State {
	return e.polarity
}

// Reset restores the seed polarity.
func (e *AMIEncoder) Reset() {
	e.polarity = e.seed
}

// PseudoternaryEncoder is the Encoder form of EncodePseudoternary.
type PseudoternaryEncoder struct{}

var _ Encoder = PseudoternaryEncoder{}

func (PseudoternaryEncoder) Scheme() format.Scheme { return format.SchemePseudoternary }

func (PseudoternaryEncoder) Encode(seq bits.Sequence) Waveform { return EncodePseudoternary(seq) }

func (PseudoternaryEncoder) Reset() {}
