package encoding

import (
	"fmt"

	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

// DecodeNRZL recovers the bits of an NRZ-L waveform.
//
// Returns errs.ErrInvalidWaveform if a cell changes level at its midpoint or
// sits at level 0.
func DecodeNRZL(w Waveform) (bits.Sequence, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	seq := make(bits.Sequence, w.Cells())
	for i := range seq {
		level, err := flatCell(w, i)
		if err != nil {
			return nil, err
		}
		switch level {
		case LevelHigh:
			seq[i] = bits.One
		case LevelLow:
			seq[i] = bits.Zero
		default:
			return nil, fmt.Errorf("%w: NRZ-L cell %d at level 0", errs.ErrInvalidWaveform, i)
		}
	}

	return seq, nil
}

// DecodeNRZI recovers the bits of an NRZ-I waveform encoded from seed: a
// level change at a cell boundary is a 1-bit, no change a 0-bit.
//
// Returns:
//   - bits.Sequence: Decoded bits
//   - State: Final line level, to seed the next decode of the same stream
//   - error: errs.ErrInvalidWaveform for malformed cells
func DecodeNRZI(w Waveform, seed State) (bits.Sequence, State, error) {
	level := seed.orDefault()
	if err := w.Validate(); err != nil {
		return nil, level, err
	}

	seq := make(bits.Sequence, w.Cells())
	for i := range seq {
		l, err := flatCell(w, i)
		if err != nil {
			return nil, level, err
		}
		if l == LevelZero {
			return nil, level, fmt.Errorf("%w: NRZ-I cell %d at level 0", errs.ErrInvalidWaveform, i)
		}
		if State(l) != level {
			seq[i] = bits.One
			level = State(l)
		}
	}

	return seq, level, nil
}

// DecodeAMI recovers the bits of a Bipolar AMI waveform encoded from seed.
// Non-zero cells are 1-bits and must alternate in sign starting opposite to
// seed; a repeated polarity is reported as a bipolar violation.
func DecodeAMI(w Waveform, seed State) (bits.Sequence, State, error) {
	return decodeAlternating(w, bits.One, seed.orDefault())
}

// DecodePseudoternary recovers the bits of a Pseudoternary waveform: level 0
// cells are 1-bits, alternating non-zero cells are 0-bits.
func DecodePseudoternary(w Waveform) (bits.Sequence, error) {
	seq, _, err := decodeAlternating(w, bits.Zero, DefaultSeed)
	return seq, err
}

func decodeAlternating(w Waveform, mark bits.Bit, polarity State) (bits.Sequence, State, error) {
	if err := w.Validate(); err != nil {
		return nil, polarity, err
	}

	seq := make(bits.Sequence, w.Cells())
	for i := range seq {
		l, err := flatCell(w, i)
		if err != nil {
			return nil, polarity, err
		}
		if l == LevelZero {
			seq[i] = mark ^ 1
			continue
		}
		if State(l) != polarity.Invert() {
			return nil, polarity, fmt.Errorf("%w: bipolar violation at cell %d", errs.ErrInvalidWaveform, i)
		}
		polarity = State(l)
		seq[i] = mark
	}

	return seq, polarity, nil
}

// DecodeManchester recovers the bits of a Manchester waveform: a high-to-low
// mid-cell transition is a 1-bit, low-to-high a 0-bit.
func DecodeManchester(w Waveform) (bits.Sequence, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	seq := make(bits.Sequence, w.Cells())
	for i := range seq {
		first, second := w.Cell(i)
		switch {
		case first == LevelHigh && second == LevelLow:
			seq[i] = bits.One
		case first == LevelLow && second == LevelHigh:
			seq[i] = bits.Zero
		default:
			return nil, fmt.Errorf("%w: Manchester cell %d has no mid-cell transition", errs.ErrInvalidWaveform, i)
		}
	}

	return seq, nil
}

// DecodeDiffManchester recovers the bits of a Differential Manchester
// waveform.
//
// Bit i is signalled by the boundary in front of cell i+1, so the last bit
// of a waveform is not observable: for n cells the result holds the first
// n-1 bits, and an empty or single-cell waveform yields an empty sequence.
func DecodeDiffManchester(w Waveform) (bits.Sequence, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	cells := w.Cells()
	for i := range cells {
		first, second := w.Cell(i)
		if first == LevelZero || second != -first {
			return nil, fmt.Errorf("%w: Differential Manchester cell %d has no mid-cell transition", errs.ErrInvalidWaveform, i)
		}
	}
	if cells > 0 {
		if first, _ := w.Cell(0); first != DefaultSeed.Level() {
			return nil, fmt.Errorf("%w: Differential Manchester must start at level %d", errs.ErrInvalidWaveform, DefaultSeed)
		}
	}

	if cells <= 1 {
		return bits.Sequence{}, nil
	}

	seq := make(bits.Sequence, cells-1)
	for i := range seq {
		cur, _ := w.Cell(i)
		next, _ := w.Cell(i + 1)
		if cur == next {
			seq[i] = bits.One
		}
	}

	return seq, nil
}

// Decode recovers bits from a waveform produced by Encode with the same
// scheme.
//
// carry plays the same role as in Encode: nil means DefaultSeed, otherwise
// NRZ-I and Bipolar AMI seed from it and write their final state back. To
// decode a stream, hand Decode a Carry holding the values the encoder started
// from, not the one it updated.
func Decode(scheme format.Scheme, w Waveform, carry *Carry) (bits.Sequence, error) {
	switch scheme {
	case format.SchemeNRZL:
		return DecodeNRZL(w)
	case format.SchemeNRZI:
		seed := DefaultSeed
		if carry != nil {
			seed = carry.NRZILevel
		}
		seq, level, err := DecodeNRZI(w, seed)
		if err != nil {
			return nil, err
		}
		if carry != nil {
			carry.NRZILevel = level
		}

		return seq, nil
	case format.SchemeBipolarAMI:
		seed := DefaultSeed
		if carry != nil {
			seed = carry.AMIPolarity
		}
		seq, polarity, err := DecodeAMI(w, seed)
		if err != nil {
			return nil, err
		}
		if carry != nil {
			carry.AMIPolarity = polarity
		}

		return seq, nil
	case format.SchemePseudoternary:
		return DecodePseudoternary(w)
	case format.SchemeManchester:
		return DecodeManchester(w)
	case format.SchemeDiffManchester:
		return DecodeDiffManchester(w)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownScheme, scheme)
	}
}

// flatCell returns the level of cell i, failing if its halves differ.
func flatCell(w Waveform, i int) (Level, error) {
	first, second := w.Cell(i)
	if first != second {
		return 0, fmt.Errorf("%w: cell %d changes level mid-cell (%d -> %d)", errs.ErrInvalidWaveform, i, first, second)
	}

	return first, nil
}
