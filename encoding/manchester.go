package encoding

import (
	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/format"
)

// EncodeManchester encodes seq with Manchester coding. The first half of a
// cell is +1 for a 1-bit and -1 for a 0-bit; the second half is its
// negation, giving exactly one transition per bit at the cell midpoint.
func EncodeManchester(seq bits.Sequence) Waveform {
	w := newWaveform(len(seq))
	for i, b := range seq {
		first := LevelLow
		if b == bits.One {
			first = LevelHigh
		}
		w = w.appendCell(i, first, -first)
	}

	return w
}

// EncodeDiffManchester encodes seq with Differential Manchester coding.
//
// Every cell emits the current level and then its negation, so a mid-cell
// transition is always present. After a 0-bit the level is inverted before
// the next cell, placing a transition on the following cell boundary; after a
// 1-bit it carries forward unchanged. The level restarts from DefaultSeed on
// every call.
func EncodeDiffManchester(seq bits.Sequence) Waveform {
	level := DefaultSeed
	w := newWaveform(len(seq))
	for i, b := range seq {
		w = w.appendCell(i, level.Level(), level.Invert().Level())
		if b == bits.Zero {
			level = level.Invert()
		}
	}

	return w
}

// ManchesterEncoder is the Encoder form of EncodeManchester.
type ManchesterEncoder struct{}

var _ Encoder = ManchesterEncoder{}

func (ManchesterEncoder) Scheme() format.Scheme { return format.SchemeManchester }

func (ManchesterEncoder) Encode(seq bits.Sequence) Waveform { return EncodeManchester(seq) }

func (ManchesterEncoder) Reset() {}

// DiffManchesterEncoder is the Encoder form of EncodeDiffManchester.
type DiffManchesterEncoder struct{}

var _ Encoder = DiffManchesterEncoder{}

func (DiffManchesterEncoder) Scheme() format.Scheme { return format.SchemeDiffManchester }

func (DiffManchesterEncoder) Encode(seq bits.Sequence) Waveform { return EncodeDiffManchester(seq) }

func (DiffManchesterEncoder) Reset() {}
