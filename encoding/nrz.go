package encoding

import (
	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/format"
)

// EncodeNRZL encodes seq with Non-Return-to-Zero Level: +1 for a 1-bit,
// -1 for a 0-bit, held for the whole cell.
func EncodeNRZL(seq bits.Sequence) Waveform {
	w := newWaveform(len(seq))
	for i, b := range seq {
		level := LevelLow
		if b == bits.One {
			level = LevelHigh
		}
		w = w.appendCell(i, level, level)
	}

	return w
}

// EncodeNRZI encodes seq with Non-Return-to-Zero Inverted starting from seed.
//
// A 1-bit inverts the line level before the cell is emitted; a 0-bit holds
// it, so a run of zeros keeps the line constant. The returned State is the
// level the line was left at and seeds the next call for a continuous stream.
//
// Parameters:
//   - seq: Bits to encode
//   - seed: Level the line was at before the first cell
//
// Returns:
//   - Waveform: Two samples per bit, both at the cell's level
//   - State: Final line level
func EncodeNRZI(seq bits.Sequence, seed State) (Waveform, State) {
	level := seed.orDefault()
	w := newWaveform(len(seq))
	for i, b := range seq {
		if b == bits.One {
			level = level.Invert()
		}
		w = w.appendCell(i, level.Level(), level.Level())
	}

	return w, level
}

// NRZLEncoder is the Encoder form of EncodeNRZL.
type NRZLEncoder struct{}

var _ Encoder = NRZLEncoder{}

func (NRZLEncoder) Scheme() format.Scheme { return format.SchemeNRZL }

func (NRZLEncoder) Encode(seq bits.Sequence) Waveform { return EncodeNRZL(seq) }

func (NRZLEncoder) Reset() {}

// NRZIEncoder encodes with NRZ-I and keeps the line level between calls, so
// consecutive Encode calls continue one stream.
//
// Not safe for concurrent use.
type NRZIEncoder struct {
	seed  State
	level State
}

var _ Encoder = (*NRZIEncoder)(nil)

// NewNRZIEncoder creates an NRZ-I encoder whose line starts at seed.
func NewNRZIEncoder(seed State) *NRZIEncoder {
	seed = seed.orDefault()
	return &NRZIEncoder{seed: seed, level: seed}
}

func (e *NRZIEncoder) Scheme() format.Scheme { return format.SchemeNRZI }

// Encode encodes seq from the level the previous call left the line at.
func (e *NRZIEncoder) Encode(seq bits.Sequence) Waveform {
	var w Waveform
	w, e.level = EncodeNRZI(seq, e.level)

	return w
}

// State returns the current line level.
func (e *NRZIEncoder) State() State {
	return e.level
}

// Reset returns the line to the seed level.
func (e *NRZIEncoder) Reset() {
	e.level = e.seed
}
