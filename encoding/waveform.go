package encoding

import (
	"fmt"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/internal/hash"
)

// Level is a signed line voltage.
type Level int8

const (
	LevelLow  Level = -1
	LevelZero Level = 0
	LevelHigh Level = 1
)

// LevelDomain is the vertical plotting range a renderer should reserve for
// waveforms, leaving headroom above and below the ±1 levels.
var LevelDomain = [2]float64{-1.5, 1.5}

// Valid reports whether l is one of -1, 0 or +1.
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

// Half identifies which half of a bit cell a sample belongs to.
type Half uint8

const (
	FirstHalf  Half = 0 // start of cell
	SecondHalf Half = 1 // cell midpoint
)

// Offset returns the intra-cell offset of the half: 0 or 0.5.
func (h Half) Offset() float64 {
	if h == SecondHalf {
		return 0.5
	}

	return 0
}

// Sample is one time-stamped level of a waveform.
type Sample struct {
	Cell  int   `json:"cell"`
	Half  Half  `json:"half"`
	Level Level `json:"level"`
}

// Position returns the sample time in bit periods: cell index plus 0 or 0.5.
func (s Sample) Position() float64 {
	return float64(s.Cell) + s.Half.Offset()
}

// Label returns the symbolic time marker used on chart axes.
func (s Sample) Label() string {
	if s.Half == SecondHalf {
		return "t+0.5"
	}

	return "t"
}

// Waveform is an ordered run of samples, two per encoded bit.
type Waveform []Sample

// newWaveform allocates an empty waveform with room for n bits.
func newWaveform(n int) Waveform {
	return make(Waveform, 0, 2*n)
}

// appendCell emits the start-of-cell and mid-cell samples of one bit.
func (w Waveform) appendCell(cell int, first, second Level) Waveform {
	return append(w,
		Sample{Cell: cell, Half: FirstHalf, Level: first},
		Sample{Cell: cell, Half: SecondHalf, Level: second},
	)
}

// Cells returns the number of bit cells in the waveform.
func (w Waveform) Cells() int {
	return len(w) / 2
}

// Levels returns the sample levels in order.
func (w Waveform) Levels() []Level {
	out := make([]Level, len(w))
	for i, s := range w {
		out[i] = s.Level
	}

	return out
}

// Float64s returns the sample levels as float64 values, the shape numeric
// analysis and plotting libraries expect.
func (w Waveform) Float64s() []float64 {
	out := make([]float64, len(w))
	for i, s := range w {
		out[i] = float64(s.Level)
	}

	return out
}

// Cell returns the two levels of bit cell i.
func (w Waveform) Cell(i int) (first, second Level) {
	return w[2*i].Level, w[2*i+1].Level
}

// Validate checks the structural invariants of a waveform: two samples per
// cell, in cell order, first half before second half, levels in {-1, 0, +1}.
func (w Waveform) Validate() error {
	if len(w)%2 != 0 {
		return fmt.Errorf("%w: odd sample count %d", errs.ErrInvalidWaveform, len(w))
	}

	for i, s := range w {
		if s.Cell != i/2 || s.Half != Half(i%2) {
			return fmt.Errorf("%w: sample %d out of order (cell %d, half %d)", errs.ErrInvalidWaveform, i, s.Cell, s.Half)
		}
		if !s.Level.Valid() {
			return fmt.Errorf("%w: sample %d has level %d", errs.ErrInvalidWaveform, i, s.Level)
		}
	}

	return nil
}

// Fingerprint returns the xxHash64 of the waveform's level sequence.
// Two waveforms with equal levels in the same order share a fingerprint.
func (w Waveform) Fingerprint() uint64 {
	d := hash.NewDigest()
	for _, s := range w {
		_ = d.WriteByte(byte(s.Level))
	}

	return d.Sum64()
}
