package analysis

import (
	"fmt"

	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/pool"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report holds the statistics of one waveform.
//
// Fields:
//   - Cells: Number of bit cells
//   - DC: Mean sample level
//   - Power: Mean squared sample level
//   - Variance: Population variance of the sample levels
//   - Peak: Largest absolute sample level
//   - BoundaryTransitions: Level changes between the end of a cell and the start of the next
//   - MidTransitions: Level changes at cell midpoints
//   - LongestRun: Longest run of consecutive equal samples
//   - DistinctLevels: Number of different levels that appear
type Report struct {
	Cells               int     `json:"cells"`
	DC                  float64 `json:"dc"`
	Power               float64 `json:"power"`
	Variance            float64 `json:"variance"`
	Peak                float64 `json:"peak"`
	BoundaryTransitions int     `json:"boundary_transitions"`
	MidTransitions      int     `json:"mid_transitions"`
	LongestRun          int     `json:"longest_run"`
	DistinctLevels      int     `json:"distinct_levels"`
}

// Transitions returns the total number of level changes.
func (r Report) Transitions() int {
	return r.BoundaryTransitions + r.MidTransitions
}

// String returns a one-line summary of the report.
func (r Report) String() string {
	return fmt.Sprintf("Report{Cells: %d, DC: %+.4f, Power: %.4f, Transitions: %d/%d, LongestRun: %d}",
		r.Cells, r.DC, r.Power, r.BoundaryTransitions, r.MidTransitions, r.LongestRun)
}

// Analyze computes the statistics of w. An empty waveform yields a zero Report.
//
// Parameters:
//   - w: Waveform to analyze
//
// Returns:
//   - Report: Statistics of the waveform
//   - error: errs.ErrInvalidWaveform if w fails Waveform.Validate
func Analyze(w encoding.Waveform) (Report, error) {
	if err := w.Validate(); err != nil {
		return Report{}, err
	}
	if len(w) == 0 {
		return Report{}, nil
	}

	x, cleanup := pool.GetFloat64Slice(len(w))
	defer cleanup()

	var seen [3]bool
	for i, s := range w {
		x[i] = float64(s.Level)
		seen[s.Level-encoding.LevelLow] = true
	}

	r := Report{Cells: w.Cells()}
	r.DC, r.Variance = stat.PopMeanVariance(x, nil)
	r.Power = floats.Dot(x, x) / float64(len(x))
	r.Peak = max(floats.Max(x), -floats.Min(x))

	for _, ok := range seen {
		if ok {
			r.DistinctLevels++
		}
	}

	run := 1
	r.LongestRun = 1
	for i := 1; i < len(w); i++ {
		if w[i].Level == w[i-1].Level {
			run++
			r.LongestRun = max(r.LongestRun, run)

			continue
		}

		run = 1
		if w[i].Half == encoding.SecondHalf {
			r.MidTransitions++
		} else {
			r.BoundaryTransitions++
		}
	}

	return r, nil
}

// Entry pairs a scheme with the waveform it produced and that waveform's report.
type Entry struct {
	Scheme   format.Scheme     `json:"scheme"`
	Waveform encoding.Waveform `json:"waveform"`
	Report   Report            `json:"report"`
}

// Compare encodes seq with every scheme in format.Schemes order and analyzes
// each waveform.
//
// Parameters:
//   - seq: Bit sequence to encode
//   - carry: Carried NRZ-I and Bipolar AMI state; nil starts both from the default seed
//
// Returns:
//   - []Entry: One entry per scheme
//   - error: Any encoding error
func Compare(seq bits.Sequence, carry *encoding.Carry) ([]Entry, error) {
	return CompareSchemes(seq, carry, format.Schemes...)
}

// CompareSchemes is Compare restricted to the given schemes, in the given order.
func CompareSchemes(seq bits.Sequence, carry *encoding.Carry, schemes ...format.Scheme) ([]Entry, error) {
	entries := make([]Entry, 0, len(schemes))
	for _, scheme := range schemes {
		w, err := encoding.Encode(scheme, seq, carry)
		if err != nil {
			return nil, err
		}

		report, err := Analyze(w)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{Scheme: scheme, Waveform: w, Report: report})
	}

	return entries, nil
}
