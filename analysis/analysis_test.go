package analysis

import (
	"testing"

	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	ami, _ := encoding.EncodeAMI(bits.MustParse("1111"), encoding.StatePositive)

	tests := []struct {
		name string
		w    encoding.Waveform
		want Report
	}{
		{
			name: "empty",
			w:    encoding.Waveform{},
			want: Report{},
		},
		{
			name: "NRZ-L single one",
			w:    encoding.EncodeNRZL(bits.MustParse("1")),
			want: Report{Cells: 1, DC: 1, Power: 1, Peak: 1, LongestRun: 2, DistinctLevels: 1},
		},
		{
			name: "NRZ-L balanced",
			w:    encoding.EncodeNRZL(bits.MustParse("1100")),
			want: Report{Cells: 4, DC: 0, Power: 1, Variance: 1, Peak: 1, BoundaryTransitions: 1, LongestRun: 4, DistinctLevels: 2},
		},
		{
			name: "Manchester",
			w:    encoding.EncodeManchester(bits.MustParse("10")),
			want: Report{Cells: 2, DC: 0, Power: 1, Variance: 1, Peak: 1, MidTransitions: 2, LongestRun: 2, DistinctLevels: 2},
		},
		{
			name: "Bipolar AMI marks",
			w:    ami,
			want: Report{Cells: 4, DC: 0, Power: 1, Variance: 1, Peak: 1, BoundaryTransitions: 3, LongestRun: 2, DistinctLevels: 2},
		},
		{
			name: "Pseudoternary all ones",
			w:    encoding.EncodePseudoternary(bits.MustParse("1111")),
			want: Report{Cells: 4, LongestRun: 8, DistinctLevels: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Analyze(tt.w)
			require.NoError(t, err)

			require.Equal(t, tt.want.Cells, got.Cells)
			require.InDelta(t, tt.want.DC, got.DC, 1e-12)
			require.InDelta(t, tt.want.Power, got.Power, 1e-12)
			require.InDelta(t, tt.want.Variance, got.Variance, 1e-12)
			require.InDelta(t, tt.want.Peak, got.Peak, 1e-12)
			require.Equal(t, tt.want.BoundaryTransitions, got.BoundaryTransitions)
			require.Equal(t, tt.want.MidTransitions, got.MidTransitions)
			require.Equal(t, tt.want.LongestRun, got.LongestRun)
			require.Equal(t, tt.want.DistinctLevels, got.DistinctLevels)
		})
	}
}

func TestAnalyze_ManchesterHasMidTransitionEveryCell(t *testing.T) {
	seq := bits.MustParse("0001110100101111")
	for _, w := range []encoding.Waveform{encoding.EncodeManchester(seq), encoding.EncodeDiffManchester(seq)} {
		r, err := Analyze(w)
		require.NoError(t, err)
		require.Equal(t, len(seq), r.MidTransitions)
		require.InDelta(t, 0, r.DC, 1e-12)
		require.LessOrEqual(t, r.LongestRun, 2)
	}
}

func TestAnalyze_RejectsMalformedWaveforms(t *testing.T) {
	tests := []struct {
		name string
		w    encoding.Waveform
	}{
		{"level out of range", encoding.Waveform{
			{Cell: 0, Half: encoding.FirstHalf, Level: 2},
			{Cell: 0, Half: encoding.SecondHalf, Level: 2},
		}},
		{"negative level out of range", encoding.Waveform{
			{Cell: 0, Half: encoding.FirstHalf, Level: -3},
			{Cell: 0, Half: encoding.SecondHalf, Level: 1},
		}},
		{"odd sample count", encoding.EncodeNRZL(bits.MustParse("10"))[:3]},
		{"samples out of order", encoding.Waveform{
			{Cell: 0, Half: encoding.SecondHalf, Level: 1},
			{Cell: 0, Half: encoding.FirstHalf, Level: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { _, err = Analyze(tt.w) })
			require.ErrorIs(t, err, errs.ErrInvalidWaveform)
		})
	}
}

func TestCompare(t *testing.T) {
	seq := bits.MustParse("10110")

	entries, err := Compare(seq, nil)
	require.NoError(t, err)
	require.Len(t, entries, len(format.Schemes))

	for i, e := range entries {
		require.Equal(t, format.Schemes[i], e.Scheme)
		require.Equal(t, len(seq), e.Report.Cells)
		report, err := Analyze(e.Waveform)
		require.NoError(t, err)
		require.Equal(t, report, e.Report)
	}

	require.InDelta(t, 0.2, entries[0].Report.DC, 1e-12)
	require.InDelta(t, 0, entries[4].Report.DC, 1e-12)
}

func TestCompare_AdvancesCarry(t *testing.T) {
	carry := encoding.NewCarry()

	_, err := Compare(bits.MustParse("1"), carry)
	require.NoError(t, err)
	require.Equal(t, encoding.StateNegative, carry.NRZILevel)
	require.Equal(t, encoding.StateNegative, carry.AMIPolarity)
}

func TestCompareSchemes(t *testing.T) {
	entries, err := CompareSchemes(bits.MustParse("01"), nil, format.SchemeManchester, format.SchemeNRZL)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, format.SchemeManchester, entries[0].Scheme)
	require.Equal(t, format.SchemeNRZL, entries[1].Scheme)

	_, err = CompareSchemes(bits.MustParse("01"), nil, format.Scheme(0))
	require.ErrorIs(t, err, errs.ErrUnknownScheme)
}

func TestReport_String(t *testing.T) {
	r, err := Analyze(encoding.EncodeManchester(bits.MustParse("1")))
	require.NoError(t, err)
	require.Equal(t, "Report{Cells: 1, DC: +0.0000, Power: 1.0000, Transitions: 0/1, LongestRun: 1}", r.String())
	require.Equal(t, 1, r.Transitions())
}

func BenchmarkAnalyze(b *testing.B) {
	seq := make(bits.Sequence, 4096)
	for i := range seq {
		seq[i] = bits.Bit(i * 7 % 3 % 2)
	}
	w := encoding.EncodeManchester(seq)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Analyze(w)
	}
}
