// Package analysis computes signal statistics over encoded waveforms.
//
// The statistics are the ones used to compare line codes against each other:
//
//   - DC component: the mean line level. Schemes whose DC tends to zero
//     (Bipolar AMI, Pseudoternary, both Manchester variants) suit
//     transformer-coupled links.
//   - Power: the mean squared level.
//   - Transitions: level changes at cell boundaries and at cell midpoints.
//     Frequent transitions help receivers recover the clock.
//   - Longest run: the longest stretch of consecutive equal samples.
//
// # Usage
//
// Analyze a single waveform:
//
//	w := encoding.EncodeManchester(bits.MustParse("10110"))
//	report, err := analysis.Analyze(w)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.DC, report.MidTransitions)
//
// Compare every scheme on the same input:
//
//	entries, err := analysis.Compare(bits.MustParse("10110"), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range entries {
//	    fmt.Printf("%-24s dc=%+.2f\n", e.Scheme, e.Report.DC)
//	}
package analysis
