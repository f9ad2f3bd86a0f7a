package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/frame"
)

func writeResults(w io.Writer, cfg *Config, results []result, logger *slog.Logger) error {
	switch cfg.Output {
	case outputTable:
		return writeTable(w, results, cfg.Analyze)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	case outputCBOR:
		return writeCBOR(w, results)
	case outputFrame:
		return writeFrames(w, cfg, results, logger)
	default:
		return fmt.Errorf("unsupported output format %q", cfg.Output)
	}
}

// writeTable prints one row per result. Each cell of the waveform is shown
// as two level symbols, start of cell then midpoint.
func writeTable(w io.Writer, results []result, analyze bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "INPUT\tSCHEME\tWAVEFORM"
	if analyze {
		header += "\tDC\tPOWER\tTRANSITIONS\tLONGEST RUN"
	}
	fmt.Fprintln(tw, header)

	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s", r.Input, r.Scheme, waveformString(r.Waveform))
		if r.Report != nil {
			fmt.Fprintf(tw, "\t%+.3f\t%.3f\t%d/%d\t%d",
				r.Report.DC, r.Report.Power,
				r.Report.BoundaryTransitions, r.Report.MidTransitions,
				r.Report.LongestRun)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func waveformString(w encoding.Waveform) string {
	var sb strings.Builder
	for i := range w.Cells() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		first, second := w.Cell(i)
		sb.WriteByte(levelSymbol(first))
		sb.WriteByte(levelSymbol(second))
	}

	return sb.String()
}

func levelSymbol(l encoding.Level) byte {
	switch l {
	case encoding.LevelHigh:
		return '+'
	case encoding.LevelLow:
		return '-'
	default:
		return '0'
	}
}

// cborEncMode writes Core Deterministic CBOR with schemes as text strings.
func cborEncMode() (cbor.EncMode, error) {
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString

	return opts.EncMode()
}

func writeCBOR(w io.Writer, results []result) error {
	em, err := cborEncMode()
	if err != nil {
		return fmt.Errorf("cbor encoder: %w", err)
	}

	return em.NewEncoder(w).Encode(results)
}

// writeFrames writes one frame per result, back to back. Each header records
// its payload size, so frame.UnmarshalNext can split the stream again.
func writeFrames(w io.Writer, cfg *Config, results []result, logger *slog.Logger) error {
	opts := cfg.FrameOptions()

	for _, r := range results {
		n, err := frame.Write(w, r.Scheme, r.Waveform, opts...)
		if err != nil {
			return err
		}

		logger.Debug("frame written",
			"scheme", r.Scheme,
			"bits", r.Waveform.Cells(),
			"compression", cfg.Compression,
			"byte_order", cfg.ByteOrder,
			"size", n)
	}

	return nil
}
