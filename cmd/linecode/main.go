package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/arloliu/linecode/analysis"
	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/format"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// exitError is the process exit code for any failed run.
const exitError = 2

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitError)
	}
}

// options holds the raw flag values before they are merged into a Config.
type options struct {
	configPath  string
	schemes     []string
	output      string
	compression string
	nrziLevel   int8
	amiPolarity int8
	byteOrder   string
	filter      bool
	text        bool
	analyze     bool
	verbose     bool
	version     bool
	help        bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("linecode", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "YAML config file; flags override its values")
	flagSet.StringSliceVarP(&opts.schemes, "scheme", "s", nil, "scheme to encode with (repeatable; default: all)")
	flagSet.StringVarP(&opts.output, "output", "o", outputTable, "output format: table, json, cbor or frame")
	flagSet.StringVar(&opts.compression, "compression", "none", "frame payload compression: none, zstd, s2 or lz4")
	flagSet.Int8Var(&opts.nrziLevel, "nrzi-level", int8(encoding.DefaultSeed), "NRZ-I starting level (+1 or -1)")
	flagSet.Int8Var(&opts.amiPolarity, "ami-polarity", int8(encoding.DefaultSeed), "Bipolar AMI starting polarity (+1 or -1)")
	flagSet.StringVar(&opts.byteOrder, "byte-order", byteOrderLittle, "frame byte order: little, big or native")
	flagSet.BoolVar(&opts.filter, "filter", false, "drop characters other than 0 and 1 instead of rejecting them")
	flagSet.BoolVar(&opts.text, "text", false, "encode the UTF-8 bytes of each argument, most significant bit first")
	flagSet.BoolVarP(&opts.analyze, "analyze", "a", false, "include signal statistics")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")
	flagSet.BoolVar(&opts.version, "version", false, "print the version and exit")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")

	return flagSet
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flagSet := newFlagSet(&opts)
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}

		return err
	}

	if opts.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if opts.version {
		fmt.Fprintf(stdout, "linecode %s\n", version)
		return nil
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := resolveConfig(flagSet, &opts)
	if err != nil {
		return err
	}

	inputs, err := readInputs(flagSet.Args(), stdin)
	if err != nil {
		return err
	}

	logger.Debug("configuration resolved",
		"schemes", cfg.Schemes,
		"output", cfg.Output,
		"compression", cfg.Compression,
		"nrzi_level", cfg.NRZILevel,
		"ami_polarity", cfg.AMIPolarity,
		"inputs", len(inputs))

	results, err := encodeInputs(cfg, inputs, logger)
	if err != nil {
		return err
	}

	return writeResults(stdout, cfg, results, logger)
}

// resolveConfig layers defaults, the optional config file and explicitly set
// flags, in that order.
func resolveConfig(flagSet *pflag.FlagSet, opts *options) (*Config, error) {
	cfg := DefaultConfig()
	if opts.configPath != "" {
		loaded, err := LoadConfigFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagSet.Changed("scheme") {
		cfg.Schemes = cfg.Schemes[:0]
		for _, name := range opts.schemes {
			scheme, err := format.ParseScheme(name)
			if err != nil {
				return nil, err
			}
			cfg.Schemes = append(cfg.Schemes, scheme)
		}
	}
	if flagSet.Changed("output") {
		cfg.Output = strings.ToLower(opts.output)
	}
	if flagSet.Changed("compression") {
		ct, err := format.ParseCompression(opts.compression)
		if err != nil {
			return nil, err
		}
		cfg.Compression = ct
	}
	if flagSet.Changed("nrzi-level") {
		cfg.NRZILevel = encoding.State(opts.nrziLevel)
	}
	if flagSet.Changed("ami-polarity") {
		cfg.AMIPolarity = encoding.State(opts.amiPolarity)
	}
	if flagSet.Changed("byte-order") {
		cfg.ByteOrder = strings.ToLower(opts.byteOrder)
	}
	if flagSet.Changed("filter") {
		cfg.Filter = opts.filter
	}
	if flagSet.Changed("text") {
		cfg.Text = opts.text
	}
	if flagSet.Changed("analyze") {
		cfg.Analyze = opts.analyze
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readInputs returns the positional arguments, or the whitespace-separated
// fields of stdin when there are none.
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	inputs := strings.Fields(string(data))
	if len(inputs) == 0 {
		return nil, errors.New("no input: pass a bit string argument or pipe one on stdin")
	}

	return inputs, nil
}

// result is one input encoded with one scheme.
type result struct {
	Input    string            `json:"input"`
	Scheme   format.Scheme     `json:"scheme"`
	Waveform encoding.Waveform `json:"waveform"`
	Report   *analysis.Report  `json:"report,omitempty"`
}

// encodeInputs encodes each input with every configured scheme. NRZ-I and
// Bipolar AMI state carries from one input to the next, so several arguments
// behave as one continuous stream.
func encodeInputs(cfg *Config, inputs []string, logger *slog.Logger) ([]result, error) {
	carry := cfg.Carry()
	results := make([]result, 0, len(inputs)*len(cfg.Schemes))

	for _, input := range inputs {
		seq, err := parseInput(cfg, input)
		if err != nil {
			return nil, err
		}

		entries, err := analysis.CompareSchemes(seq, carry, cfg.Schemes...)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			logger.Debug("encoded", "scheme", e.Scheme, "bits", len(seq), "samples", len(e.Waveform))

			r := result{Input: seq.String(), Scheme: e.Scheme, Waveform: e.Waveform}
			if cfg.Analyze {
				report := e.Report
				r.Report = &report
			}
			results = append(results, r)
		}
	}

	return results, nil
}

func parseInput(cfg *Config, input string) (bits.Sequence, error) {
	if cfg.Text {
		return bits.FromBytes([]byte(input)), nil
	}
	if cfg.Filter {
		input = bits.Filter(input)
	}

	return bits.Parse(input)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `linecode encodes bit strings with digital line codes.

Usage:
  linecode [flags] BITS...

Each BITS argument is encoded in turn; NRZ-I and Bipolar AMI continue from
where the previous argument left the line. With no arguments, bit strings
are read from stdin.

Examples:
  # Every scheme as a table
  linecode 10110

  # Manchester and Differential Manchester with statistics
  linecode -s manchester -s diff-manchester --analyze 0011

  # A zstd-compressed frame
  linecode -s nrzi -o frame --compression zstd 1101 > nrzi.lcf

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
