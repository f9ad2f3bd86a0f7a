package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/frame"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputCBOR  = "cbor"
	outputFrame = "frame"
)

var outputFormats = []string{outputTable, outputJSON, outputCBOR, outputFrame}

// Frame byte orders accepted by --byte-order.
const (
	byteOrderLittle = "little"
	byteOrderBig    = "big"
	byteOrderNative = "native"
)

var byteOrders = []string{byteOrderLittle, byteOrderBig, byteOrderNative}

// Config holds the settings a run uses. Values come from defaults, then an
// optional YAML file, then flags.
//
// Example file:
//
//	schemes: [manchester, "diff manchester"]
//	output: json
//	compression: zstd
//	byte_order: native
//	nrzi_level: -1
//	ami_polarity: 1
//	analyze: true
type Config struct {
	Schemes     []format.Scheme        `yaml:"schemes"`
	Output      string                 `yaml:"output"`
	Compression format.CompressionType `yaml:"compression"`
	NRZILevel   encoding.State         `yaml:"nrzi_level"`
	AMIPolarity encoding.State         `yaml:"ami_polarity"`
	ByteOrder   string                 `yaml:"byte_order"`
	Filter      bool                   `yaml:"filter"`
	Text        bool                   `yaml:"text"`
	Analyze     bool                   `yaml:"analyze"`
}

// DefaultConfig returns the configuration used when neither a file nor flags
// say otherwise: every scheme, table output, no compression, default seeds.
func DefaultConfig() *Config {
	return &Config{
		Schemes:     slices.Clone(format.Schemes),
		Output:      outputTable,
		Compression: format.CompressionNone,
		ByteOrder:   byteOrderLittle,
		NRZILevel:   encoding.DefaultSeed,
		AMIPolarity: encoding.DefaultSeed,
	}
}

// LoadConfigFile reads a YAML config file on top of the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value and removes
// duplicate schemes, keeping the first occurrence.
func (c *Config) Validate() error {
	if len(c.Schemes) == 0 {
		return fmt.Errorf("%w: no schemes selected", errs.ErrInvalidOption)
	}

	seen := make(map[format.Scheme]bool, len(c.Schemes))
	schemes := c.Schemes[:0:0]
	for _, s := range c.Schemes {
		if !s.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrUnknownScheme, s)
		}
		if !seen[s] {
			seen[s] = true
			schemes = append(schemes, s)
		}
	}
	c.Schemes = schemes

	if !slices.Contains(outputFormats, c.Output) {
		return fmt.Errorf("%w: output must be one of %v, got %q", errs.ErrInvalidOption, outputFormats, c.Output)
	}
	if !slices.Contains(byteOrders, c.ByteOrder) {
		return fmt.Errorf("%w: byte order must be one of %v, got %q", errs.ErrInvalidOption, byteOrders, c.ByteOrder)
	}
	if !c.NRZILevel.Valid() {
		return fmt.Errorf("%w: nrzi level must be +1 or -1, got %d", errs.ErrInvalidOption, c.NRZILevel)
	}
	if !c.AMIPolarity.Valid() {
		return fmt.Errorf("%w: ami polarity must be +1 or -1, got %d", errs.ErrInvalidOption, c.AMIPolarity)
	}

	return nil
}

// FrameOptions returns the frame options for the configured compression and
// byte order.
func (c *Config) FrameOptions() []frame.Option {
	opts := []frame.Option{frame.WithCompression(c.Compression)}
	switch c.ByteOrder {
	case byteOrderBig:
		opts = append(opts, frame.WithBigEndian())
	case byteOrderNative:
		opts = append(opts, frame.WithNativeEndian())
	default:
		opts = append(opts, frame.WithLittleEndian())
	}

	return opts
}

// Carry returns the carry state seeded from the configured level and polarity.
func (c *Config) Carry() *encoding.Carry {
	return &encoding.Carry{NRZILevel: c.NRZILevel, AMIPolarity: c.AMIPolarity}
}
