package encoding

import (
	"fmt"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/internal/options"
)

// State is a carry-over line level or mark polarity. It is always exactly
// +1 or -1.
type State int8

const (
	StateNegative State = -1
	StatePositive State = 1

	// DefaultSeed is the level or polarity every stateful encoder starts from
	// when the caller supplies nothing else.
	DefaultSeed = StatePositive
)

// Valid reports whether s is +1 or -1.
func (s State) Valid() bool {
	return s == StatePositive || s == StateNegative
}

// Invert returns the opposite state.
func (s State) Invert() State {
	return -s
}

// Level returns the state as a line level.
func (s State) Level() Level {
	return Level(s)
}

// orDefault maps the zero value and any other invalid state to DefaultSeed,
// so a zero Carry behaves like a freshly seeded one.
func (s State) orDefault() State {
	if s.Valid() {
		return s
	}

	return DefaultSeed
}

// Carry holds the state that survives between separate encode calls.
//
// Only NRZ-I and Bipolar AMI read and update a Carry; Pseudoternary and
// Differential Manchester always restart from DefaultSeed. A Carry must not
// be shared between concurrently running encodings of different inputs;
// give each stream its own.
type Carry struct {
	// NRZILevel is the line level NRZ-I left the line at.
	NRZILevel State `json:"nrzi_level" yaml:"nrzi_level"`
	// AMIPolarity is the polarity of the last mark Bipolar AMI emitted.
	AMIPolarity State `json:"ami_polarity" yaml:"ami_polarity"`
}

// NewCarry returns a Carry seeded with DefaultSeed for both schemes.
func NewCarry() *Carry {
	return &Carry{NRZILevel: DefaultSeed, AMIPolarity: DefaultSeed}
}

// Reset reseeds both cells with DefaultSeed.
func (c *Carry) Reset() {
	c.NRZILevel = DefaultSeed
	c.AMIPolarity = DefaultSeed
}

// encoderConfig collects the seeds handed to NewEncoder.
type encoderConfig struct {
	level    State
	polarity State
}

// EncoderOption configures encoders built by NewEncoder.
type EncoderOption = options.Option[*encoderConfig]

// WithInitialLevel sets the NRZ-I starting level. Other schemes ignore it.
//
// Returns an error wrapping errs.ErrInvalidOption unless level is +1 or -1.
func WithInitialLevel(level State) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !level.Valid() {
			return fmt.Errorf("%w: initial level must be +1 or -1, got %d", errs.ErrInvalidOption, level)
		}
		c.level = level

		return nil
	})
}

// WithInitialPolarity sets the Bipolar AMI starting polarity. Other schemes ignore it.
//
// Returns an error wrapping errs.ErrInvalidOption unless polarity is +1 or -1.
func WithInitialPolarity(polarity State) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if !polarity.Valid() {
			return fmt.Errorf("%w: initial polarity must be +1 or -1, got %d", errs.ErrInvalidOption, polarity)
		}
		c.polarity = polarity

		return nil
	})
}

// WithCarry seeds NRZ-I and Bipolar AMI from an existing Carry.
func WithCarry(carry Carry) EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.level = carry.NRZILevel.orDefault()
		c.polarity = carry.AMIPolarity.orDefault()
	})
}
