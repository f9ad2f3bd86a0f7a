package encoding

import (
	"fmt"

	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/options"
)

// Encoder turns a bit sequence into a waveform under one line coding scheme.
//
// Encoders for NRZ-I and Bipolar AMI retain their level or polarity between
// Encode calls; the others produce the same waveform for the same input
// every time.
type Encoder interface {
	// Scheme identifies the line code.
	Scheme() format.Scheme
	// Encode returns a freshly allocated waveform with two samples per bit.
	// An empty sequence yields an empty waveform.
	Encode(seq bits.Sequence) Waveform
	// Reset restores the encoder's starting state. A no-op for schemes that
	// keep nothing between calls.
	Reset()
}

// NewEncoder creates the Encoder for scheme.
//
// Parameters:
//   - scheme: Line coding scheme
//   - opts: WithInitialLevel, WithInitialPolarity or WithCarry
//
// Returns:
//   - Encoder: The scheme's encoder
//   - error: errs.ErrUnknownScheme, or errs.ErrInvalidOption from an option
func NewEncoder(scheme format.Scheme, opts ...EncoderOption) (Encoder, error) {
	cfg := &encoderConfig{level: DefaultSeed, polarity: DefaultSeed}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch scheme {
	case format.SchemeNRZL:
		return NRZLEncoder{}, nil
	case format.SchemeNRZI:
		return NewNRZIEncoder(cfg.level), nil
	case format.SchemeBipolarAMI:
		return NewAMIEncoder(cfg.polarity), nil
	case format.SchemePseudoternary:
		return PseudoternaryEncoder{}, nil
	case format.SchemeManchester:
		return ManchesterEncoder{}, nil
	case format.SchemeDiffManchester:
		return DiffManchesterEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownScheme, scheme)
	}
}

// Encode encodes seq with scheme in a single call.
//
// carry may be nil, in which case NRZ-I and Bipolar AMI start from
// DefaultSeed and nothing is retained. Otherwise they seed from carry and
// write their final state back into it; the other schemes leave it alone.
//
// Returns:
//   - Waveform: Two samples per bit
//   - error: errs.ErrUnknownScheme for an undefined scheme
func Encode(scheme format.Scheme, seq bits.Sequence, carry *Carry) (Waveform, error) {
	switch scheme {
	case format.SchemeNRZL:
		return EncodeNRZL(seq), nil
	case format.SchemeNRZI:
		seed := DefaultSeed
		if carry != nil {
			seed = carry.NRZILevel
		}
		w, level := EncodeNRZI(seq, seed)
		if carry != nil {
			carry.NRZILevel = level
		}

		return w, nil
	case format.SchemeBipolarAMI:
		seed := DefaultSeed
		if carry != nil {
			seed = carry.AMIPolarity
		}
		w, polarity := EncodeAMI(seq, seed)
		if carry != nil {
			carry.AMIPolarity = polarity
		}

		return w, nil
	case format.SchemePseudoternary:
		return EncodePseudoternary(seq), nil
	case format.SchemeManchester:
		return EncodeManchester(seq), nil
	case format.SchemeDiffManchester:
		return EncodeDiffManchester(seq), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownScheme, scheme)
	}
}
