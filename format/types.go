package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/linecode/errs"
)

type (
	Scheme          uint8
	CompressionType uint8
)

const (
	SchemeNRZL           Scheme = 0x1 // SchemeNRZL represents Non-Return-to-Zero Level.
	SchemeNRZI           Scheme = 0x2 // SchemeNRZI represents Non-Return-to-Zero Inverted.
	SchemeBipolarAMI     Scheme = 0x3 // SchemeBipolarAMI represents Bipolar Alternate Mark Inversion.
	SchemePseudoternary  Scheme = 0x4 // SchemePseudoternary represents Pseudoternary coding.
	SchemeManchester     Scheme = 0x5 // SchemeManchester represents Manchester (G.E. Thomas convention).
	SchemeDiffManchester Scheme = 0x6 // SchemeDiffManchester represents Differential Manchester.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Schemes lists every supported scheme in presentation order.
var Schemes = []Scheme{
	SchemeNRZL,
	SchemeNRZI,
	SchemeBipolarAMI,
	SchemePseudoternary,
	SchemeManchester,
	SchemeDiffManchester,
}

func (s Scheme) String() string {
	switch s {
	case SchemeNRZL:
		return "NRZ-L"
	case SchemeNRZI:
		return "NRZ-I"
	case SchemeBipolarAMI:
		return "Bipolar AMI"
	case SchemePseudoternary:
		return "Pseudoternary"
	case SchemeManchester:
		return "Manchester"
	case SchemeDiffManchester:
		return "Differential Manchester"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined schemes.
func (s Scheme) Valid() bool {
	return s >= SchemeNRZL && s <= SchemeDiffManchester
}

// CarriesState reports whether the scheme seeds its level or polarity from
// state retained between separate encode calls.
func (s Scheme) CarriesState() bool {
	return s == SchemeNRZI || s == SchemeBipolarAMI
}

// ParseScheme resolves a scheme from its display name or a short alias.
// Matching ignores case, spaces, dashes and underscores, so "NRZ_I",
// "nrz-i" and "nrzi" all resolve to SchemeNRZI.
func ParseScheme(name string) (Scheme, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}

		return r
	}, strings.ToLower(name))

	switch key {
	case "nrzl":
		return SchemeNRZL, nil
	case "nrzi":
		return SchemeNRZI, nil
	case "ami", "bipolarami", "bipolar":
		return SchemeBipolarAMI, nil
	case "pseudoternary":
		return SchemePseudoternary, nil
	case "manchester":
		return SchemeManchester, nil
	case "diffmanchester", "differentialmanchester":
		return SchemeDiffManchester, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownScheme, name)
	}
}

// MarshalText encodes the scheme as its display name.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownScheme, s)
	}

	return []byte(s.String()), nil
}

// UnmarshalText accepts any name ParseScheme accepts.
func (s *Scheme) UnmarshalText(text []byte) error {
	v, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression resolves a compression type from its name, case-insensitively.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// UnmarshalText accepts any name ParseCompression accepts.
func (c *CompressionType) UnmarshalText(text []byte) error {
	v, err := ParseCompression(string(text))
	if err != nil {
		return err
	}
	*c = v

	return nil
}
