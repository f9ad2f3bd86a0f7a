// Package errs defines the sentinel errors shared by the linecode packages.
//
// Callers should compare with errors.Is, since most call sites wrap these
// values with additional context.
package errs

import "errors"

// Bit source errors.
var (
	// ErrInvalidSymbol is returned when a character other than '0' or '1' reaches the bit parser.
	ErrInvalidSymbol = errors.New("invalid bit symbol")
)

// Codec errors.
var (
	ErrUnknownScheme   = errors.New("unknown line coding scheme")
	ErrInvalidWaveform = errors.New("invalid waveform")
	ErrInvalidOption   = errors.New("invalid option")
)

// Frame container errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid frame header size")
	ErrInvalidMagic        = errors.New("invalid frame magic")
	ErrUnsupportedVersion  = errors.New("unsupported frame version")
	ErrInvalidHeaderFlags  = errors.New("invalid frame header flags")
	ErrInvalidPayload      = errors.New("invalid frame payload")
	ErrChecksumMismatch    = errors.New("frame payload checksum mismatch")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrPayloadSizeOverflow = errors.New("frame payload exceeds maximum size")
)

// Compression errors.
var (
	// ErrDecompressedSize is returned when a payload does not decompress to exactly the expected size.
	ErrDecompressedSize = errors.New("decompressed size mismatch")
)
