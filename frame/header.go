package frame

import (
	"fmt"

	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

const (
	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 24

	// Version is the frame layout version written by Marshal.
	Version uint8 = 1

	magic0 byte = 'L'
	magic1 byte = 'C'

	flagBigEndian uint8 = 0x01
	knownFlags          = flagBigEndian
)

// Header is the fixed-size section at the start of every frame.
//
// Layout:
//
//	offset  size  field
//	0       2     magic "LC"
//	2       1     version
//	3       1     scheme
//	4       1     compression
//	5       1     flags (bit 0: big-endian)
//	6       2     reserved, zero
//	8       4     bit count
//	12      4     payload size (after compression)
//	16      8     xxHash64 of the uncompressed payload
//
// Bytes 0-7 are endian-neutral; multi-byte fields use the order in flags.
type Header struct {
	Version     uint8
	Scheme      format.Scheme
	Compression format.CompressionType
	Flags       uint8
	BitCount    uint32
	PayloadSize uint32
	Checksum    uint64
}

// engine returns the byte order selected by the header flags.
func (h *Header) engine() endian.EndianEngine {
	if h.Flags&flagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// BigEndian reports whether the frame's multi-byte fields are big-endian.
func (h *Header) BigEndian() bool {
	return h.Flags&flagBigEndian != 0
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.engine()

	b[0] = magic0
	b[1] = magic1
	b[2] = h.Version
	b[3] = byte(h.Scheme)
	b[4] = byte(h.Compression)
	b[5] = h.Flags
	engine.PutUint32(b[8:12], h.BitCount)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize, ErrInvalidMagic, ErrUnsupportedVersion,
//     ErrUnknownScheme, ErrInvalidCompression or ErrInvalidHeaderFlags
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if data[0] != magic0 || data[1] != magic1 {
		return fmt.Errorf("%w: % x", errs.ErrInvalidMagic, data[0:2])
	}

	h.Version = data[2]
	h.Scheme = format.Scheme(data[3])
	h.Compression = format.CompressionType(data[4])
	h.Flags = data[5]

	engine := h.engine()
	h.BitCount = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Validate()
}

// Validate checks that every header field holds a value this version understands.
func (h *Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.Scheme.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownScheme, h.Scheme)
	}
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, h.Compression)
	}
	if h.Flags&^knownFlags != 0 {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidHeaderFlags, h.Flags)
	}

	return nil
}

// ParseHeader parses a Header from the start of data.
//
// Returns:
//   - Header: Parsed header
//   - error: errs.ErrInvalidHeaderSize if data is shorter than HeaderSize, or a validation error
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
