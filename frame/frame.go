package frame

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/linecode/compress"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/arloliu/linecode/internal/hash"
	"github.com/arloliu/linecode/internal/options"
	"github.com/arloliu/linecode/internal/pool"
	"github.com/yyyoichi/bitstream-go"
)

// Frame is a decoded waveform frame.
type Frame struct {
	Header   Header
	Waveform encoding.Waveform
}

// Stats reports how much the payload codec saved for this frame.
func (f Frame) Stats() compress.Stats {
	return compress.Stats{
		Algorithm:      f.Header.Compression,
		OriginalSize:   rawPayloadSize(f.Header.BitCount),
		CompressedSize: int(f.Header.PayloadSize),
	}
}

type config struct {
	compression format.CompressionType
	engine      endian.EndianEngine
}

// Option configures Marshal.
type Option = options.Option[*config]

// WithCompression selects the payload codec. The default is format.CompressionNone.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithLittleEndian writes multi-byte fields little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes multi-byte fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes multi-byte fields in the host byte order. The
// header flags record the choice, so any host can read the frame.
func WithNativeEndian() Option {
	return options.NoError(func(c *config) {
		c.engine = endian.GetNativeEngine()
	})
}

// Marshal serializes a waveform produced with scheme into a self-describing frame.
//
// Each sample becomes a 2-bit symbol (00 for 0, 01 for +1, 11 for -1). The
// symbols are packed into 64-bit words, checksummed with xxHash64 and then
// compressed with the configured codec.
//
// Parameters:
//   - scheme: Line code that produced w
//   - w: Waveform to serialize; must pass Waveform.Validate
//   - opts: WithCompression, WithLittleEndian, WithBigEndian or WithNativeEndian
//
// Returns:
//   - []byte: Complete frame, header followed by payload
//   - error: errs.ErrUnknownScheme, errs.ErrInvalidWaveform, a codec error or an option error
func Marshal(scheme format.Scheme, w encoding.Waveform, opts ...Option) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := build(buf, scheme, w, opts); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Write serializes a frame like Marshal and writes it to dst without an
// intermediate copy. Frames written one after another can be read back with
// UnmarshalNext.
//
// Returns:
//   - int64: Number of bytes written
//   - error: Any error Marshal reports, or the error from dst
func Write(dst io.Writer, scheme format.Scheme, w encoding.Waveform, opts ...Option) (int64, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := build(buf, scheme, w, opts); err != nil {
		return 0, err
	}

	return buf.WriteTo(dst)
}

// build appends a complete frame to buf.
func build(buf *pool.ByteBuffer, scheme format.Scheme, w encoding.Waveform, opts []Option) error {
	cfg := &config{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	if !scheme.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownScheme, scheme)
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if uint64(w.Cells()) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bits", errs.ErrPayloadSizeOverflow, w.Cells())
	}

	raw := packLevels(w, cfg.engine)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("failed to compress %s payload: %w", cfg.compression, err)
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", errs.ErrPayloadSizeOverflow, len(payload))
	}

	h := Header{
		Version:     Version,
		Scheme:      scheme,
		Compression: cfg.compression,
		BitCount:    uint32(w.Cells()),
		PayloadSize: uint32(len(payload)),
		Checksum:    hash.Sum(raw),
	}
	if endian.IsBigEndian(cfg.engine) {
		h.Flags |= flagBigEndian
	}

	buf.MustWrite(h.Bytes())
	buf.MustWrite(payload)

	return nil
}

// Unmarshal parses a frame produced by Marshal. data must hold exactly one
// frame; use UnmarshalNext for a stream of frames.
//
// Returns:
//   - Frame: Header and reconstructed waveform
//   - error: A header error, errs.ErrInvalidPayload for truncated, oversized or
//     malformed payloads, or errs.ErrChecksumMismatch
func Unmarshal(data []byte) (Frame, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Frame{}, err
	}

	body := data[HeaderSize:]
	if uint64(len(body)) != uint64(h.PayloadSize) {
		return Frame{}, fmt.Errorf("%w: header declares %d payload bytes, frame carries %d", errs.ErrInvalidPayload, h.PayloadSize, len(body))
	}

	return decodeBody(h, body)
}

// UnmarshalNext parses the frame at the start of data and returns the bytes
// that follow it, so concatenated frames can be read in a loop:
//
//	for len(data) > 0 {
//	    f, rest, err := frame.UnmarshalNext(data)
//	    if err != nil {
//	        return err
//	    }
//	    data = rest
//	}
func UnmarshalNext(data []byte) (Frame, []byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Frame{}, nil, err
	}

	body := data[HeaderSize:]
	if uint64(len(body)) < uint64(h.PayloadSize) {
		return Frame{}, nil, fmt.Errorf("%w: header declares %d payload bytes, only %d remain", errs.ErrInvalidPayload, h.PayloadSize, len(body))
	}

	f, err := decodeBody(h, body[:h.PayloadSize])
	if err != nil {
		return Frame{}, nil, err
	}

	return f, body[h.PayloadSize:], nil
}

// decodeBody decompresses and unpacks a payload whose size already matches h.
// Decompression is capped at the raw size the bit count implies.
func decodeBody(h Header, body []byte) (Frame, error) {
	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Frame{}, err
	}
	want := rawPayloadSize(h.BitCount)
	raw, err := codec.DecompressSize(body, want)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	if len(raw) != want {
		return Frame{}, fmt.Errorf("%w: expected %d raw bytes for %d bits, got %d", errs.ErrInvalidPayload, want, h.BitCount, len(raw))
	}
	if sum := hash.Sum(raw); sum != h.Checksum {
		return Frame{}, fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	w, err := unpackLevels(raw, int(h.BitCount), h.engine())
	if err != nil {
		return Frame{}, err
	}

	return Frame{Header: h, Waveform: w}, nil
}

// rawPayloadSize returns the uncompressed payload size for bitCount cells:
// four bits per cell rounded up to whole 64-bit words.
func rawPayloadSize(bitCount uint32) int {
	words := (uint64(bitCount)*4 + 63) / 64
	return int(words * 8)
}

func packLevels(w encoding.Waveform, engine endian.EndianEngine) []byte {
	if len(w) == 0 {
		return nil
	}

	bw := bitstream.NewBitWriter[uint64](0, 0)
	for _, s := range w {
		switch s.Level {
		case encoding.LevelHigh:
			bw.WriteBool(false)
			bw.WriteBool(true)
		case encoding.LevelLow:
			bw.WriteBool(true)
			bw.WriteBool(true)
		default:
			bw.WriteBool(false)
			bw.WriteBool(false)
		}
	}

	words := bw.Data()
	size := rawPayloadSize(uint32(w.Cells()))
	raw := make([]byte, 0, size)
	for i := 0; len(raw) < size; i++ {
		var word uint64
		if i < len(words) {
			word = words[i]
		}
		raw = engine.AppendUint64(raw, word)
	}

	return raw
}

func unpackLevels(raw []byte, bitCount int, engine endian.EndianEngine) (encoding.Waveform, error) {
	words := make([]uint64, len(raw)/8)
	for i := range words {
		words[i] = engine.Uint64(raw[i*8 : i*8+8])
	}

	r := bitstream.NewBitReader(words, 0, 0)
	w := make(encoding.Waveform, 0, 2*bitCount)
	for i := range 2 * bitCount {
		hi, _ := r.ReadBitAt(2 * i)
		lo, _ := r.ReadBitAt(2*i + 1)

		var level encoding.Level
		switch {
		case !hi && !lo:
			level = encoding.LevelZero
		case !hi && lo:
			level = encoding.LevelHigh
		case hi && lo:
			level = encoding.LevelLow
		default:
			return nil, fmt.Errorf("%w: reserved symbol at sample %d", errs.ErrInvalidPayload, i)
		}

		w = append(w, encoding.Sample{Cell: i / 2, Half: encoding.Half(i % 2), Level: level})
	}

	return w, nil
}
