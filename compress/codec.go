package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
)

// Compressor compresses packed waveform payloads.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Thread Safety: implementations in this package are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original data, or an error if data is corrupted
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressSize is Decompress for a payload whose original size is
	// known. It never produces more than size bytes and fails with
	// errs.ErrDecompressedSize unless the output is exactly size bytes.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression of a frame payload.
type Stats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType
	// OriginalSize is the packed payload size before compression
	OriginalSize int
	// CompressedSize is the payload size after compression
	CompressedSize int
}

// Ratio returns compressed size / original size, 0 for an empty payload.
//
// Values below 1.0 mean the codec saved space; long waveforms with regular
// patterns (Manchester, alternating AMI marks) typically compress well.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared codec instance
//   - error: errs.ErrInvalidCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// readExactly reads all of r, failing once it would exceed size bytes.
// Memory grows with the actual output, not with size.
func readExactly(r io.Reader, size int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(size)+1))
	if err != nil {
		return nil, err
	}

	return checkSize(out, size)
}

func checkSize(out []byte, size int) ([]byte, error) {
	if len(out) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrDecompressedSize, size, len(out))
	}

	return out, nil
}
