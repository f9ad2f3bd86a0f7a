package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/linecode/errs"
)

// S2Compressor compresses waveform payloads with S2, the Snappy-compatible
// block format from klauspost/compress.
//
// S2 trades ratio for speed: it is the cheapest codec to apply to every frame
// of a live stream, while zstd suits archived waveforms. S2 blocks record
// their decoded length, which DecompressSize checks before allocating.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize decodes an S2 block whose decoded length must be size.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return checkSize(nil, size)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: block declares %d bytes, expected %d", errs.ErrDecompressedSize, n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
