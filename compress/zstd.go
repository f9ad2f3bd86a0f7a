package compress

// ZstdCompressor provides Zstandard compression for waveform payloads.
//
// The implementation is selected at build time: pure Go (klauspost/compress)
// by default, cgo libzstd (valyala/gozstd) with the gozstd build tag.
type ZstdCompressor struct{}

// zstdWindowSize is the largest back-reference window written or accepted.
const zstdWindowSize = 8 << 20

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
