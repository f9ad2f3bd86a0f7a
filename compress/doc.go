// Package compress provides the payload codecs used by the frame container.
//
// Waveform frames store levels as packed 2-bit symbols. Line codes are highly
// repetitive (Manchester alternates every half cell, NRZ holds runs), so a
// general-purpose compressor applied after packing usually shrinks long
// waveforms further.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, klauspost/compress by default,
//     valyala/gozstd when built with cgo and the gozstd tag
//   - S2 (format.CompressionS2): fast, good ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs treat an empty input as an empty output.
package compress
