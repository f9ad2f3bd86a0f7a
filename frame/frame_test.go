package frame

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arloliu/linecode/bits"
	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/endian"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/stretchr/testify/require"
)

var compressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func longSequence(n int) bits.Sequence {
	seq := make(bits.Sequence, n)
	for i := range seq {
		if i%3 != 0 {
			seq[i] = bits.One
		}
	}

	return seq
}

func TestMarshal_RoundTrip(t *testing.T) {
	inputs := []bits.Sequence{
		{},
		bits.MustParse("1"),
		bits.MustParse("10110"),
		bits.MustParse("1111111111111111"),
		longSequence(1000),
	}

	for _, scheme := range format.Schemes {
		for _, ct := range compressionTypes {
			for _, big := range []bool{false, true} {
				opts := []Option{WithCompression(ct)}
				if big {
					opts = append(opts, WithBigEndian())
				}

				for _, seq := range inputs {
					w, err := encoding.Encode(scheme, seq, nil)
					require.NoError(t, err)

					data, err := Marshal(scheme, w, opts...)
					require.NoError(t, err)

					f, err := Unmarshal(data)
					require.NoError(t, err, "%s/%s/%d bits", scheme, ct, len(seq))
					require.Equal(t, scheme, f.Header.Scheme)
					require.Equal(t, ct, f.Header.Compression)
					require.Equal(t, big, f.Header.BigEndian())
					require.Equal(t, uint32(len(seq)), f.Header.BitCount)
					require.Equal(t, w.Levels(), f.Waveform.Levels())
					require.Equal(t, w.Fingerprint(), f.Waveform.Fingerprint())
					require.NoError(t, f.Waveform.Validate())
				}
			}
		}
	}
}

func TestMarshal_DefaultsToLittleEndianUncompressed(t *testing.T) {
	data, err := Marshal(format.SchemeNRZL, encoding.EncodeNRZL(bits.MustParse("10")))
	require.NoError(t, err)

	h, err := ParseHeader(data)
	require.NoError(t, err)
	require.False(t, h.BigEndian())
	require.Equal(t, format.CompressionNone, h.Compression)
	require.Equal(t, []byte{'L', 'C', Version, byte(format.SchemeNRZL)}, data[:4])
	require.Len(t, data, HeaderSize+8)
}

func TestMarshal_CompressesLongWaveforms(t *testing.T) {
	w := encoding.EncodeManchester(longSequence(8192))

	plain, err := Marshal(format.SchemeManchester, w)
	require.NoError(t, err)
	packed, err := Marshal(format.SchemeManchester, w, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Less(t, len(packed), len(plain))

	f, err := Unmarshal(packed)
	require.NoError(t, err)
	require.Less(t, f.Stats().Ratio(), 1.0)
	require.Equal(t, len(plain)-HeaderSize, f.Stats().OriginalSize)
}

func TestMarshal_Errors(t *testing.T) {
	w := encoding.EncodeNRZL(bits.MustParse("1"))

	_, err := Marshal(format.Scheme(0), w)
	require.ErrorIs(t, err, errs.ErrUnknownScheme)

	_, err = Marshal(format.SchemeNRZL, w[:1])
	require.ErrorIs(t, err, errs.ErrInvalidWaveform)

	_, err = Marshal(format.SchemeNRZL, w, WithCompression(format.CompressionType(0x9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestUnmarshal_Errors(t *testing.T) {
	good, err := Marshal(format.SchemePseudoternary, encoding.EncodePseudoternary(bits.MustParse("0101100")))
	require.NoError(t, err)

	corrupt := func(fn func([]byte) []byte) []byte {
		data := append([]byte(nil), good...)
		return fn(data)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", good[:HeaderSize-1], errs.ErrInvalidHeaderSize},
		{"bad magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), errs.ErrInvalidMagic},
		{"bad version", corrupt(func(b []byte) []byte { b[2] = 9; return b }), errs.ErrUnsupportedVersion},
		{"bad scheme", corrupt(func(b []byte) []byte { b[3] = 0; return b }), errs.ErrUnknownScheme},
		{"bad compression", corrupt(func(b []byte) []byte { b[4] = 7; return b }), errs.ErrInvalidCompression},
		{"unknown flag", corrupt(func(b []byte) []byte { b[5] = 0x80; return b }), errs.ErrInvalidHeaderFlags},
		{"truncated payload", good[:len(good)-1], errs.ErrInvalidPayload},
		{"flipped payload bit", corrupt(func(b []byte) []byte { b[HeaderSize] ^= 0x01; return b }), errs.ErrChecksumMismatch},
		{"bit count mismatch", corrupt(func(b []byte) []byte { b[8] = 200; return b }), errs.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMarshal_NativeEndian(t *testing.T) {
	w := encoding.EncodeManchester(longSequence(300))

	data, err := Marshal(format.SchemeManchester, w, WithNativeEndian())
	require.NoError(t, err)

	f, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, endian.IsBigEndian(endian.GetNativeEngine()), f.Header.BigEndian())
	require.Equal(t, w.Levels(), f.Waveform.Levels())
}

func TestWrite_MatchesMarshal(t *testing.T) {
	w := encoding.EncodeDiffManchester(longSequence(129))
	opts := []Option{WithCompression(format.CompressionS2), WithBigEndian()}

	want, err := Marshal(format.SchemeDiffManchester, w, opts...)
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := Write(&out, format.SchemeDiffManchester, w, opts...)
	require.NoError(t, err)
	require.Equal(t, int64(len(want)), n)
	require.Equal(t, want, out.Bytes())

	_, err = Write(&out, format.Scheme(0), w)
	require.ErrorIs(t, err, errs.ErrUnknownScheme)
}

func TestUnmarshalNext_ReadsConcatenatedFrames(t *testing.T) {
	var stream bytes.Buffer
	var want []encoding.Waveform

	for i, ct := range compressionTypes {
		seq := longSequence(10 + 50*i)
		w, err := encoding.Encode(format.Schemes[i], seq, nil)
		require.NoError(t, err)
		want = append(want, w)

		_, err = Write(&stream, format.Schemes[i], w, WithCompression(ct))
		require.NoError(t, err)
	}

	_, err := Unmarshal(stream.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	data := stream.Bytes()
	for i := range want {
		f, rest, err := UnmarshalNext(data)
		require.NoError(t, err, "frame %d", i)
		require.Equal(t, format.Schemes[i], f.Header.Scheme)
		require.Equal(t, want[i].Levels(), f.Waveform.Levels())
		data = rest
	}
	require.Empty(t, data)
}

func TestUnmarshalNext_Truncated(t *testing.T) {
	data, err := Marshal(format.SchemeNRZL, encoding.EncodeNRZL(longSequence(40)))
	require.NoError(t, err)

	_, _, err = UnmarshalNext(data[:len(data)-1])
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, _, err = UnmarshalNext(data[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestUnmarshal_RejectsInflatedBitCount(t *testing.T) {
	w := encoding.EncodeManchester(longSequence(64))

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		data, err := Marshal(format.SchemeManchester, w, WithCompression(ct))
		require.NoError(t, err)

		// Claim ~4 billion cells; the compressed body holds 64.
		binary.LittleEndian.PutUint32(data[8:12], 0xFFFFFFF0)

		_, err = Unmarshal(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayload, ct.String())
		require.ErrorIs(t, err, errs.ErrDecompressedSize, ct.String())
	}
}

func TestHeader_BytesParse(t *testing.T) {
	for _, flags := range []uint8{0, flagBigEndian} {
		h := Header{
			Version:     Version,
			Scheme:      format.SchemeDiffManchester,
			Compression: format.CompressionLZ4,
			Flags:       flags,
			BitCount:    123456,
			PayloadSize: 789,
			Checksum:    0x0123456789abcdef,
		}

		var parsed Header
		require.NoError(t, parsed.Parse(h.Bytes()))
		require.Equal(t, h, parsed)
	}

	var h Header
	require.ErrorIs(t, h.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
}
