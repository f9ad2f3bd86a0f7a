package linecode

import (
	"testing"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/errs"
	"github.com/arloliu/linecode/format"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	seq, err := ParseBits("0110")
	require.NoError(t, err)
	require.Equal(t, "0110", seq.String())

	_, err = ParseBits("01x0")
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
	require.Contains(t, err.Error(), "offset 2")
}

func TestEncodeString(t *testing.T) {
	w, err := EncodeString(format.SchemeNRZL, "10110", nil)
	require.NoError(t, err)
	require.Equal(t, []encoding.Level{1, 1, -1, -1, 1, 1, 1, 1, -1, -1}, w.Levels())

	w, err = EncodeString(format.SchemeManchester, "", nil)
	require.NoError(t, err)
	require.Empty(t, w)
}

func TestEncodeString_InvalidSymbolLeavesCarry(t *testing.T) {
	carry := NewCarry()
	carry.NRZILevel = encoding.StateNegative

	_, err := EncodeString(format.SchemeNRZI, "1 0", carry)
	require.ErrorIs(t, err, errs.ErrInvalidSymbol)
	require.Equal(t, encoding.StateNegative, carry.NRZILevel)
}

func TestEncode_CarriesNRZIAcrossCalls(t *testing.T) {
	carry := NewCarry()

	seq, err := ParseBits("1101")
	require.NoError(t, err)
	joined, err := ParseBits("11010011")
	require.NoError(t, err)

	first, err := Encode(format.SchemeNRZI, seq, carry)
	require.NoError(t, err)
	second, err := EncodeString(format.SchemeNRZI, "0011", carry)
	require.NoError(t, err)

	whole, err := Encode(format.SchemeNRZI, joined, nil)
	require.NoError(t, err)
	require.Equal(t, whole.Levels(), append(first.Levels(), second.Levels()...))
}

func TestEncode_UnknownScheme(t *testing.T) {
	_, err := EncodeString(format.Scheme(0), "1", nil)
	require.ErrorIs(t, err, errs.ErrUnknownScheme)
}

func TestDecode(t *testing.T) {
	for _, scheme := range format.Schemes {
		w, err := EncodeString(scheme, "1001101", nil)
		require.NoError(t, err)

		seq, err := Decode(scheme, w, nil)
		require.NoError(t, err)

		want := "1001101"
		if scheme == format.SchemeDiffManchester {
			want = "100110"
		}
		require.Equal(t, want, seq.String(), scheme.String())
	}
}
