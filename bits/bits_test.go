package bits

import (
	"testing"

	"github.com/arloliu/linecode/errs"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("binary text", func(t *testing.T) {
		seq, err := Parse("10110")
		require.NoError(t, err)
		require.Equal(t, Sequence{1, 0, 1, 1, 0}, seq)
		require.Equal(t, "10110", seq.String())
	})

	t.Run("empty text yields empty sequence", func(t *testing.T) {
		seq, err := Parse("")
		require.NoError(t, err)
		require.NotNil(t, seq)
		require.Empty(t, seq)
	})

	t.Run("rejects non-binary characters", func(t *testing.T) {
		for _, text := range []string{"102", "1 0", "abc", "01\n", "0１"} {
			seq, err := Parse(text)
			require.ErrorIs(t, err, errs.ErrInvalidSymbol, text)
			require.Nil(t, seq)
		}
	})

	t.Run("reports offending offset", func(t *testing.T) {
		_, err := Parse("0012")
		require.ErrorContains(t, err, "'2' at offset 3")
	})
}

func TestMustParse(t *testing.T) {
	require.Equal(t, Sequence{0, 1}, MustParse("01"))
	require.Panics(t, func() { MustParse("x") })
}

func TestFilter(t *testing.T) {
	require.Equal(t, "10110", Filter("1a0 1-1x0"))
	require.Equal(t, "", Filter("hello"))
	require.Equal(t, "", Filter(""))

	seq, err := Parse(Filter("1,0,1"))
	require.NoError(t, err)
	require.Equal(t, "101", seq.String())
}

func TestFromBytes(t *testing.T) {
	seq := FromBytes([]byte{0x41, 0x80})
	require.Len(t, seq, 16)
	require.Equal(t, "0100000110000000", seq.String())

	require.Empty(t, FromBytes(nil))
}

func TestPack_RoundTrip(t *testing.T) {
	inputs := []string{"1", "0", "10110", "1111111100000000", "0101010101010101010101010101010101010101010101010101010101010101011"}

	for _, in := range inputs {
		seq := MustParse(in)
		words, n := seq.Pack()
		require.Equal(t, len(seq), n)
		require.Equal(t, seq, FromWords(words, n), in)
	}

	words, n := Sequence{}.Pack()
	require.Nil(t, words)
	require.Zero(t, n)
}

func TestFromWords_ClampsLength(t *testing.T) {
	seq := FromWords([]uint64{0}, 100)
	require.Len(t, seq, 64)
}

func TestComplement(t *testing.T) {
	seq := MustParse("11010")
	comp := seq.Complement()

	require.Equal(t, "00101", comp.String())
	require.Equal(t, "11010", seq.String(), "input must not be modified")
	require.Equal(t, seq, comp.Complement())
}

func TestOnesAndEqual(t *testing.T) {
	seq := MustParse("1101")
	require.Equal(t, 3, seq.Ones())
	require.True(t, seq.Equal(MustParse("1101")))
	require.False(t, seq.Equal(MustParse("1100")))
	require.False(t, seq.Equal(MustParse("110")))
	require.True(t, Sequence{}.Equal(nil))
}
