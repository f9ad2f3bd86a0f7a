package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBadSeed = errors.New("seed must be +1 or -1")

type seedConfig struct {
	level    int8
	polarity int8
	calls    []string
}

func withLevel(level int8) Option[*seedConfig] {
	return New(func(c *seedConfig) error {
		if level != 1 && level != -1 {
			return errBadSeed
		}
		c.level = level
		c.calls = append(c.calls, "level")

		return nil
	})
}

func withPolarity(polarity int8) Option[*seedConfig] {
	return NoError(func(c *seedConfig) {
		c.polarity = polarity
		c.calls = append(c.calls, "polarity")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &seedConfig{}
		err := Apply(cfg, withPolarity(-1), withLevel(-1), withPolarity(1))

		require.NoError(t, err)
		require.Equal(t, int8(-1), cfg.level)
		require.Equal(t, int8(1), cfg.polarity)
		require.Equal(t, []string{"polarity", "level", "polarity"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &seedConfig{}
		err := Apply(cfg, withPolarity(-1), withLevel(0), withPolarity(1))

		require.ErrorIs(t, err, errBadSeed)
		require.Equal(t, int8(-1), cfg.polarity)
		require.Equal(t, []string{"polarity"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &seedConfig{level: 1}
		require.NoError(t, Apply(cfg))
		require.Equal(t, int8(1), cfg.level)
	})
}

func TestApply_ValueTarget(t *testing.T) {
	var total int
	add := func(n int) Option[*int] {
		return NoError(func(p *int) { *p += n })
	}

	require.NoError(t, Apply(&total, add(2), add(3)))
	require.Equal(t, 5, total)
}
