package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("capacity cannot be negative")

type bufferConfig struct {
	capacity int
	name     string
	strict   bool
	lastCall string
}

func (c *bufferConfig) setCapacity(n int) error {
	if n < 0 {
		return errNegative
	}
	c.capacity = n
	c.lastCall = "setCapacity"

	return nil
}

func withCapacity(n int) Option[*bufferConfig] {
	return New(func(c *bufferConfig) error { return c.setCapacity(n) })
}

func withName(name string) Option[*bufferConfig] {
	return NoError(func(c *bufferConfig) {
		c.name = name
		c.lastCall = "withName"
	})
}

func withStrict() Option[*bufferConfig] {
	return NoError(func(c *bufferConfig) {
		c.strict = true
		c.lastCall = "withStrict"
	})
}

func TestNew(t *testing.T) {
	cfg := &bufferConfig{}

	require.NoError(t, withCapacity(42).apply(cfg))
	require.Equal(t, 42, cfg.capacity)

	err := withCapacity(-1).apply(cfg)
	require.ErrorIs(t, err, errNegative)
	require.Equal(t, 42, cfg.capacity)
}

func TestNoError(t *testing.T) {
	cfg := &bufferConfig{}

	require.NoError(t, withName("lane").apply(cfg))
	require.Equal(t, "lane", cfg.name)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &bufferConfig{}

		err := Apply(cfg, withCapacity(10), withName("x"), withStrict())
		require.NoError(t, err)
		require.Equal(t, 10, cfg.capacity)
		require.Equal(t, "x", cfg.name)
		require.True(t, cfg.strict)
		require.Equal(t, "withStrict", cfg.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &bufferConfig{}

		err := Apply(cfg, withCapacity(5), withCapacity(-1), withName("skipped"))
		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, 5, cfg.capacity)
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &bufferConfig{}

		require.NoError(t, Apply(cfg, nil, withName("y")))
		require.Equal(t, "y", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &bufferConfig{}

		require.NoError(t, Apply(cfg))
		require.Equal(t, bufferConfig{}, *cfg)
	})
}

func TestApply_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 28 })

	require.NoError(t, Apply(&n, Option[*int](opt)))
	require.Equal(t, 28, n)
}
