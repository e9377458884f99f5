package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width int
	name  string
	calls []string
}

var errNegativeWidth = errors.New("width must not be negative")

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w < 0 {
			return errNegativeWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		c := &testConfig{}
		require.NoError(t, Apply(c, withName("a"), withWidth(3), withName("b")))
		require.Equal(t, 3, c.width)
		require.Equal(t, "b", c.name)
		require.Equal(t, []string{"name", "width", "name"}, c.calls)
	})

	t.Run("no options", func(t *testing.T) {
		c := &testConfig{}
		require.NoError(t, Apply(c))
		require.Empty(t, c.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		c := &testConfig{}
		require.NoError(t, Apply(c, nil, withWidth(1), nil))
		require.Equal(t, []string{"width"}, c.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		c := &testConfig{}
		err := Apply(c, withName("a"), withWidth(-1), withName("b"))
		require.ErrorIs(t, err, errNegativeWidth)
		require.Equal(t, "a", c.name)
		require.Equal(t, []string{"name"}, c.calls)
	})
}

func TestNoError(t *testing.T) {
	c := &testConfig{}
	require.NoError(t, withName("x").apply(c))
	require.Equal(t, "x", c.name)
}
