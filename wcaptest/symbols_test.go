package wcaptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbols(t *testing.T) {
	s := New()
	addr := s.Register("twice", func(v int) int { return 2 * v })
	require.NotZero(t, addr)
	assert.Equal(t, addr, s.Register("twice", func(v int) int { return 3 * v }))
	assert.NotEqual(t, addr, s.Register("other", func() {}))

	assert.Equal(t, addr, s.Lookup("twice"))
	assert.Zero(t, s.Lookup("missing"))
	assert.Equal(t, 1, s.Lookups("twice"))
	assert.Equal(t, 1, s.Lookups("missing"))

	var fn func(int) int
	s.Bind(&fn, addr)
	require.NotNil(t, fn)
	assert.Equal(t, 6, fn(2))

	t.Run("TEST FAILURE: type mismatch", func(t *testing.T) {
		var wrong func(string) int
		assert.Panics(t, func() { s.Bind(&wrong, addr) })
	})

	t.Run("TEST FAILURE: unknown address", func(t *testing.T) {
		assert.Panics(t, func() { s.Bind(&fn, 0x1) })
	})

	t.Run("TEST FAILURE: register non func", func(t *testing.T) {
		assert.Panics(t, func() { s.Register("x", 42) })
	})
}
