package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), v)

	// Overwrite replaces the whole value.
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	v, _, _ = s.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, s.Remove(ctx, "k"))
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("abc")))
	v, _, _ := s.Get(ctx, "k")
	v[0] = 'z'

	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}
