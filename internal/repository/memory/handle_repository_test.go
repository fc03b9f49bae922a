package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRepositoryMintResolveRelease(t *testing.T) {
	repo := NewHandleRepository()

	handle := repo.Mint([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	require.NotEmpty(t, handle)

	payload, mimeType, found := repo.Resolve(handle)
	require.True(t, found)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, payload)
	assert.Equal(t, "image/png", mimeType)

	repo.Release(handle)

	_, _, found = repo.Resolve(handle)
	assert.False(t, found)

	// Releasing an already-released handle is harmless.
	repo.Release(handle)
}

func TestHandleRepositoryHandlesAreUnique(t *testing.T) {
	repo := NewHandleRepository()

	a := repo.Mint([]byte("same"), "image/png")
	b := repo.Mint([]byte("same"), "image/png")
	assert.NotEqual(t, a, b)

	payload, _, found := repo.Resolve(a)
	require.True(t, found)
	assert.Equal(t, []byte("same"), payload)
}

func TestHandleRepositoryUnknownHandle(t *testing.T) {
	repo := NewHandleRepository()

	_, _, found := repo.Resolve("not-a-handle")
	assert.False(t, found)
}
