package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueRepositoryReadWrite(t *testing.T) {
	ctx := context.Background()
	repo := NewKeyValueRepository()

	_, found, err := repo.Read(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Write(ctx, "k", "v1"))
	require.NoError(t, repo.Write(ctx, "k", "v2"))

	value, found, err := repo.Read(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2", value)
}
