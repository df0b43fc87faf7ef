package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	key := "11111111-1111-1111-1111-111111111111_policy.pdf"
	require.NoError(t, store.Write("vehicles/policies", key, []byte("pdf-bytes")))

	data, err := store.Read("vehicles/policies", key)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), data)

	require.NoError(t, store.Delete("vehicles/policies", key))
	_, err = store.Read("vehicles/policies", key)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileStoreDeleteMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete("sinisters", "nope.jpg"), ErrFileNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write("budgets/allocation_files", "k.pdf", []byte("v1")))
	require.NoError(t, store.Write("budgets/allocation_files", "k.pdf", []byte("v2")))

	data, err := store.Read("budgets/allocation_files", "k.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}
