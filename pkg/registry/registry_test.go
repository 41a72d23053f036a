package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "registry.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUnchangedFalseForUnknownPath(t *testing.T) {
	s := openTestStore(t)
	unchanged, err := s.Unchanged("/vols/v/v-fuse.vol", "content")
	require.NoError(t, err)
	assert.False(t, unchanged)
}

func TestRecordThenUnchanged(t *testing.T) {
	s := openTestStore(t)
	path := "/vols/v/v-fuse.vol"

	require.NoError(t, s.Record(path, "volume v\nend-volume\n"))

	unchanged, err := s.Unchanged(path, "volume v\nend-volume\n")
	require.NoError(t, err)
	assert.True(t, unchanged)

	unchanged, err = s.Unchanged(path, "volume v\noption x y\nend-volume\n")
	require.NoError(t, err)
	assert.False(t, unchanged)
}

func TestForgetClearsDigest(t *testing.T) {
	s := openTestStore(t)
	path := "/vols/v/v-fuse.vol"
	require.NoError(t, s.Record(path, "body"))
	require.NoError(t, s.Forget(path))

	unchanged, err := s.Unchanged(path, "body")
	require.NoError(t, err)
	assert.False(t, unchanged)
}

func TestDigestIsDeterministic(t *testing.T) {
	assert.Equal(t, Digest("same"), Digest("same"))
	assert.NotEqual(t, Digest("a"), Digest("b"))
}
