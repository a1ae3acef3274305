// Unit tests for database lifecycle: creation detection, schema
// idempotency, and close semantics.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/cltodo/pkg/types"
)

// setupStore opens a store backed by a fresh database file in a temporary
// directory, ready for todo operations.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.True(t, s.Created(), "first open should report a fresh database")
	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist on disk")
}

func TestOpenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	s, err := Open(path)
	require.NoError(t, err)

	id, err := s.Insert(types.Todo{
		Date:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Text:     "persisted across sessions",
		Priority: types.PriorityNormal,
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.False(t, reopened.Created(), "second open should find the existing file")

	got, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "persisted across sessions", got.Text)
}

func TestOpenFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.db")

	_, err := Open(path)
	assert.Error(t, err, "open should fail when the parent directory does not exist")
}

func TestCloseIsNilSafe(t *testing.T) {
	var s Store
	assert.NoError(t, s.Close())

	opened := setupStore(t)
	assert.NoError(t, opened.Close())
	assert.NoError(t, opened.Close(), "double close should be a no-op")
}
