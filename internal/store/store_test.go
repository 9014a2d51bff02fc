package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayagam-m-certainti/retailops/pkg/types"
)

// setupStore opens a fresh store in a temp directory with the full schema
// bootstrapped, closed automatically at test end.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.Config{DBPath: filepath.Join(t.TempDir(), "retail.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Setup())
	return s
}

// ptr returns a pointer to its argument, for optional IDs in fixtures.
func ptr[T any](v T) *T { return &v }

func TestOpenValidatesConfig(t *testing.T) {
	_, err := Open(types.Config{})
	assert.ErrorIs(t, err, types.ErrDBPathEmpty)
}

func TestSetupIsIdempotent(t *testing.T) {
	s := setupStore(t)

	// A second full bootstrap against the initialized database must not
	// fail or duplicate objects.
	require.NoError(t, s.Setup())
	require.NoError(t, s.CreateTables())
	require.NoError(t, s.CreateIndexes())
	require.NoError(t, s.CreateViews())

	id, err := s.AddCustomer("Asha", "asha@example.com", "111-222", "Pune")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open(types.Config{DBPath: filepath.Join(t.TempDir(), "retail.db")})
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
