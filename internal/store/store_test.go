package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stores returns one of each Store implementation for contract tests.
func stores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "assetline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStore_Contract(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Add("assets", "a1", []byte(`{"n":1}`)))
			require.NoError(t, s.Add("assets", "a2", []byte(`{"n":2}`)))
			require.NoError(t, s.Add("accruals", "x1", []byte(`{"n":3}`)))

			// Duplicate add fails.
			assert.ErrorIs(t, s.Add("assets", "a1", []byte(`{}`)), ErrExists)

			// List is per-collection and in insertion order.
			docs, err := s.List("assets")
			require.NoError(t, err)
			require.Len(t, docs, 2)
			assert.Equal(t, "a1", docs[0].ID)
			assert.Equal(t, "a2", docs[1].ID)

			// Get round-trips data.
			doc, err := s.Get("assets", "a2")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"n":2}`), doc.Data)

			// Update replaces, and is visible to subsequent reads.
			require.NoError(t, s.Update("assets", "a1", []byte(`{"n":10}`)))
			doc, err = s.Get("assets", "a1")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"n":10}`), doc.Data)

			// Delete removes.
			require.NoError(t, s.Delete("assets", "a1"))
			_, err = s.Get("assets", "a1")
			assert.ErrorIs(t, err, ErrNotFound)

			// Missing ids error.
			assert.ErrorIs(t, s.Update("assets", "nope", nil), ErrNotFound)
			assert.ErrorIs(t, s.Delete("assets", "nope"), ErrNotFound)

			// Empty collection lists empty.
			docs, err = s.List("empty")
			require.NoError(t, err)
			assert.Empty(t, docs)
		})
	}
}
