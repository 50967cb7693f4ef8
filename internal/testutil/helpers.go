// Package testutil provides reusable test helpers for xai-tasks tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/XpressAI/xai-tasks/internal/store"
)

// OpenStore opens a throwaway task database in a temp directory.
// Uses t.TempDir() for automatic cleanup; the handle is closed when the
// test finishes.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	s, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
