package db

import "testing"

// NewTestDB opens a fresh migrated in-memory database that is closed when the
// test finishes.
func NewTestDB(t testing.TB) *DB {
	t.Helper()

	instance, err := Open(UseIsolatedMemorySqliteDialector())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = instance.Close()
	})
	return instance
}
