package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes content to name inside a fresh temp dir and returns its path.
func WriteFixture(t testing.TB, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}
