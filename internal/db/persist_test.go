package db

import (
	"path/filepath"
	"testing"
)

func TestOpenPersistsRevisionLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pylattice-cache.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	last, err := d.LastPersistedRevision()
	if err != nil {
		t.Fatalf("LastPersistedRevision: %v", err)
	}
	if last != d.Revision() {
		t.Errorf("expected persisted revision %s to match current revision %s", last, d.Revision())
	}

	d.Invalidate()
	last, err = d.LastPersistedRevision()
	if err != nil {
		t.Fatalf("LastPersistedRevision after invalidate: %v", err)
	}
	if last != d.Revision() {
		t.Errorf("expected ledger to record the post-invalidate revision")
	}
}

func TestMemoryDBHasNoPersistedRevision(t *testing.T) {
	d := NewMemory()
	last, err := d.LastPersistedRevision()
	if err != nil {
		t.Fatalf("LastPersistedRevision: %v", err)
	}
	if last != "" {
		t.Errorf("expected no persisted revision for a memory-only DB, got %s", last)
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close on memory DB should be a no-op, got %v", err)
	}
}
