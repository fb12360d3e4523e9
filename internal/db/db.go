// Package db is the external memoizing database the kernel is driven
// through: it owns the intern tables for every structural type form (Union,
// Intersection, Tuple, Class, Function, Module, the literal forms) and
// memoizes the kernel's own query functions (public symbol types and MRO
// possibility sets) so repeated requests for the same question return the
// same answer without recomputation.
//
// The in-memory table shape and revision-counter invalidation follow a
// mutex-guarded map keyed by identity; github.com/google/uuid stamps each DB
// with a Revision so a driver that persists results across edits
// (internal/db/persist.go, backed by modernc.org/sqlite) can tell a stale
// on-disk cache from a current one.
package db

import (
	"sync"

	"github.com/google/uuid"
)

// Revision identifies one generation of a DB's world state. A driver bumps
// the revision after an edit invalidates source files; Invalidate drops
// every memoized entry along with the old revision.
type Revision string

// NewRevision mints a fresh, unique revision marker.
func NewRevision() Revision {
	return Revision(uuid.NewString())
}

// DB is the kernel's memoizing database: intern tables plus a query memo
// cache, both guarded by one mutex. A DB is safe for concurrent use; the
// kernel's own query functions may call back into it reentrantly (Intern*,
// Memoize), since Memoize releases the lock while its compute runs.
type DB struct {
	mu       sync.Mutex
	revision Revision
	interner *interner
	memo     *memo
	store    *store // nil unless Open was used
}

// NewMemory creates a DB with no on-disk backing: intern tables and query
// memoization live only in process memory for the lifetime of the DB.
func NewMemory() *DB {
	return &DB{
		revision: NewRevision(),
		interner: newInterner(),
		memo:     newMemo(),
	}
}

// Revision returns the DB's current revision marker.
func (db *DB) Revision() Revision {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.revision
}

// Invalidate bumps the DB to a fresh revision and drops the query memo
// cache (but not the structural intern tables: a Type's identity does not
// depend on when it was computed, only the answers to queries about source
// do).
func (db *DB) Invalidate() {
	db.mu.Lock()
	db.revision = NewRevision()
	db.memo = newMemo()
	db.mu.Unlock()
	db.recordRevision()
}
