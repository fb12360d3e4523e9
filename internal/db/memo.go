package db

import "strings"

// memo caches the kernel's own query results — public symbol types
// (internal/symbols) and MRO possibility sets (internal/classgraph) — by an
// opaque namespaced key the caller builds from the query's arguments
// ("mro:" + definition ID, "public_ty:" + symbol ID). Distinct query
// functions must namespace their own keys; memo itself does not
// disambiguate by function name.
type memo struct {
	entries map[string]any
}

func newMemo() *memo {
	return &memo{entries: make(map[string]any)}
}

// Memoize looks up key, running compute and storing the result on a miss.
// The lock is released while compute runs, so a query may recursively ask
// the DB for other keys (the dependency graph is a DAG — a class's MRO asks
// for its bases' MROs through the same table). Queries are single-threaded
// per revision, so each key is computed once in practice; if concurrent
// callers do race to the same key, the first stored result wins and the
// later computation is discarded. Callers type-assert the returned value to
// whatever result shape their query function produces.
func (db *DB) Memoize(key string, compute func() any) any {
	db.mu.Lock()
	if v, ok := db.memo.entries[key]; ok {
		db.mu.Unlock()
		return v
	}
	db.mu.Unlock()

	v := compute()

	db.mu.Lock()
	defer db.mu.Unlock()
	if existing, ok := db.memo.entries[key]; ok {
		return existing
	}
	db.memo.entries[key] = v
	return v
}

// Forget drops every memoized entry whose key starts with prefix, used when
// a driver mutates one query family's inputs mid-revision (re-registering a
// class invalidates "mro:", adding a declaration invalidates that symbol's
// "public_ty:") without paying for a full Invalidate.
func (db *DB) Forget(prefix string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for k := range db.memo.entries {
		if strings.HasPrefix(k, prefix) {
			delete(db.memo.entries, k)
		}
	}
}

// MemoSize reports how many query results are currently cached, used by
// tests asserting that a second identical query did not recompute.
func (db *DB) MemoSize() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.memo.entries)
}
