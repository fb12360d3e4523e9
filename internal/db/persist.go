package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// store backs a DB with an on-disk revision ledger, so a long-running driver
// (a language server, a CLI with `--db`) can tell whether its last
// check run's revision still matches the one on disk before trusting any
// out-of-process cache it might keep alongside it.
type store struct {
	conn *sql.DB
	path string
}

// Open creates a DB backed by a sqlite file at path, creating the schema if
// it does not already exist. The in-memory intern tables and query memo
// behave exactly as NewMemory; only the revision ledger is persisted.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", path, err)
	}
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS revisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		revision TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("db: init schema: %w", err)
	}

	d := &DB{
		revision: NewRevision(),
		interner: newInterner(),
		memo:     newMemo(),
		store:    &store{conn: conn, path: path},
	}
	if err := d.recordRevision(); err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

// recordRevision appends the DB's current revision to the on-disk ledger.
func (db *DB) recordRevision() error {
	if db.store == nil {
		return nil
	}
	_, err := db.store.conn.Exec(`INSERT INTO revisions (revision) VALUES (?)`, string(db.revision))
	return err
}

// LastPersistedRevision returns the most recently recorded revision from the
// on-disk ledger, or "" if the DB has no backing store or the ledger is
// empty.
func (db *DB) LastPersistedRevision() (Revision, error) {
	if db.store == nil {
		return "", nil
	}
	var rev string
	err := db.store.conn.QueryRow(`SELECT revision FROM revisions ORDER BY id DESC LIMIT 1`).Scan(&rev)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("db: read last revision: %w", err)
	}
	return Revision(rev), nil
}

// Close releases the on-disk connection, if any. Closing a memory-backed DB
// is a no-op.
func (db *DB) Close() error {
	if db.store == nil {
		return nil
	}
	return db.store.conn.Close()
}
