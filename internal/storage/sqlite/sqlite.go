// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite stores everything in a single file on disk — no network, no
// separate server process. It is the backend to pick when the data set
// must survive a restart; the in-memory store is the default otherwise.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/persons-api/internal/config"
	"github.com/aanand-mishra/persons-api/internal/storage"
	"github.com/aanand-mishra/persons-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete SQLite implementation of storage.Storage.
// It holds a *sql.DB, which is a connection pool managed by database/sql
// and safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at cfg.StoragePath, creates the persons
// table if it does not already exist, and returns a ready-to-use *SQLite.
//
// Unlike a typical auto-increment schema, id is NOT AUTOINCREMENT:
// person ids are assigned by the caller, and the store's contract is
// insert-or-overwrite at that id.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS persons (
			id    INTEGER PRIMARY KEY,
			name  TEXT    NOT NULL,
			email TEXT    NOT NULL DEFAULT '',
			phone TEXT    NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Save inserts the person at its id, overwriting any existing row.
// INSERT OR REPLACE gives the same insert-or-overwrite semantics as a
// map write, in a single statement.
func (s *SQLite) Save(p types.Person) (types.Person, error) {
	stmt, err := s.Db.Prepare(
		"INSERT OR REPLACE INTO persons (id, name, email, phone) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return types.Person{}, fmt.Errorf("Save: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(p.ID, p.Name, p.Email, p.Phone); err != nil {
		return types.Person{}, fmt.Errorf("Save: exec: %w", err)
	}

	return p, nil
}

// FindByID fetches exactly one person row matched by primary key.
// An absent id surfaces as storage.ErrNotFound, never as a raw
// sql.ErrNoRows — callers only know about the storage sentinel.
func (s *SQLite) FindByID(id int64) (types.Person, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email, phone FROM persons WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Person{}, fmt.Errorf("FindByID: prepare: %w", err)
	}
	defer stmt.Close()

	var p types.Person
	err = stmt.QueryRow(id).Scan(&p.ID, &p.Name, &p.Email, &p.Phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Person{}, storage.ErrNotFound
		}
		return types.Person{}, fmt.Errorf("FindByID: scan: %w", err)
	}

	return p, nil
}

// FindAll returns all person rows ordered by id.
func (s *SQLite) FindAll() ([]types.Person, error) {
	stmt, err := s.Db.Prepare(
		// Explicit column list — SELECT * would silently break Scan's
		// ordering if a column is ever added.
		"SELECT id, name, email, phone FROM persons ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("FindAll: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("FindAll: query: %w", err)
	}
	defer rows.Close()

	persons := make([]types.Person, 0)
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone); err != nil {
			return nil, fmt.Errorf("FindAll: scan row: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("FindAll: rows iteration: %w", err)
	}

	return persons, nil
}

// Exists reports whether a row with the given id is present.
func (s *SQLite) Exists(id int64) (bool, error) {
	stmt, err := s.Db.Prepare("SELECT 1 FROM persons WHERE id = ? LIMIT 1")
	if err != nil {
		return false, fmt.Errorf("Exists: prepare: %w", err)
	}
	defer stmt.Close()

	var one int
	err = stmt.QueryRow(id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Exists: scan: %w", err)
	}
	return true, nil
}

// Delete removes the row at id. Deleting an absent id is a no-op.
func (s *SQLite) Delete(id int64) error {
	stmt, err := s.Db.Prepare("DELETE FROM persons WHERE id = ?")
	if err != nil {
		return fmt.Errorf("Delete: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return fmt.Errorf("Delete: exec: %w", err)
	}
	return nil
}

// Update overwrites the row at p.ID only if it exists. A single UPDATE
// statement makes the exists-check and the overwrite atomic: zero rows
// affected means the id was absent and nothing changed.
func (s *SQLite) Update(p types.Person) (types.Person, error) {
	stmt, err := s.Db.Prepare(
		"UPDATE persons SET name = ?, email = ?, phone = ? WHERE id = ?",
	)
	if err != nil {
		return types.Person{}, fmt.Errorf("Update: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(p.Name, p.Email, p.Phone, p.ID)
	if err != nil {
		return types.Person{}, fmt.Errorf("Update: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.Person{}, fmt.Errorf("Update: rows affected: %w", err)
	}
	if affected == 0 {
		return types.Person{}, storage.ErrNotFound
	}

	return p, nil
}
