// Package storage defines the Storage interface — a contract that any
// persistence backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The controller should not know or care which backend it is talking to.
// By depending only on this interface:
//
//   - Switching backends (in-memory ↔ SQLite) = change one line in main.go.
//     Zero controller changes.
//
//   - Writing tests = pass the in-memory store. No database needed.
package storage

import (
	"errors"

	"github.com/aanand-mishra/persons-api/internal/types"
)

// ErrNotFound is the sentinel returned when a lookup or update targets an
// id that is not present. Absence is a normal, expected outcome — callers
// check it with errors.Is and translate it, they never treat it as a
// backend failure.
var ErrNotFound = errors.New("storage: person not found")

// Storage is the persistence contract. A person is always keyed by its
// caller-assigned ID; no backend performs validation — that is the
// controller's responsibility.
type Storage interface {
	// Save inserts the person at its ID, overwriting any existing record
	// with the same ID, and returns the stored record.
	Save(p types.Person) (types.Person, error)

	// FindByID returns the person stored at id, or ErrNotFound.
	FindByID(id int64) (types.Person, error)

	// FindAll returns every stored person, sorted by ID.
	// Returns an empty slice (not nil) if there are no persons.
	FindAll() ([]types.Person, error)

	// Exists reports whether a person is stored at id.
	Exists(id int64) (bool, error)

	// Delete removes the person at id. Deleting an absent id is a no-op,
	// not an error.
	Delete(id int64) error

	// Update overwrites the person at p.ID only if one is already stored
	// there, returning the stored record. If the id is absent it returns
	// ErrNotFound and leaves the store untouched. The check and the
	// overwrite are atomic within each backend.
	Update(p types.Person) (types.Person, error)
}
