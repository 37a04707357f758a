// Package person implements the controller layer: it validates inputs,
// builds or mutates person records, and delegates persistence to a
// storage.Storage backend.
//
// The controller's contract is deliberately small and string-oriented:
// mutating operations report their outcome as one of the literal status
// messages below, and only genuinely invalid input (a non-positive id)
// is an error. A missing person is a normal outcome, not a failure —
// lookups signal it with storage.ErrNotFound, updates and deletes with
// the MsgNotFound status.
package person

import (
	"errors"
	"fmt"

	"github.com/aanand-mishra/persons-api/internal/storage"
	"github.com/aanand-mishra/persons-api/internal/types"
)

// Status messages returned by the mutating operations. These are part of
// the public contract — callers (and the HTTP layer) match on them.
const (
	MsgCreated  = "Person created successfully"
	MsgUpdated  = "Person updated successfully"
	MsgDeleted  = "Person deleted successfully"
	MsgNotFound = "Person not found"
)

// Invalid-argument sentinels. Checked by callers with errors.Is.
var (
	// ErrInvalidID is returned when an operation receives an id <= 0.
	ErrInvalidID = errors.New("ID must be greater than zero")

	// ErrInvalidPerson is returned when an update receives a person
	// whose id is not positive.
	ErrInvalidPerson = errors.New("invalid person data")
)

// Controller translates create/read/update/delete requests into storage
// operations. It holds no state of its own beyond the injected store, so
// a single Controller is safe for concurrent use whenever its store is.
type Controller struct {
	store storage.Storage
}

// New returns a Controller backed by the given store.
func New(store storage.Storage) *Controller {
	return &Controller{store: store}
}

// CreatePerson builds a person from the given fields and saves it.
//
// Note the asymmetry with the other operations: creation performs no id
// validation and no uniqueness check — a non-positive id is stored as
// given, and a duplicate id silently overwrites the existing record.
// This mirrors the save semantics of the store itself.
func (c *Controller) CreatePerson(id int64, name, email, phone string) (string, error) {
	p := types.Person{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if _, err := c.store.Save(p); err != nil {
		return "", fmt.Errorf("create person: %w", err)
	}

	return MsgCreated, nil
}

// GetPerson returns the person stored at id.
//
// Fails with ErrInvalidID when id <= 0. An unknown (but valid) id passes
// through as the store's storage.ErrNotFound.
func (c *Controller) GetPerson(id int64) (types.Person, error) {
	if id <= 0 {
		return types.Person{}, ErrInvalidID
	}
	return c.store.FindByID(id)
}

// GetAllPersons returns every stored person, unchanged from the store.
func (c *Controller) GetAllPersons() ([]types.Person, error) {
	return c.store.FindAll()
}

// UpdatePerson overwrites the stored record at p.ID with p.
//
// Fails with ErrInvalidPerson when p.ID <= 0. Returns MsgUpdated when
// the record existed and was overwritten, MsgNotFound (not an error)
// when it did not — in that case the store is left untouched.
func (c *Controller) UpdatePerson(p types.Person) (string, error) {
	if p.ID <= 0 {
		return "", ErrInvalidPerson
	}

	_, err := c.store.Update(p)
	if errors.Is(err, storage.ErrNotFound) {
		return MsgNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("update person: %w", err)
	}

	return MsgUpdated, nil
}

// DeletePerson removes the person stored at id.
//
// Fails with ErrInvalidID when id <= 0. Returns MsgDeleted when a record
// was present and removed, MsgNotFound (not an error) when it was not.
func (c *Controller) DeletePerson(id int64) (string, error) {
	if id <= 0 {
		return "", ErrInvalidID
	}

	ok, err := c.store.Exists(id)
	if err != nil {
		return "", fmt.Errorf("delete person: %w", err)
	}
	if !ok {
		return MsgNotFound, nil
	}

	if err := c.store.Delete(id); err != nil {
		return "", fmt.Errorf("delete person: %w", err)
	}

	return MsgDeleted, nil
}
