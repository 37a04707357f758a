// Package memory provides an in-memory, map-backed implementation of the
// storage.Storage interface.
//
// This is the default backend: the whole data set is a single
// map[id]Person guarded by a RWMutex. The HTTP server serves requests
// from concurrent goroutines, so every operation here takes the lock.
package memory

import (
	"sort"
	"sync"

	"github.com/aanand-mishra/persons-api/internal/storage"
	"github.com/aanand-mishra/persons-api/internal/types"
)

// Memory is the concrete in-memory implementation of storage.Storage.
// Construct it with New and inject it where needed — it is deliberately
// not a package-level singleton, so tests get a fresh store each time.
type Memory struct {
	mu      sync.RWMutex
	persons map[int64]types.Person
}

// compile-time check that Memory satisfies the interface
var _ storage.Storage = (*Memory)(nil)

// New returns an empty, ready-to-use store.
func New() *Memory {
	return &Memory{
		persons: make(map[int64]types.Person),
	}
}

// Save inserts or overwrites the entry at p.ID and returns the stored
// record. No validation happens here.
func (m *Memory) Save(p types.Person) (types.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.persons[p.ID] = p
	return p, nil
}

// FindByID returns the person stored at id, or storage.ErrNotFound.
func (m *Memory) FindByID(id int64) (types.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.persons[id]
	if !ok {
		return types.Person{}, storage.ErrNotFound
	}
	return p, nil
}

// FindAll returns every stored person sorted by ID, so callers (and
// tests) see a deterministic order regardless of map iteration.
func (m *Memory) FindAll() ([]types.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Pre-allocate an empty (non-nil) slice: an empty store serialises
	// to [] rather than null in JSON responses.
	persons := make([]types.Person, 0, len(m.persons))
	for _, p := range m.persons {
		persons = append(persons, p)
	}

	sort.Slice(persons, func(i, j int) bool {
		return persons[i].ID < persons[j].ID
	})

	return persons, nil
}

// Exists reports whether a person is stored at id.
func (m *Memory) Exists(id int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.persons[id]
	return ok, nil
}

// Delete removes the entry at id if present; deleting an absent id is a
// no-op.
func (m *Memory) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.persons, id)
	return nil
}

// Update overwrites the entry at p.ID only if one exists. The write lock
// is held across the existence check and the overwrite, so the
// check-then-act pair cannot race with a concurrent Save or Delete.
func (m *Memory) Update(p types.Person) (types.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.persons[p.ID]; !ok {
		return types.Person{}, storage.ErrNotFound
	}

	m.persons[p.ID] = p
	return p, nil
}
