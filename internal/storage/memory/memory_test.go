package memory

import (
	"sync"
	"testing"

	"github.com/aanand-mishra/persons-api/internal/storage"
	"github.com/aanand-mishra/persons-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alice() types.Person {
	return types.Person{ID: 1, Name: "Alice", Email: "a@x.com", Phone: "555-0100"}
}

func TestSaveAndFindByID(t *testing.T) {
	store := New()

	saved, err := store.Save(alice())
	require.NoError(t, err)
	assert.Equal(t, alice(), saved)

	got, err := store.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, alice(), got)
}

func TestFindByIDNotFound(t *testing.T) {
	store := New()

	_, err := store.FindByID(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveOverwritesSameID(t *testing.T) {
	store := New()

	_, err := store.Save(alice())
	require.NoError(t, err)

	updated := types.Person{ID: 1, Name: "Alice B.", Email: "b@x.com", Phone: "555-0199"}
	_, err = store.Save(updated)
	require.NoError(t, err)

	got, err := store.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, updated, got, "FindByID must reflect only the latest values")
}

func TestFindAll(t *testing.T) {
	store := New()

	// empty store returns an empty, non-nil slice
	all, err := store.FindAll()
	require.NoError(t, err)
	require.NotNil(t, all)
	assert.Empty(t, all)

	// insert out of order; FindAll sorts by id
	for _, id := range []int64{3, 1, 2} {
		_, err := store.Save(types.Person{ID: id, Name: "P"})
		require.NoError(t, err)
	}

	all, err = store.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestExists(t *testing.T) {
	store := New()

	ok, err := store.Exists(1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Save(alice())
	require.NoError(t, err)

	ok, err = store.Exists(1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := New()

	_, err := store.Save(alice())
	require.NoError(t, err)

	require.NoError(t, store.Delete(1))
	// deleting an absent id is a no-op, not an error
	require.NoError(t, store.Delete(1))

	_, err = store.FindByID(1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateExisting(t *testing.T) {
	store := New()

	_, err := store.Save(alice())
	require.NoError(t, err)

	updated := types.Person{ID: 1, Name: "Alice Updated", Email: "new@x.com"}
	got, err := store.Update(updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	stored, err := store.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	store := New()

	_, err := store.Save(alice())
	require.NoError(t, err)

	_, err = store.Update(types.Person{ID: 99, Name: "Ghost"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := store.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, alice(), all[0])
}

// The HTTP server calls the store from concurrent goroutines; this test
// drives mixed writes through the mutex and relies on the race detector
// to flag unguarded access.
func TestConcurrentAccess(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := int64(1); i <= 50; i++ {
		wg.Add(3)
		go func(id int64) {
			defer wg.Done()
			_, _ = store.Save(types.Person{ID: id, Name: "P"})
		}(i)
		go func(id int64) {
			defer wg.Done()
			_, _ = store.FindAll()
			_ = store.Delete(id + 1000)
		}(i)
		go func(id int64) {
			defer wg.Done()
			_, _ = store.Update(types.Person{ID: id, Name: "Q"})
		}(i)
	}
	wg.Wait()

	all, err := store.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
