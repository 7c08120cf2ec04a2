package catalog

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "products.json"), 0)
	require.NoError(t, err)
	return store
}

func testProduct(name string) *domain.Product {
	return &domain.Product{
		Name:     name,
		Category: "Electronics",
		Price:    100,
		Stock:    10,
		Rating:   4,
	}
}

func TestFileStore_AddAssignsSequentialIDs(t *testing.T) {
	store := setupStore(t)

	a := testProduct("first")
	b := testProduct("second")
	require.NoError(t, store.Add(a))
	require.NoError(t, store.Add(b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}

func TestFileStore_GetProduct_NotFound(t *testing.T) {
	store := setupStore(t)

	_, err := store.GetProduct(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFileStore_Add_RejectsInvalidProduct(t *testing.T) {
	store := setupStore(t)

	bad := testProduct("bad")
	bad.Price = 0

	err := store.Add(bad)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "product price must be greater than zero")
}

func TestFileStore_Add_EnforcesNameLength(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "products.json"), 10)
	require.NoError(t, err)

	long := testProduct(strings.Repeat("x", 11))
	assert.ErrorIs(t, store.Add(long), ErrInvalidProduct)

	ok := testProduct(strings.Repeat("x", 10))
	assert.NoError(t, store.Add(ok))
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")

	store, err := Open(path, 0)
	require.NoError(t, err)
	p := testProduct("keyboard")
	require.NoError(t, store.Add(p))
	require.NoError(t, store.ReduceStock(p.ID, 4))

	reopened, err := Open(path, 0)
	require.NoError(t, err)

	loaded, err := reopened.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "keyboard", loaded.Name)
	assert.Equal(t, 6, loaded.Stock)

	// New ids keep counting from the highest persisted id.
	fresh := testProduct("mouse")
	require.NoError(t, reopened.Add(fresh))
	assert.Equal(t, p.ID+1, fresh.ID)
}

func TestFileStore_ReduceStock_FailureIsNoOp(t *testing.T) {
	store := setupStore(t)
	p := testProduct("cable")
	require.NoError(t, store.Add(p))

	err := store.ReduceStock(p.ID, 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, p.Stock)

	assert.ErrorIs(t, store.ReduceStock(999, 1), ErrProductNotFound)
}

func TestFileStore_IncreaseStock(t *testing.T) {
	store := setupStore(t)
	p := testProduct("cable")
	require.NoError(t, store.Add(p))

	require.NoError(t, store.IncreaseStock(p.ID, 5))
	assert.Equal(t, 15, p.Stock)
}

func TestFileStore_ListOrderedByID(t *testing.T) {
	store := setupStore(t)
	require.NoError(t, store.Add(testProduct("a")))
	require.NoError(t, store.Add(testProduct("b")))
	require.NoError(t, store.Add(testProduct("c")))

	list := store.List()
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[2].ID)
}

func TestFileStore_Remove(t *testing.T) {
	store := setupStore(t)
	p := testProduct("lamp")
	require.NoError(t, store.Add(p))

	require.NoError(t, store.Remove(p.ID))
	_, err := store.GetProduct(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, store.Remove(p.ID), ErrProductNotFound)
}

func TestFileStore_Seed_OnlyWhenEmpty(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.Seed([]*domain.Product{testProduct("seeded")}))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Seed([]*domain.Product{testProduct("ignored")}))
	assert.Equal(t, 1, store.Len())
}
