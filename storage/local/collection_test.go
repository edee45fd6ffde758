package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-tracker/storage"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "local-store-test-*")
	require.NoError(t, err)

	store, err := Open(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestCollectionAddThenFetch(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	col := NewCollection[storage.ExpenseRecord](store, KeyExpenses)

	record := storage.ExpenseRecord{
		ID:       "e1",
		Name:     "Lunch",
		Amount:   12.50,
		Date:     "2025-04-01",
		Category: "Food",
		Note:     "",
	}
	require.NoError(t, col.Create(ctx, record))

	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, record, all[0])
}

func TestCollectionPersistsAcrossReopen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "local-store-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "test.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)

	col := NewCollection[storage.IncomeRecord](store, KeyIncomes)
	require.NoError(t, col.Create(ctx, storage.IncomeRecord{ID: "i1", Amount: 3200, Date: "2025-04-01", Source: "Salary"}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	col = NewCollection[storage.IncomeRecord](reopened, KeyIncomes)
	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "i1", all[0].ID)
}

func TestCollectionRawStringsRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	col := NewCollection[storage.ExpenseRecord](store, KeyExpenses)

	// A category this client doesn't know must survive a store/load cycle
	// byte for byte; the storage layer never rewrites raw strings.
	record := storage.ExpenseRecord{ID: "e1", Name: "Box", Amount: 5, Date: "2025-04-01", Category: "Subscriptions"}
	require.NoError(t, col.Create(ctx, record))

	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Subscriptions", all[0].Category)
}

func TestCollectionAbsentID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	col := NewCollection[storage.ExpenseRecord](store, KeyExpenses)
	require.NoError(t, col.Create(ctx, storage.ExpenseRecord{ID: "e1"}))

	missing := storage.ExpenseRecord{ID: "ghost"}
	assert.ErrorIs(t, col.Update(ctx, missing), storage.ErrDataNotFound)
	assert.ErrorIs(t, col.Delete(ctx, missing), storage.ErrDataNotFound)

	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "e1", all[0].ID)
}

func TestCollectionDeleteAll(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	col := NewCollection[storage.ExpenseRecord](store, KeyExpenses)
	require.NoError(t, col.Create(ctx, storage.ExpenseRecord{ID: "e1"}))
	require.NoError(t, col.Create(ctx, storage.ExpenseRecord{ID: "e2"}))

	require.NoError(t, col.DeleteAll(ctx))

	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCollectionConcurrentCreates(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	col := NewCollection[storage.ExpenseRecord](store, KeyExpenses)

	// Concurrent whole-blob rewrites must not lose each other's addition.
	const writers = 10
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = col.Create(ctx, storage.ExpenseRecord{ID: fmt.Sprintf("e%d", i)})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, writers)

	seen := make(map[string]bool)
	for _, record := range all {
		seen[record.ID] = true
	}
	for i := 0; i < writers; i++ {
		assert.True(t, seen[fmt.Sprintf("e%d", i)], "record e%d was lost", i)
	}
}

func TestCollectionCorruptBlob(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyExpenses, []byte("{definitely not json")))

	col := NewCollection[storage.ExpenseRecord](store, KeyExpenses)

	err := col.Load(ctx)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, KeyExpenses, decodeErr.Key)

	// The reset-to-empty decision belongs to the composition root; after it
	// resets, the collection works normally.
	require.NoError(t, col.Reset(ctx))
	require.NoError(t, col.Load(ctx))

	all, err := col.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
