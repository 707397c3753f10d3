package sqlite

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Y3454R/obadh-engine/internal/core/domain"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "obadh-test-*")
	require.NoError(t, err)

	store, err := NewStore(dir)
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.RemoveAll(dir)
	}

	return store, cleanup
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir, err := os.MkdirTemp("", "obadh-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	store, err := NewStore(dir)
	require.NoError(t, err)

	err = store.Save(context.Background(), domain.Exception{
		ID:      "exc-1",
		Roman:   "mas",
		Bengali: "মাস",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs migrate again, which must not touch existing data.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	exc, err := store.GetByRoman(context.Background(), "mas")
	require.NoError(t, err)
	assert.Equal(t, "মাস", exc.Bengali)
}

func TestStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	exc := domain.Exception{
		ID:      "exc-1",
		Roman:   "bkk",
		Bengali: "ব্যাংকক",
		Note:    "the Thai capital",
	}

	err := store.Save(ctx, exc)
	require.NoError(t, err)

	got, err := store.Get(ctx, "exc-1")
	require.NoError(t, err)
	assert.Equal(t, "bkk", got.Roman)
	assert.Equal(t, "ব্যাংকক", got.Bengali)
	assert.Equal(t, "the Thai capital", got.Note)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestStore_Save_RequiresID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.Save(context.Background(), domain.Exception{
		Roman:   "bkk",
		Bengali: "ব্যাংকক",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_Save_UpdatesExisting(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, domain.Exception{
		ID:        "exc-1",
		Roman:     "dhk",
		Bengali:   "ঢাকা",
		CreatedAt: created,
		UpdatedAt: created,
	}))

	require.NoError(t, store.Save(ctx, domain.Exception{
		ID:        "exc-1",
		Roman:     "dhk",
		Bengali:   "ঢাকায়",
		Note:      "locative",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}))

	got, err := store.Get(ctx, "exc-1")
	require.NoError(t, err)
	assert.Equal(t, "ঢাকায়", got.Bengali)
	assert.Equal(t, "locative", got.Note)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_GetByRoman(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Exception{
		ID:      "exc-1",
		Roman:   "fb",
		Bengali: "ফেসবুক",
	}))

	got, err := store.GetByRoman(ctx, "fb")
	require.NoError(t, err)
	assert.Equal(t, "exc-1", got.ID)
	assert.Equal(t, "ফেসবুক", got.Bengali)
}

func TestStore_GetByRoman_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetByRoman(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Exception{
		ID:      "exc-1",
		Roman:   "bd",
		Bengali: "বাংলাদেশ",
	}))

	err := store.Delete(ctx, "exc-1")
	require.NoError(t, err)

	_, err = store.Get(ctx, "exc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_List_OrderedByRoman(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	entries := []domain.Exception{
		{ID: "exc-1", Roman: "zoo", Bengali: "চিড়িয়াখানা"},
		{ID: "exc-2", Roman: "amra", Bengali: "আমরা"},
		{ID: "exc-3", Roman: "mas", Bengali: "মাস"},
	}
	for _, exc := range entries {
		require.NoError(t, store.Save(ctx, exc))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "amra", list[0].Roman)
	assert.Equal(t, "mas", list[1].Roman)
	assert.Equal(t, "zoo", list[2].Roman)
}

func TestStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_Count(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, store.Save(ctx, domain.Exception{ID: "exc-1", Roman: "a", Bengali: "আ"}))
	require.NoError(t, store.Save(ctx, domain.Exception{ID: "exc-2", Roman: "i", Bengali: "ই"}))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStore_Save_RomanMustBeUnique(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Exception{
		ID:      "exc-1",
		Roman:   "mas",
		Bengali: "মাস",
	}))

	// A different ID with the same Roman form violates the unique index.
	err := store.Save(ctx, domain.Exception{
		ID:      "exc-2",
		Roman:   "mas",
		Bengali: "মাংস",
	})
	assert.Error(t, err)
}
