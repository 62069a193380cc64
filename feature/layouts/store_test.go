package layouts

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"layout-catalog/core/database"
	"layout-catalog/feature/layouts/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestStore opens a migrated store on a sqlite file private to the test.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layouts.db")
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   path + "?_busy_timeout=5000&_journal_mode=WAL",
	})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())

	t.Cleanup(func() {
		store.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store
}

func TestStore_Migrate(t *testing.T) {
	store := newTestStore(t)

	// Migrating an up to date schema is a no-op.
	assert.NoError(t, store.Migrate())

	missing, err := database.MissingColumns(store.Read(context.Background()), models.TableLayoutCategories, []string{"layout_id", "category_id"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestStore_WriteCommitsAndNotifies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var commits atomic.Int32
	store.OnCommit(func() { commits.Add(1) })

	err := store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.Category{Slug: "about", Title: "About"}).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), commits.Load())

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "about", categories[0].Slug)
}

func TestStore_WriteRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var commits atomic.Int32
	store.OnCommit(func() { commits.Add(1) })

	boom := errors.New("boom")
	err := store.Write(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Category{Slug: "about", Title: "About"}).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, commits.Load())

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestStore_WriteRecoversPanic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var commits atomic.Int32
	store.OnCommit(func() { commits.Add(1) })

	err := store.Write(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&models.Category{Slug: "about"}).Error; err != nil {
			return err
		}
		panic("store exploded")
	})
	assert.ErrorContains(t, err, "store exploded")
	assert.Zero(t, commits.Load())

	// The writer survives and the panicking transaction left nothing behind.
	require.NoError(t, store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.Category{Slug: "blog"}).Error
	}))
	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "blog", categories[0].Slug)
}

func TestStore_OnCommitRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var commits atomic.Int32
	remove := store.OnCommit(func() { commits.Add(1) })
	remove()

	require.NoError(t, store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.Category{Slug: "about"}).Error
	}))
	assert.Zero(t, commits.Load())
}

func TestStore_WriteAfterClose(t *testing.T) {
	store := newTestStore(t)
	store.Close()
	store.Close()

	err := store.Write(context.Background(), func(tx *gorm.DB) error { return nil })
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestStore_WriteCanceledContext(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&models.Category{Slug: "about"}).Error
	})
	assert.Error(t, err)

	categories, err := store.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestStore_ListCategoriesSorted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create([]*models.Category{
			{Slug: "contact", Title: "Contact"},
			{Slug: "b-about", Title: "About"},
			{Slug: "a-about", Title: "About"},
		}).Error
	}))

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)

	slugs := make([]string, 0, len(categories))
	for _, c := range categories {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"a-about", "b-about", "contact"}, slugs)
}
