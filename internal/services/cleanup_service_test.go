package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dapurkita/backoffice/internal/models"
	"github.com/dapurkita/backoffice/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedObject(t *testing.T, store *storage.MemoryStore, key string) {
	t.Helper()
	_, err := store.Upload(context.Background(), key, strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)
}

func seedMakanan(t *testing.T, db *gorm.DB, foto string) {
	t.Helper()
	paket := models.JenisPaket{NamaPaket: "Paket Test"}
	require.NoError(t, db.Create(&paket).Error)
	row := models.Makanan{
		NamaMakanan:  "Nasi Goreng",
		Deskripsi:    "desc",
		Foto:         foto,
		Harga:        25000,
		JenisPaketID: paket.ID,
	}
	require.NoError(t, db.Create(&row).Error)
}

func TestCleanupDeletesOnlyOrphans(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := NewCleanupService(db, store, "makanan")

	seedObject(t, store, "makanan/a.jpg")
	seedObject(t, store, "makanan/b.jpg")
	seedObject(t, store, "makanan/c.jpg")
	seedMakanan(t, db, models.SerializeFotoURLs([]string{
		"https://cdn.example.com/makanan/a.jpg",
		"https://cdn.example.com/makanan/b.jpg?x=1",
	}))

	preview, err := svc.Preview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, preview.TotalFiles)
	assert.Equal(t, 2, preview.UsedFiles)
	assert.Equal(t, 1, preview.OrphanedFiles)
	assert.Equal(t, []string{"c.jpg"}, preview.OrphanedFileNames)

	result, err := svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDeleted)
	assert.Equal(t, []string{"c.jpg"}, result.DeletedFiles)
	assert.Empty(t, result.Errors)

	assert.True(t, store.Has("makanan/a.jpg"))
	assert.True(t, store.Has("makanan/b.jpg"))
	assert.False(t, store.Has("makanan/c.jpg"))
}

func TestCleanupIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := NewCleanupService(db, store, "makanan")

	seedObject(t, store, "makanan/a.jpg")
	seedObject(t, store, "makanan/orphan.jpg")
	seedMakanan(t, db, models.SerializeFotoURLs([]string{"https://cdn.example.com/makanan/a.jpg"}))

	first, err := svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalDeleted)

	second, err := svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.TotalDeleted)
	assert.Empty(t, second.DeletedFiles)
}

func TestCleanupToleratesLegacyBareStringFoto(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := NewCleanupService(db, store, "makanan")

	seedObject(t, store, "makanan/old.jpg")
	seedObject(t, store, "makanan/unused.jpg")
	// Legacy rows store one bare URL instead of a JSON list.
	seedMakanan(t, db, "https://cdn.example.com/makanan/old.jpg")

	result, err := svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"unused.jpg"}, result.DeletedFiles)
	assert.True(t, store.Has("makanan/old.jpg"))
}

func TestCleanupDeletesExtensionlessOrphans(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := NewCleanupService(db, store, "makanan")

	// An unreferenced object with no extension is still an orphan.
	seedObject(t, store, "makanan/noext")
	seedObject(t, store, "makanan/a.jpg")
	seedMakanan(t, db, models.SerializeFotoURLs([]string{"https://cdn.example.com/makanan/a.jpg"}))

	preview, err := svc.Preview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"noext"}, preview.OrphanedFileNames)

	result, err := svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDeleted)
	assert.Equal(t, []string{"noext"}, result.DeletedFiles)
	assert.False(t, store.Has("makanan/noext"))
	assert.True(t, store.Has("makanan/a.jpg"))
}

func TestCleanupCollectsDeleteFailures(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	store.FailKeys = map[string]bool{"makanan/stuck.jpg": true}
	svc := NewCleanupService(db, store, "makanan")

	seedObject(t, store, "makanan/stuck.jpg")
	seedObject(t, store, "makanan/gone.jpg")

	result, err := svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalDeleted)
	assert.Equal(t, []string{"gone.jpg"}, result.DeletedFiles)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "stuck.jpg")
}

func TestCleanupAbortsOnListFailure(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	store.ListErr = errors.New("bucket not found")
	svc := NewCleanupService(db, store, "makanan")

	_, err := svc.Cleanup(context.Background())
	require.Error(t, err)

	_, err = svc.Preview(context.Background())
	require.Error(t, err)
}

func TestRemoveImageURLsSkipsUnparseable(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	svc := NewCleanupService(db, store, "makanan")

	seedObject(t, store, "makanan/a.jpg")

	svc.RemoveImageURLs(context.Background(), []string{
		"https://cdn.example.com/makanan/a.jpg",
		"https://cdn.example.com/makanan/", // no filename, skipped
	})
	assert.False(t, store.Has("makanan/a.jpg"))
}
