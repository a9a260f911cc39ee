package services

import (
	"context"
	"testing"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"github.com/dapurkita/backoffice/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogServices(t *testing.T) (*gorm.DB, *storage.MemoryStore, *JenisPaketService, *MakananService) {
	t.Helper()
	db := newTestDB(t)
	store := storage.NewMemoryStore("https://cdn.example.com")
	cleanup := NewCleanupService(db, store, "makanan")
	return db, store, NewJenisPaketService(db), NewMakananService(db, cleanup)
}

func TestJenisPaketDeleteRejectedWhileInUse(t *testing.T) {
	db, _, pakets, makanan := newCatalogServices(t)

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket Hemat"})
	require.NoError(t, err)

	_, err = makanan.Create(&dto.MakananRequest{
		NamaMakanan:  "Ayam Bakar",
		Deskripsi:    "desc",
		Foto:         []string{"https://cdn.example.com/makanan/a.jpg"},
		Harga:        30000,
		JenisPaketID: paket.ID,
	})
	require.NoError(t, err)

	err = pakets.Delete(paket.ID)
	assert.ErrorIs(t, err, ErrJenisPaketInUse)

	var paketCount, makananCount int64
	db.Model(&models.JenisPaket{}).Count(&paketCount)
	db.Model(&models.Makanan{}).Count(&makananCount)
	assert.EqualValues(t, 1, paketCount)
	assert.EqualValues(t, 1, makananCount)
}

func TestJenisPaketDeleteWhenEmpty(t *testing.T) {
	db, _, pakets, _ := newCatalogServices(t)

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket Kosong"})
	require.NoError(t, err)

	require.NoError(t, pakets.Delete(paket.ID))

	var count int64
	db.Model(&models.JenisPaket{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestJenisPaketListCountsMakanan(t *testing.T) {
	_, _, pakets, makanan := newCatalogServices(t)

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket Isi"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = makanan.Create(&dto.MakananRequest{
			NamaMakanan:  "Item",
			Deskripsi:    "desc",
			Foto:         []string{"https://cdn.example.com/makanan/a.jpg"},
			Harga:        10000,
			JenisPaketID: paket.ID,
		})
		require.NoError(t, err)
	}

	list, err := pakets.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.EqualValues(t, 2, list[0].MakananCount)
}

func TestMakananCreateValidatesFoto(t *testing.T) {
	_, _, pakets, makanan := newCatalogServices(t)

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket"})
	require.NoError(t, err)

	_, err = makanan.Create(&dto.MakananRequest{
		NamaMakanan:  "Tanpa Foto",
		Deskripsi:    "desc",
		Foto:         []string{},
		Harga:        10000,
		JenisPaketID: paket.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidFoto)

	_, err = makanan.Create(&dto.MakananRequest{
		NamaMakanan:  "Foto Rusak",
		Deskripsi:    "desc",
		Foto:         []string{"ftp://bad"},
		Harga:        10000,
		JenisPaketID: paket.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidFoto)
}

func TestMakananCreateRequiresJenisPaket(t *testing.T) {
	_, _, _, makanan := newCatalogServices(t)

	_, err := makanan.Create(&dto.MakananRequest{
		NamaMakanan:  "Yatim",
		Deskripsi:    "desc",
		Foto:         []string{"https://cdn.example.com/makanan/a.jpg"},
		Harga:        10000,
		JenisPaketID: 99,
	})
	assert.ErrorIs(t, err, ErrJenisPaketNotFound)
}

func TestMakananDeleteRemovesImagesBestEffort(t *testing.T) {
	db, store, pakets, makanan := newCatalogServices(t)

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket"})
	require.NoError(t, err)

	seedObject(t, store, "makanan/x.jpg")

	created, err := makanan.Create(&dto.MakananRequest{
		NamaMakanan:  "Dengan Foto",
		Deskripsi:    "desc",
		Foto:         []string{"https://cdn.example.com/makanan/x.jpg"},
		Harga:        10000,
		JenisPaketID: paket.ID,
	})
	require.NoError(t, err)

	require.NoError(t, makanan.Delete(context.Background(), created.ID))

	var count int64
	db.Model(&models.Makanan{}).Count(&count)
	assert.EqualValues(t, 0, count)
	assert.False(t, store.Has("makanan/x.jpg"))
}

func TestMakananDeleteSurvivesBlobFailure(t *testing.T) {
	db, store, pakets, makanan := newCatalogServices(t)
	store.FailKeys = map[string]bool{"makanan/x.jpg": true}

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket"})
	require.NoError(t, err)

	created, err := makanan.Create(&dto.MakananRequest{
		NamaMakanan:  "Dengan Foto",
		Deskripsi:    "desc",
		Foto:         []string{"https://cdn.example.com/makanan/x.jpg"},
		Harga:        10000,
		JenisPaketID: paket.ID,
	})
	require.NoError(t, err)

	// The row delete proceeds even when the blob delete fails.
	require.NoError(t, makanan.Delete(context.Background(), created.ID))

	var count int64
	db.Model(&models.Makanan{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestMakananGetParsesLegacyFoto(t *testing.T) {
	db, _, pakets, makanan := newCatalogServices(t)

	paket, err := pakets.Create(&dto.JenisPaketRequest{NamaPaket: "Paket"})
	require.NoError(t, err)

	row := models.Makanan{
		NamaMakanan:  "Lama",
		Deskripsi:    "desc",
		Foto:         "https://host/makanan/old.jpg",
		Harga:        5000,
		JenisPaketID: paket.ID,
	}
	require.NoError(t, db.Create(&row).Error)

	got, err := makanan.Get(row.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://host/makanan/old.jpg"}, got.Foto)
}
