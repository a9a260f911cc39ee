package services

import (
	"testing"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingCreateUpdateList(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(db)

	created, err := svc.Create(&dto.SettingRequest{Email: "info@dapurkita.id", NoTelp: "0812000111"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &dto.SettingRequest{Email: "halo@dapurkita.id", NoTelp: "0812000222"})
	require.NoError(t, err)
	assert.Equal(t, "halo@dapurkita.id", updated.Email)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "0812000222", list[0].NoTelp)
}

func TestSettingUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(db)

	_, err := svc.Update(42, &dto.SettingRequest{Email: "x@y.id", NoTelp: "0"})
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
