//go:build unit
// +build unit

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_UnsupportedType(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle"})
	assert.Error(t, err)
}

func TestNewGormKeyPairRepository_NilDB(t *testing.T) {
	_, err := NewGormKeyPairRepository(nil, nil)
	assert.Error(t, err)
}

func TestKeyPairSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t)
	keyPair := CreateTestKeyPair(t, 1, 64, time.Now())

	err := ctx.KeyPairRepo.Create(context.Background(), keyPair)
	require.NoError(t, err)

	var created models.KeyPairModel
	require.NoError(t, ctx.DB.First(&created, "id = ?", keyPair.ID).Error)
	assert.Equal(t, keyPair.KeyPair.Modulus.String(), created.Modulus)
	assert.Equal(t, keyPair.KeyPair.PublicExponent.String(), created.PublicExponent)
	assert.Equal(t, keyPair.KeyPair.PrivateExponent.String(), created.PrivateExponent)
	assert.Equal(t, keyPair.Fingerprint, created.Fingerprint)
}

func TestKeyPairSqliteRepository_CreateInvalid(t *testing.T) {
	ctx := SetupTestDB(t)

	keyPair := CreateTestKeyPair(t, 1, 64, time.Now())
	keyPair.ID = "not-a-uuid"
	assert.Error(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	keyPair = CreateTestKeyPair(t, 1, 64, time.Now())
	keyPair.KeyPair = nil
	assert.Error(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))
}

func TestKeyPairSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t)
	keyPair := CreateTestKeyPair(t, 2, 128, time.Now())
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	require.NoError(t, err)
	assert.Equal(t, keyPair.ID, fetched.ID)
	assert.Equal(t, 128, fetched.BitLength)
	assert.Equal(t, 0, keyPair.KeyPair.Modulus.Cmp(fetched.KeyPair.Modulus))
	assert.Equal(t, 0, keyPair.KeyPair.PublicExponent.Cmp(fetched.KeyPair.PublicExponent))
	assert.Equal(t, 0, keyPair.KeyPair.PrivateExponent.Cmp(fetched.KeyPair.PrivateExponent))
}

func TestKeyPairSqliteRepository_GetByIDNotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}

func TestKeyPairSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t)
	now := time.Now()

	older := CreateTestKeyPair(t, 3, 64, now.Add(-time.Hour))
	newer := CreateTestKeyPair(t, 4, 64, now)
	larger := CreateTestKeyPair(t, 5, 128, now.Add(-time.Minute))
	for _, keyPair := range []*keys.KeyPairMeta{older, newer, larger} {
		require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))
	}

	t.Run("all with defaults", func(t *testing.T) {
		list, err := ctx.KeyPairRepo.List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, newer.ID, list[0].ID, "newest first")
	})

	t.Run("filter by bit length", func(t *testing.T) {
		query := keys.NewKeyPairQuery()
		query.BitLength = 64
		query.SortOrder = "asc"

		list, err := ctx.KeyPairRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, older.ID, list[0].ID)
		assert.Equal(t, newer.ID, list[1].ID)
	})

	t.Run("paginate", func(t *testing.T) {
		query := keys.NewKeyPairQuery()
		query.Limit = 1
		query.Offset = 1

		list, err := ctx.KeyPairRepo.List(context.Background(), query)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, larger.ID, list[0].ID)
	})

	t.Run("invalid sort column", func(t *testing.T) {
		query := keys.NewKeyPairQuery()
		query.SortBy = "modulus; DROP TABLE key_pairs"

		_, err := ctx.KeyPairRepo.List(context.Background(), query)
		assert.Error(t, err)
	})
}

func TestKeyPairSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t)
	keyPair := CreateTestKeyPair(t, 6, 64, time.Now())
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID))

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)

	err = ctx.KeyPairRepo.DeleteByID(context.Background(), keyPair.ID)
	assert.ErrorIs(t, err, keys.ErrKeyPairNotFound)
}

func TestKeyPairSqliteRepository_CorruptRow(t *testing.T) {
	ctx := SetupTestDB(t)
	keyPair := CreateTestKeyPair(t, 7, 64, time.Now())
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), keyPair))

	require.NoError(t, ctx.DB.Model(&models.KeyPairModel{}).Where("id = ?", keyPair.ID).Update("modulus", "12ab").Error)

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), keyPair.ID)
	assert.Error(t, err)
}
