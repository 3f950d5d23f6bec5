//go:build unit
// +build unit

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repository
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyPairRepository
}

// SetupTestDB opens a migrated in-memory SQLite database that is closed on cleanup
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	db, err := NewDBConnection(config.DatabaseSettings{Type: config.SqliteDbType})
	require.NoError(t, err, "Failed to create database connection")
	t.Cleanup(func() {
		_ = CloseDB(db)
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	repo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{DB: db, KeyPairRepo: repo}
}

// CreateTestKeyPair generates a deterministic key pair wrapped for storage
func CreateTestKeyPair(t *testing.T, seed int64, bitLength int, created time.Time) *keys.KeyPairMeta {
	t.Helper()

	generator := cryptography.NewKeyGenerator(random.NewSeededSource(seed), cryptography.DefaultKeyGeneratorOptions())
	keyPair, err := generator.GenerateKeyPair(context.Background(), bitLength)
	require.NoError(t, err)

	return keys.NewKeyPairMeta(uuid.NewString(), bitLength, keyPair, created)
}
