package keys

import (
	"context"
)

// KeyPairGenerationService defines methods for generating and storing key pairs.
type KeyPairGenerationService interface {
	// Generate creates a key pair whose primes have bitLength bits and stores it.
	// It returns the stored KeyPairMeta and any error encountered.
	Generate(ctx context.Context, bitLength int) (*KeyPairMeta, error)
}

// KeyPairMetadataService defines methods for managing stored key pairs.
type KeyPairMetadataService interface {
	// List retrieves stored key pairs considering a query filter when set.
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)

	// GetByID retrieves a stored key pair by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyPairMeta, error)

	// DeleteByID deletes a stored key pair by its unique ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// CipherService defines methods for transforming text with stored key pairs.
type CipherService interface {
	// Encrypt encrypts plainText with the public half of the key pair keyID.
	Encrypt(ctx context.Context, keyID, plainText string) (string, error)

	// Decrypt decrypts cipherText with the private half of the key pair keyID.
	Decrypt(ctx context.Context, keyID, cipherText string) (string, error)
}

// KeyPairRepository defines the interface for KeyPair persistence
type KeyPairRepository interface {
	Create(ctx context.Context, keyPair *KeyPairMeta) error
	List(ctx context.Context, query *KeyPairQuery) ([]*KeyPairMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyPairMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}
