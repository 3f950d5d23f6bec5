package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyPairGenerationService implements the KeyPairGenerationService interface
type keyPairGenerationService struct {
	rsaProcessor     cryptoalg.RSAProcessor
	keyPairRepo      keys.KeyPairRepository
	defaultBitLength int
	logger           logger.Logger
}

// NewKeyPairGenerationService creates a new keyPairGenerationService instance.
// defaultBitLength applies when Generate is called with a bit length of 0.
func NewKeyPairGenerationService(rsaProcessor cryptoalg.RSAProcessor, keyPairRepo keys.KeyPairRepository, defaultBitLength int, logger logger.Logger) (keys.KeyPairGenerationService, error) {
	if rsaProcessor == nil || keyPairRepo == nil {
		return nil, fmt.Errorf("rsa processor and key pair repository are required")
	}
	return &keyPairGenerationService{
		rsaProcessor:     rsaProcessor,
		keyPairRepo:      keyPairRepo,
		defaultBitLength: defaultBitLength,
		logger:           logger,
	}, nil
}

// Generate generates a key pair and stores it under a fresh ID.
func (s *keyPairGenerationService) Generate(ctx context.Context, bitLength int) (*keys.KeyPairMeta, error) {
	if bitLength == 0 {
		bitLength = s.defaultBitLength
	}

	keyPair, err := s.rsaProcessor.GenerateKeys(ctx, bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	meta := keys.NewKeyPairMeta(uuid.NewString(), bitLength, keyPair, time.Now().UTC())
	if err := s.keyPairRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Stored %d-bit key pair %s with fingerprint %s", bitLength, meta.ID, meta.Fingerprint))
	return meta, nil
}

// keyPairMetadataService implements the KeyPairMetadataService interface
type keyPairMetadataService struct {
	keyPairRepo keys.KeyPairRepository
	logger      logger.Logger
}

// NewKeyPairMetadataService creates a new keyPairMetadataService instance
func NewKeyPairMetadataService(keyPairRepo keys.KeyPairRepository, logger logger.Logger) (keys.KeyPairMetadataService, error) {
	if keyPairRepo == nil {
		return nil, fmt.Errorf("key pair repository is required")
	}
	return &keyPairMetadataService{
		keyPairRepo: keyPairRepo,
		logger:      logger,
	}, nil
}

// List retrieves stored key pairs matching the query.
func (s *keyPairMetadataService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	keyPairs, err := s.keyPairRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key pairs: %w", err)
	}
	return keyPairs, nil
}

// GetByID retrieves a stored key pair by its ID.
func (s *keyPairMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyPairMeta, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve key pair: %w", err)
	}
	return keyPair, nil
}

// DeleteByID deletes a stored key pair by its ID.
func (s *keyPairMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyPairRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	s.logger.Info("Deleted key pair ", keyID)
	return nil
}

// cipherService implements the CipherService interface
type cipherService struct {
	rsaProcessor cryptoalg.RSAProcessor
	keyPairRepo  keys.KeyPairRepository
	logger       logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(rsaProcessor cryptoalg.RSAProcessor, keyPairRepo keys.KeyPairRepository, logger logger.Logger) (keys.CipherService, error) {
	if rsaProcessor == nil || keyPairRepo == nil {
		return nil, fmt.Errorf("rsa processor and key pair repository are required")
	}
	return &cipherService{
		rsaProcessor: rsaProcessor,
		keyPairRepo:  keyPairRepo,
		logger:       logger,
	}, nil
}

// Encrypt encrypts plainText with the public half of the stored key pair.
func (s *cipherService) Encrypt(ctx context.Context, keyID, plainText string) (string, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve key pair: %w", err)
	}

	cipherText, err := s.rsaProcessor.Encrypt(plainText, keyPair.KeyPair.PublicKey())
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with key pair %s: %w", keyID, err)
	}
	return cipherText, nil
}

// Decrypt decrypts cipherText with the private half of the stored key pair.
func (s *cipherService) Decrypt(ctx context.Context, keyID, cipherText string) (string, error) {
	keyPair, err := s.keyPairRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve key pair: %w", err)
	}

	plainText, err := s.rsaProcessor.Decrypt(cipherText, keyPair.KeyPair.PrivateKey())
	if err != nil {
		return "", fmt.Errorf("failed to decrypt with key pair %s: %w", keyID, err)
	}
	return plainText, nil
}
