//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyPairGenerationService is a mock implementation of KeyPairGenerationService
type MockKeyPairGenerationService struct {
	mock.Mock
}

func (m *MockKeyPairGenerationService) Generate(ctx context.Context, bitLength int) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, bitLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

// MockKeyPairMetadataService is a mock implementation of KeyPairMetadataService
type MockKeyPairMetadataService struct {
	mock.Mock
}

func (m *MockKeyPairMetadataService) List(ctx context.Context, query *keys.KeyPairQuery) ([]*keys.KeyPairMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyPairMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPairMeta), args.Error(1)
}

func (m *MockKeyPairMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, keyID, plainText string) (string, error) {
	args := m.Called(ctx, keyID, plainText)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, keyID, cipherText string) (string, error) {
	args := m.Called(ctx, keyID, cipherText)
	return args.String(0), args.Error(1)
}
