package cryptography

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	keyGenerator *KeyGenerator
	logger       logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(source random.Source, options KeyGeneratorOptions, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if source == nil {
		return nil, errors.New("random source cannot be nil")
	}
	return &rsaProcessor{
		keyGenerator: NewKeyGenerator(source, options),
		logger:       logger,
	}, nil
}

// GenerateKeys generates a textbook RSA key pair whose primes have bitLength bits.
func (r *rsaProcessor) GenerateKeys(ctx context.Context, bitLength int) (*cryptoalg.KeyPair, error) {
	keyPair, err := r.keyGenerator.GenerateKeyPair(ctx, bitLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Info("Generated RSA key pair with fingerprint ", keyPair.Fingerprint())
	return keyPair, nil
}

// Encrypt encrypts every character of plainText separately with the public key.
func (r *rsaProcessor) Encrypt(plainText string, publicKey *cryptoalg.PublicKey) (string, error) {
	if publicKey == nil {
		return "", errors.New("public key cannot be nil")
	}

	cipherText, err := EncodeString(publicKey.Exponent, publicKey.Modulus, plainText)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt data: %w", err)
	}

	r.logger.Debug("RSA encryption succeeded")
	return cipherText, nil
}

// Decrypt decrypts space-separated ciphertext with the private key.
func (r *rsaProcessor) Decrypt(cipherText string, privateKey *cryptoalg.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", errors.New("private key cannot be nil")
	}

	plainText, err := DecodeString(privateKey.Exponent, privateKey.Modulus, cipherText)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt data: %w", err)
	}

	r.logger.Debug("RSA decryption succeeded")
	return plainText, nil
}

// SavePublicKeyToFile saves (e, N) to filename.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *cryptoalg.PublicKey, filename string) error {
	if publicKey == nil {
		return errors.New("public key cannot be nil")
	}
	if err := writeKeyFile(filename, PublicKeyFileType, publicKey.Exponent, publicKey.Modulus); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// SavePrivateKeyToFile saves (d, N) to filename.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *cryptoalg.PrivateKey, filename string) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}
	if err := writeKeyFile(filename, PrivateKeyFileType, privateKey.Exponent, privateKey.Modulus); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// ReadPublicKey reads (e, N) from publicKeyPath.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*cryptoalg.PublicKey, error) {
	exponent, modulus, err := readKeyFile(publicKeyPath, PublicKeyFileType)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}
	return &cryptoalg.PublicKey{Exponent: exponent, Modulus: modulus}, nil
}

// ReadPrivateKey reads (d, N) from privateKeyPath.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*cryptoalg.PrivateKey, error) {
	exponent, modulus, err := readKeyFile(privateKeyPath, PrivateKeyFileType)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	return &cryptoalg.PrivateKey{Exponent: exponent, Modulus: modulus}, nil
}
