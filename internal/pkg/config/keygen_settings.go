package config

import "fmt"

// DefaultBitLength is the prime size used when nothing else is configured.
const DefaultBitLength = 1024

// KeyGenSettings controls textbook RSA key generation.
type KeyGenSettings struct {
	BitLength      int    `yaml:"bit_length" validate:"required,bitlength"`
	DistinctPrimes bool   `yaml:"distinct_primes"`
	Concurrent     bool   `yaml:"concurrent"`
	Seed           *int64 `yaml:"seed"`
}

// NewKeyGenSettings returns the default key generation settings.
func NewKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		BitLength:      DefaultBitLength,
		DistinctPrimes: true,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}
	return nil
}
