package keys

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrKeyPairNotFound is returned when no key pair has the requested ID.
var ErrKeyPairNotFound = errors.New("key pair not found")

// KeyPairMeta is a stored textbook RSA key pair.
type KeyPairMeta struct {
	ID              string             `validate:"required,uuid4"`
	BitLength       int                `validate:"required,bitlength"`
	Fingerprint     string             `validate:"required,hexadecimal"`
	KeyPair         *cryptoalg.KeyPair `validate:"required"`
	DateTimeCreated time.Time          `validate:"required"`
}

// NewKeyPairMeta wraps a freshly generated key pair for storage.
func NewKeyPairMeta(id string, bitLength int, keyPair *cryptoalg.KeyPair, created time.Time) *KeyPairMeta {
	return &KeyPairMeta{
		ID:              id,
		BitLength:       bitLength,
		Fingerprint:     keyPair.Fingerprint(),
		KeyPair:         keyPair,
		DateTimeCreated: created,
	}
}

// Validate for validating KeyPairMeta struct
func (k *KeyPairMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.BitLengthTag, validators.BitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	for name, v := range map[string]*big.Int{
		"public exponent":  k.KeyPair.PublicExponent,
		"private exponent": k.KeyPair.PrivateExponent,
		"modulus":          k.KeyPair.Modulus,
	} {
		if v == nil || v.Sign() <= 0 {
			return fmt.Errorf("validation failed: %s must be positive", name)
		}
	}

	return nil
}
