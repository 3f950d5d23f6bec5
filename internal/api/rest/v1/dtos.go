package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// GenerateKeyPairRequest represents the request body for key pair generation.
// An omitted bit length selects the server's configured default.
type GenerateKeyPairRequest struct {
	BitLength int `json:"bit_length" validate:"omitempty,bitlength"`
}

// Validate for validating GenerateKeyPairRequest struct
func (r *GenerateKeyPairRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.BitLengthTag, validators.BitLengthValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(r)
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
	return nil
}

// EncryptRequest represents the request body for encryption
type EncryptRequest struct {
	PlainText string `json:"plain_text"`
}

// DecryptRequest represents the request body for decryption
type DecryptRequest struct {
	CipherText string `json:"cipher_text"`
}

// KeyPairMetaResponse represents the public view of a stored key pair
type KeyPairMetaResponse struct {
	ID              string    `json:"id"`
	BitLength       int       `json:"bit_length"`
	Fingerprint     string    `json:"fingerprint"`
	PublicExponent  string    `json:"public_exponent"`
	Modulus         string    `json:"modulus"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// PrivateKeyResponse represents the private half (d, N) of a stored key pair
type PrivateKeyResponse struct {
	ID              string `json:"id"`
	PrivateExponent string `json:"private_exponent"`
	Modulus         string `json:"modulus"`
}

// CipherTextResponse holds space-separated decimal ciphertext
type CipherTextResponse struct {
	CipherText string `json:"cipher_text"`
}

// PlainTextResponse holds decrypted text
type PlainTextResponse struct {
	PlainText string `json:"plain_text"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func newKeyPairMetaResponse(meta *keys.KeyPairMeta) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              meta.ID,
		BitLength:       meta.BitLength,
		Fingerprint:     meta.Fingerprint,
		PublicExponent:  meta.KeyPair.PublicExponent.String(),
		Modulus:         meta.KeyPair.Modulus.String(),
		DateTimeCreated: meta.DateTimeCreated,
	}
}
