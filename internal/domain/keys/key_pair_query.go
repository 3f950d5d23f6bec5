package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyPairQuery filters, sorts and paginates stored key pairs.
type KeyPairQuery struct {
	BitLength       int       `validate:"omitempty,min=1"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,min=1,max=1000"`
	Offset          int       `validate:"omitempty,min=0"`
	SortBy          string    `validate:"omitempty,oneof=date_time_created bit_length id"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewKeyPairQuery creates a KeyPairQuery with default values.
func NewKeyPairQuery() *KeyPairQuery {
	return &KeyPairQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyPairQuery struct
func (q *KeyPairQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
