package validators

import (
	"github.com/go-playground/validator/v10"
)

// BitLengthTag is the validation tag for key bit lengths.
const BitLengthTag = "bitlength"

// Bounds for configurable key sizes. Below MinBitLength the modulus cannot hold
// common character code points; above MaxBitLength generation takes minutes.
const (
	MinBitLength = 8
	MaxBitLength = 4096
)

// BitLengthValidation validates that an integer field is a supported prime bit length.
func BitLengthValidation(fl validator.FieldLevel) bool {
	bitLength := fl.Field().Int()
	return bitLength >= MinBitLength && bitLength <= MaxBitLength
}
