package testutil

import (
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
)

// Textbook example parameters: p=61, q=53, N=3233, phi=3120, e=17, d=2753.
const (
	TextbookP               = 61
	TextbookQ               = 53
	TextbookModulus         = 3233
	TextbookPublicExponent  = 17
	TextbookPrivateExponent = 2753
)

// TextbookKeyPair returns the classic small key pair. Its modulus only fits
// code points below 3233, which covers ASCII.
func TextbookKeyPair() *cryptoalg.KeyPair {
	return &cryptoalg.KeyPair{
		PublicExponent:  big.NewInt(TextbookPublicExponent),
		PrivateExponent: big.NewInt(TextbookPrivateExponent),
		Modulus:         big.NewInt(TextbookModulus),
	}
}
