//go:build unit
// +build unit

package cryptoalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func textbookKeyPair() *KeyPair {
	return &KeyPair{
		PublicExponent:  big.NewInt(17),
		PrivateExponent: big.NewInt(2753),
		Modulus:         big.NewInt(3233),
	}
}

func TestKeyPair_Views(t *testing.T) {
	keyPair := textbookKeyPair()

	pub := keyPair.PublicKey()
	assert.Equal(t, int64(17), pub.Exponent.Int64())
	assert.Equal(t, int64(3233), pub.Modulus.Int64())

	priv := keyPair.PrivateKey()
	assert.Equal(t, int64(2753), priv.Exponent.Int64())
	assert.Equal(t, int64(3233), priv.Modulus.Int64())

	assert.Equal(t, 12, keyPair.BitLength())
}

func TestFingerprint(t *testing.T) {
	keyPair := textbookKeyPair()

	fp := keyPair.Fingerprint()
	assert.Len(t, fp, 2*fingerprintSize)
	assert.Equal(t, fp, keyPair.PublicKey().Fingerprint(), "fingerprint must be stable")

	other := &PublicKey{Exponent: big.NewInt(7), Modulus: big.NewInt(3233)}
	assert.NotEqual(t, fp, other.Fingerprint())
}
