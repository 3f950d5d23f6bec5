package cryptoalg

import (
	"encoding/hex"
	"math/big"

	"github.com/zeebo/blake3"
)

// fingerprintSize is the number of digest bytes shown in a fingerprint.
const fingerprintSize = 8

// KeyPair holds the material produced by key generation.
// Values are never modified after construction.
type KeyPair struct {
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Modulus         *big.Int
}

// PublicKey is the encryption half (e, N) of a key pair.
type PublicKey struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// PrivateKey is the decryption half (d, N) of a key pair.
type PrivateKey struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// PublicKey returns the (e, N) view of the key pair.
func (k *KeyPair) PublicKey() *PublicKey {
	return &PublicKey{Exponent: k.PublicExponent, Modulus: k.Modulus}
}

// PrivateKey returns the (d, N) view of the key pair.
func (k *KeyPair) PrivateKey() *PrivateKey {
	return &PrivateKey{Exponent: k.PrivateExponent, Modulus: k.Modulus}
}

// BitLength returns the size of the modulus in bits.
func (k *KeyPair) BitLength() int {
	return k.Modulus.BitLen()
}

// Fingerprint returns a short BLAKE3 digest identifying the public key.
func (k *PublicKey) Fingerprint() string {
	h := blake3.New()
	// length prefixes keep (e, N) pairs with shifted digits apart
	for _, v := range []*big.Int{k.Exponent, k.Modulus} {
		b := v.Bytes()
		_, _ = h.Write(big.NewInt(int64(len(b))).Bytes())
		_, _ = h.Write([]byte{0})
		_, _ = h.Write(b)
	}
	return hex.EncodeToString(h.Sum(nil)[:fingerprintSize])
}

// Fingerprint returns the fingerprint of the key pair's public key.
func (k *KeyPair) Fingerprint() string {
	return k.PublicKey().Fingerprint()
}
