package cryptoalg

import "context"

// RSAProcessor handles textbook RSA operations.
// Encryption transforms each character code point on its own; there is no padding
// and no block structure, so the processor is meant for teaching, not for protecting data.
type RSAProcessor interface {
	// GenerateKeys generates a key pair whose primes and public exponent have the given bit length.
	GenerateKeys(ctx context.Context, bitLength int) (*KeyPair, error)

	// Encrypt transforms plaintext into space-separated decimal ciphertext using the public key.
	Encrypt(plainText string, publicKey *PublicKey) (string, error)

	// Decrypt transforms space-separated decimal ciphertext back into text using the private key.
	Decrypt(cipherText string, privateKey *PrivateKey) (string, error)

	// SavePublicKeyToFile saves the public key to a JSON or CBOR key file (chosen by extension).
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// SavePrivateKeyToFile saves the private key to a JSON or CBOR key file (chosen by extension).
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// ReadPublicKey reads a public key written by SavePublicKeyToFile.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)

	// ReadPrivateKey reads a private key written by SavePrivateKeyToFile.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)
}
