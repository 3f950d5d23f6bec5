// Package cryptoalg defines the key material and the processor contract for textbook RSA:
// key generation, per-character encryption and decryption, and key file persistence.
package cryptoalg
