//go:build unit
// +build unit

package cryptography

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestBitLength = 128
)

func setupRSAProcessor(t *testing.T) cryptoalg.RSAProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewRSAProcessor(random.NewSeededSource(2024), DefaultKeyGeneratorOptions(), logger)
	require.NoError(t, err)
	return processor
}

func TestNewRSAProcessor_NilSource(t *testing.T) {
	_, err := NewRSAProcessor(nil, DefaultKeyGeneratorOptions(), testutil.SetupTestLogger(t))
	assert.Error(t, err)
}

func TestRSAProcessor(t *testing.T) {
	processor := setupRSAProcessor(t)
	ctx := context.Background()

	t.Run("GenerateKeys", func(t *testing.T) {
		keyPair, err := processor.GenerateKeys(ctx, TestBitLength)
		require.NoError(t, err)
		require.NotNil(t, keyPair)
		assert.Equal(t, TestBitLength, keyPair.PublicExponent.BitLen())
		assert.InDelta(t, 2*TestBitLength, keyPair.BitLength(), 1)
	})

	t.Run("GenerateKeysInvalidBitLength", func(t *testing.T) {
		_, err := processor.GenerateKeys(ctx, 1)
		assert.ErrorIs(t, err, ErrInvalidBitLength)
	})

	t.Run("EncryptDecrypt", func(t *testing.T) {
		keyPair, err := processor.GenerateKeys(ctx, TestBitLength)
		require.NoError(t, err)

		plainText := "This is a secret message"
		encrypted, err := processor.Encrypt(plainText, keyPair.PublicKey())
		require.NoError(t, err)
		assert.NotEqual(t, plainText, encrypted)

		decrypted, err := processor.Decrypt(encrypted, keyPair.PrivateKey())
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		keyPair, err := processor.GenerateKeys(ctx, TestBitLength)
		require.NoError(t, err)
		otherKeyPair, err := processor.GenerateKeys(ctx, TestBitLength)
		require.NoError(t, err)

		encrypted, err := processor.Encrypt("secret", keyPair.PublicKey())
		require.NoError(t, err)

		decrypted, err := processor.Decrypt(encrypted, otherKeyPair.PrivateKey())
		if err == nil {
			assert.NotEqual(t, "secret", decrypted)
		} else {
			assert.ErrorIs(t, err, ErrCodePointOutOfRange)
		}
	})

	t.Run("DecryptMalformed", func(t *testing.T) {
		_, err := processor.Decrypt("12 x 45", testutil.TextbookKeyPair().PrivateKey())
		assert.ErrorIs(t, err, ErrMalformedCiphertext)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := processor.Encrypt("a", nil)
		assert.Error(t, err)
		_, err = processor.Decrypt("1", nil)
		assert.Error(t, err)
		assert.Error(t, processor.SavePublicKeyToFile(nil, filepath.Join(t.TempDir(), "k.json")))
		assert.Error(t, processor.SavePrivateKeyToFile(nil, filepath.Join(t.TempDir(), "k.json")))
	})

	for _, ext := range []string{".json", ".cbor"} {
		t.Run("SaveAndReadKeys"+ext, func(t *testing.T) {
			tmpDir := t.TempDir()
			privFile := filepath.Join(tmpDir, "private"+ext)
			pubFile := filepath.Join(tmpDir, "public"+ext)

			keyPair, err := processor.GenerateKeys(ctx, TestBitLength)
			require.NoError(t, err)

			require.NoError(t, processor.SavePrivateKeyToFile(keyPair.PrivateKey(), privFile))
			require.NoError(t, processor.SavePublicKeyToFile(keyPair.PublicKey(), pubFile))

			readPriv, err := processor.ReadPrivateKey(privFile)
			require.NoError(t, err)
			assert.Equal(t, keyPair.Modulus.String(), readPriv.Modulus.String())
			assert.Equal(t, keyPair.PrivateExponent.String(), readPriv.Exponent.String())

			readPub, err := processor.ReadPublicKey(pubFile)
			require.NoError(t, err)
			assert.Equal(t, keyPair.Modulus.String(), readPub.Modulus.String())
			assert.Equal(t, keyPair.PublicExponent.String(), readPub.Exponent.String())

			// halves must not be interchangeable
			_, err = processor.ReadPrivateKey(pubFile)
			assert.Error(t, err)
			_, err = processor.ReadPublicKey(privFile)
			assert.Error(t, err)
		})
	}

	t.Run("JSONKeyFileUsesDecimalStrings", func(t *testing.T) {
		pubFile := filepath.Join(t.TempDir(), "public.json")
		require.NoError(t, processor.SavePublicKeyToFile(testutil.TextbookKeyPair().PublicKey(), pubFile))

		content, err := os.ReadFile(pubFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"exponent": "17"`)
		assert.Contains(t, string(content), `"modulus": "3233"`)
		assert.Contains(t, string(content), PublicKeyFileType)
	})

	t.Run("ReadCorruptKeyFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		jsonFile := filepath.Join(tmpDir, "broken.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"type":"TEXTBOOK RSA PUBLIC KEY","exponent":"x","modulus":"3233"}`), 0600))
		_, err := processor.ReadPublicKey(jsonFile)
		assert.Error(t, err)

		cborFile := filepath.Join(tmpDir, "broken.cbor")
		require.NoError(t, os.WriteFile(cborFile, []byte{0xff, 0x00}, 0600))
		_, err = processor.ReadPublicKey(cborFile)
		assert.Error(t, err)
	})

	t.Run("SavePrivateKeyInvalidPath", func(t *testing.T) {
		err := processor.SavePrivateKeyToFile(testutil.TextbookKeyPair().PrivateKey(), "/invalid/path/private.json")
		assert.Error(t, err)
	})

	t.Run("ReadMissingKey", func(t *testing.T) {
		_, err := processor.ReadPublicKey(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}

func TestKeyFileFormat(t *testing.T) {
	assert.Equal(t, KeyFileFormatJSON, KeyFileFormat("key.json"))
	assert.Equal(t, KeyFileFormatJSON, KeyFileFormat("key"))
	assert.Equal(t, KeyFileFormatCBOR, KeyFileFormat("key.cbor"))
	assert.Equal(t, KeyFileFormatCBOR, KeyFileFormat("KEY.CBOR"))
}
