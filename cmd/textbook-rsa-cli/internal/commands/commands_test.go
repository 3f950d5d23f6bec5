//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCommand()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// keyFiles returns the public and private key files written into dir.
func keyFiles(t *testing.T, dir, ext string) (string, string) {
	t.Helper()
	public, err := filepath.Glob(filepath.Join(dir, "*-public-key."+ext))
	require.NoError(t, err)
	private, err := filepath.Glob(filepath.Join(dir, "*-private-key."+ext))
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Len(t, private, 1)
	return public[0], private[0]
}

func TestGenerateEncryptDecrypt(t *testing.T) {
	for _, format := range []string{cryptography.KeyFileFormatJSON, cryptography.KeyFileFormatCBOR} {
		t.Run(format, func(t *testing.T) {
			keyDir := t.TempDir()

			out, err := execute(t, "generate-keys", "--bit-length", "64", "--key-dir", keyDir, "--format", format, "--seed", "7")
			require.NoError(t, err)
			assert.Contains(t, out, "Fingerprint:")

			publicKey, privateKey := keyFiles(t, keyDir, format)

			cipherFile := filepath.Join(keyDir, "cipher.txt")
			_, err = execute(t, "encrypt", "--public-key", publicKey, "--text", "Hello RSA!", "--output-file", cipherFile)
			require.NoError(t, err)

			cipherText, err := os.ReadFile(cipherFile)
			require.NoError(t, err)
			assert.Len(t, strings.Fields(string(cipherText)), len("Hello RSA!"))

			out, err = execute(t, "decrypt", "--private-key", privateKey, "--input-file", cipherFile)
			require.NoError(t, err)
			assert.Equal(t, "Hello RSA!\n", out)
		})
	}
}

func TestGenerateKeys_Reproducible(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	_, err := execute(t, "generate-keys", "--bit-length", "32", "--key-dir", first, "--seed", "99")
	require.NoError(t, err)
	_, err = execute(t, "generate-keys", "--bit-length", "32", "--key-dir", second, "--seed", "99", "--concurrent=false")
	require.NoError(t, err)

	firstPublic, _ := keyFiles(t, first, cryptography.KeyFileFormatJSON)
	secondPublic, _ := keyFiles(t, second, cryptography.KeyFileFormatJSON)

	a, err := os.ReadFile(firstPublic)
	require.NoError(t, err)
	b, err := os.ReadFile(secondPublic)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGenerateKeys_InvalidFlags(t *testing.T) {
	_, err := execute(t, "generate-keys", "--bit-length", "4", "--key-dir", t.TempDir())
	assert.Error(t, err)

	_, err = execute(t, "generate-keys", "--bit-length", "16", "--key-dir", t.TempDir(), "--format", "pem")
	assert.Error(t, err)
}

func TestEncrypt_RequiresInput(t *testing.T) {
	keyDir := t.TempDir()
	_, err := execute(t, "generate-keys", "--bit-length", "16", "--key-dir", keyDir, "--seed", "1")
	require.NoError(t, err)
	publicKey, _ := keyFiles(t, keyDir, cryptography.KeyFileFormatJSON)

	_, err = execute(t, "encrypt", "--public-key", publicKey)
	assert.Error(t, err)

	_, err = execute(t, "encrypt", "--text", "a")
	assert.Error(t, err, "public key is required")
}

func TestDecrypt_MalformedCiphertext(t *testing.T) {
	keyDir := t.TempDir()
	_, err := execute(t, "generate-keys", "--bit-length", "16", "--key-dir", keyDir, "--seed", "1")
	require.NoError(t, err)
	_, privateKey := keyFiles(t, keyDir, cryptography.KeyFileFormatJSON)

	_, err = execute(t, "decrypt", "--private-key", privateKey, "--text", "12 x 45")
	assert.ErrorIs(t, err, cryptography.ErrMalformedCiphertext)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--seed", "2024")
	require.NoError(t, err)

	assert.Contains(t, out, "p: ")
	assert.Contains(t, out, "q: ")
	assert.Contains(t, out, "Message: Hello RSA!")
	assert.Contains(t, out, "Encrypted Text: ")
	assert.Contains(t, out, "Decrypted Text: Hello RSA!\n")
}

func TestDemo_CustomMessage(t *testing.T) {
	out, err := execute(t, "demo", "--seed", "3", "--bit-length", "24", "--message", "textbook")
	require.NoError(t, err)
	assert.Contains(t, out, "Decrypted Text: textbook\n")
}
