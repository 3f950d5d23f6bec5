package cryptography

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Key file types, written into every file so halves cannot be swapped silently.
const (
	PublicKeyFileType  = "TEXTBOOK RSA PUBLIC KEY"
	PrivateKeyFileType = "TEXTBOOK RSA PRIVATE KEY"
)

// Key file formats, selected by file extension.
const (
	KeyFileFormatJSON = "json"
	KeyFileFormatCBOR = "cbor"
)

var errKeyFileType = errors.New("unexpected key file type")

// jsonKeyFile stores integers as decimal strings to survive JSON tooling
// that parses numbers as doubles.
type jsonKeyFile struct {
	Type     string `json:"type"`
	Exponent string `json:"exponent"`
	Modulus  string `json:"modulus"`
}

// cborKeyFile relies on CBOR bignum tags for the integers.
type cborKeyFile struct {
	Type     string   `cbor:"1,keyasint"`
	Exponent *big.Int `cbor:"2,keyasint"`
	Modulus  *big.Int `cbor:"3,keyasint"`
}

// KeyFileFormat returns the format implied by the file extension; JSON unless the name ends in .cbor.
func KeyFileFormat(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), "."+KeyFileFormatCBOR) {
		return KeyFileFormatCBOR
	}
	return KeyFileFormatJSON
}

func marshalKeyFile(keyType string, exponent, modulus *big.Int, format string) ([]byte, error) {
	switch format {
	case KeyFileFormatCBOR:
		return cbor.Marshal(cborKeyFile{Type: keyType, Exponent: exponent, Modulus: modulus})
	case KeyFileFormatJSON:
		return json.MarshalIndent(jsonKeyFile{
			Type:     keyType,
			Exponent: exponent.String(),
			Modulus:  modulus.String(),
		}, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported key file format: %s", format)
	}
}

func unmarshalKeyFile(data []byte, keyType, format string) (exponent, modulus *big.Int, err error) {
	switch format {
	case KeyFileFormatCBOR:
		var file cborKeyFile
		if err := cbor.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("failed to decode CBOR key file: %w", err)
		}
		if file.Type != keyType {
			return nil, nil, fmt.Errorf("%w: got %q, want %q", errKeyFileType, file.Type, keyType)
		}
		exponent, modulus = file.Exponent, file.Modulus
	case KeyFileFormatJSON:
		var file jsonKeyFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("failed to decode JSON key file: %w", err)
		}
		if file.Type != keyType {
			return nil, nil, fmt.Errorf("%w: got %q, want %q", errKeyFileType, file.Type, keyType)
		}
		var ok bool
		if exponent, ok = new(big.Int).SetString(file.Exponent, 10); !ok {
			return nil, nil, fmt.Errorf("invalid exponent %q in key file", file.Exponent)
		}
		if modulus, ok = new(big.Int).SetString(file.Modulus, 10); !ok {
			return nil, nil, fmt.Errorf("invalid modulus %q in key file", file.Modulus)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported key file format: %s", format)
	}

	if exponent == nil || modulus == nil || modulus.Sign() <= 0 {
		return nil, nil, errors.New("key file is missing its exponent or modulus")
	}
	return exponent, modulus, nil
}

func writeKeyFile(filename, keyType string, exponent, modulus *big.Int) error {
	data, err := marshalKeyFile(keyType, exponent, modulus, KeyFileFormat(filename))
	if err != nil {
		return fmt.Errorf("failed to encode key: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(filename), data, 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

func readKeyFile(filename, keyType string) (exponent, modulus *big.Int, err error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read key file: %w", err)
	}
	return unmarshalKeyFile(data, keyType, KeyFileFormat(filename))
}
