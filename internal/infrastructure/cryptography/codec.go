package cryptography

import (
	"errors"
	"fmt"
	"math/big"
	"runtime"
	"strings"
	"unicode"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/arith"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMalformedCiphertext is returned when a ciphertext token is not a non-negative decimal integer.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrCodePointOutOfRange is returned when a character cannot be represented
	// under the modulus, or a decrypted value is not a valid code point.
	ErrCodePointOutOfRange = errors.New("code point out of range")
)

// parallelThreshold is the input length from which units are transformed concurrently.
const parallelThreshold = 64

// MalformedCiphertextError reports the token that failed to parse.
type MalformedCiphertextError struct {
	Token    string
	Position int
}

func (e *MalformedCiphertextError) Error() string {
	return fmt.Sprintf("%s: token %d %q is not a non-negative integer", ErrMalformedCiphertext, e.Position, e.Token)
}

// Is makes errors.Is(err, ErrMalformedCiphertext) hold.
func (e *MalformedCiphertextError) Is(target error) bool {
	return target == ErrMalformedCiphertext
}

// Ciphertext is the ordered sequence of transformed code points.
type Ciphertext []*big.Int

// String renders the ciphertext as decimal integers separated by single spaces.
func (c Ciphertext) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// ParseCiphertext parses whitespace-separated decimal integers.
// Leading, trailing and repeated whitespace is ignored.
func ParseCiphertext(s string) (Ciphertext, error) {
	tokens := strings.Fields(s)
	ciphertext := make(Ciphertext, 0, len(tokens))
	for i, token := range tokens {
		v, ok := new(big.Int).SetString(token, 10)
		if !ok || v.Sign() < 0 {
			return nil, &MalformedCiphertextError{Token: token, Position: i}
		}
		ciphertext = append(ciphertext, v)
	}
	return ciphertext, nil
}

// Encode raises every code point of plaintext to the public exponent modulo N.
func Encode(publicExponent, modulus *big.Int, plaintext string) (Ciphertext, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("encode with modulus %s: %w", modulus, arith.ErrInvalidModulus)
	}

	runes := []rune(plaintext)
	ciphertext := make(Ciphertext, len(runes))

	err := transform(len(runes), func(i int) error {
		m := big.NewInt(int64(runes[i]))
		if m.Cmp(modulus) >= 0 {
			return fmt.Errorf("character %q at %d does not fit modulus %s: %w", runes[i], i, modulus, ErrCodePointOutOfRange)
		}
		c, err := arith.ModPow(m, publicExponent, modulus)
		if err != nil {
			return err
		}
		ciphertext[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// Decode raises every ciphertext value to the private exponent modulo N and
// reassembles the resulting code points.
func Decode(privateExponent, modulus *big.Int, ciphertext Ciphertext) (string, error) {
	runes := make([]rune, len(ciphertext))

	err := transform(len(ciphertext), func(i int) error {
		m, err := arith.ModPow(ciphertext[i], privateExponent, modulus)
		if err != nil {
			return err
		}
		if !m.IsInt64() || m.Int64() > unicode.MaxRune {
			return fmt.Errorf("value at %d decrypts to %s: %w", i, m, ErrCodePointOutOfRange)
		}
		runes[i] = rune(m.Int64())
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(runes), nil
}

// EncodeString encodes plaintext and renders it in wire format.
func EncodeString(publicExponent, modulus *big.Int, plaintext string) (string, error) {
	ciphertext, err := Encode(publicExponent, modulus, plaintext)
	if err != nil {
		return "", err
	}
	return ciphertext.String(), nil
}

// DecodeString parses wire-format ciphertext and decodes it.
func DecodeString(privateExponent, modulus *big.Int, ciphertext string) (string, error) {
	parsed, err := ParseCiphertext(ciphertext)
	if err != nil {
		return "", err
	}
	return Decode(privateExponent, modulus, parsed)
}

// transform runs fn for every index in [0, n). Each call writes only its own
// slot, so output order matches input order whether or not it runs in parallel.
func transform(n int, fn func(i int) error) error {
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			return fn(i)
		})
	}
	return group.Wait()
}
