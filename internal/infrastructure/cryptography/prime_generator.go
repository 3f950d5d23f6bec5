package cryptography

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
)

// ErrInvalidBitLength is returned for bit lengths that cannot hold a prime.
var ErrInvalidBitLength = errors.New("bit length must be at least 2")

// PrimeGenerator produces random probable primes of an exact bit length.
type PrimeGenerator interface {
	GenerateLargePrime(ctx context.Context, bitLength int) (*big.Int, error)
}

type primeGenerator struct {
	source random.Source
	tester *PrimalityTester
}

// NewPrimeGenerator creates a PrimeGenerator drawing candidates and witnesses from source.
func NewPrimeGenerator(source random.Source) PrimeGenerator {
	return &primeGenerator{
		source: source,
		tester: NewPrimalityTester(source),
	}
}

// bitRange returns [2^(bitLength-1), 2^bitLength - 1], the integers of exactly bitLength bits.
func bitRange(bitLength int) (lo, hi *big.Int, err error) {
	if bitLength < 2 {
		return nil, nil, fmt.Errorf("got %d: %w", bitLength, ErrInvalidBitLength)
	}
	lo = new(big.Int).Lsh(one, uint(bitLength-1))
	hi = new(big.Int).Lsh(one, uint(bitLength))
	hi.Sub(hi, one)
	return lo, hi, nil
}

// GenerateLargePrime samples until a candidate passes the primality test.
// There is no attempt limit; ctx is checked between candidates.
func (g *primeGenerator) GenerateLargePrime(ctx context.Context, bitLength int) (*big.Int, error) {
	lo, hi, err := bitRange(bitLength)
	if err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("prime generation aborted: %w", err)
		}

		candidate, err := g.source.IntRange(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
		}

		isPrime, err := g.tester.IsProbablePrime(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to test prime candidate: %w", err)
		}
		if isPrime {
			return candidate, nil
		}
	}
}
