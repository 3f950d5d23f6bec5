package cryptography

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/arith"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
	"golang.org/x/sync/errgroup"
)

// KeyGeneratorOptions tunes key generation.
type KeyGeneratorOptions struct {
	// DistinctPrimes redraws q while it equals p. Without it a collision yields
	// a square modulus, which still computes but is trivially factored.
	DistinctPrimes bool

	// Concurrent generates p and q in parallel, each from a derived source.
	Concurrent bool
}

// DefaultKeyGeneratorOptions enables distinct primes and sequential generation.
func DefaultKeyGeneratorOptions() KeyGeneratorOptions {
	return KeyGeneratorOptions{DistinctPrimes: true}
}

// KeyGenerator combines two random primes into a textbook RSA key pair.
// The public exponent is drawn from the same bit range as the primes
// rather than fixed to a small constant.
type KeyGenerator struct {
	source    random.Source
	newPrimes func(random.Source) PrimeGenerator
	options   KeyGeneratorOptions
}

// NewKeyGenerator creates a KeyGenerator drawing all randomness from source.
func NewKeyGenerator(source random.Source, options KeyGeneratorOptions) *KeyGenerator {
	return &KeyGenerator{
		source:    source,
		newPrimes: NewPrimeGenerator,
		options:   options,
	}
}

// KeyMaterial is a key pair together with the secrets it was derived from.
type KeyMaterial struct {
	P       *big.Int
	Q       *big.Int
	Phi     *big.Int
	KeyPair *cryptoalg.KeyPair
}

// GenerateKeyPair generates (e, d, N) with primes and e of bitLength bits.
func (g *KeyGenerator) GenerateKeyPair(ctx context.Context, bitLength int) (*cryptoalg.KeyPair, error) {
	material, err := g.GenerateKeyMaterial(ctx, bitLength)
	if err != nil {
		return nil, err
	}
	return material.KeyPair, nil
}

// GenerateKeyMaterial is GenerateKeyPair that also returns p, q and phi.
func (g *KeyGenerator) GenerateKeyMaterial(ctx context.Context, bitLength int) (*KeyMaterial, error) {
	lo, hi, err := bitRange(bitLength)
	if err != nil {
		return nil, err
	}

	p, q, err := g.generatePrimes(ctx, bitLength)
	if err != nil {
		return nil, err
	}

	modulus := new(big.Int).Mul(p, q)
	phi := arith.Phi(p, q)

	var e *big.Int
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("public exponent selection aborted: %w", err)
		}
		e, err = g.source.IntRange(lo, hi)
		if err != nil {
			return nil, fmt.Errorf("failed to sample public exponent: %w", err)
		}
		if arith.IsCoprime(e, phi) {
			break
		}
	}

	d, err := arith.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	return &KeyMaterial{
		P:   p,
		Q:   q,
		Phi: phi,
		KeyPair: &cryptoalg.KeyPair{
			PublicExponent:  e,
			PrivateExponent: d,
			Modulus:         modulus,
		},
	}, nil
}

func (g *KeyGenerator) generatePrimes(ctx context.Context, bitLength int) (p, q *big.Int, err error) {
	if g.options.Concurrent {
		p, q, err = g.generatePrimesConcurrently(ctx, bitLength)
	} else {
		primes := g.newPrimes(g.source)
		if p, err = primes.GenerateLargePrime(ctx, bitLength); err == nil {
			q, err = primes.GenerateLargePrime(ctx, bitLength)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate primes: %w", err)
	}

	if !g.options.DistinctPrimes {
		return p, q, nil
	}

	primes := g.newPrimes(g.source)
	for p.Cmp(q) == 0 {
		if q, err = primes.GenerateLargePrime(ctx, bitLength); err != nil {
			return nil, nil, fmt.Errorf("failed to redraw colliding prime: %w", err)
		}
	}
	return p, q, nil
}

func (g *KeyGenerator) generatePrimesConcurrently(ctx context.Context, bitLength int) (*big.Int, *big.Int, error) {
	var primes [2]*big.Int

	group, groupCtx := errgroup.WithContext(ctx)
	for i := range primes {
		i := i
		generator := g.newPrimes(g.source.Derive())
		group.Go(func() error {
			prime, err := generator.GenerateLargePrime(groupCtx, bitLength)
			if err != nil {
				return err
			}
			primes[i] = prime
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return primes[0], primes[1], nil
}
