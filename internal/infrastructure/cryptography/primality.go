package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/arith"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"
)

// MillerRabinRounds is the number of independent witnesses tried per candidate.
// A composite survives all rounds with probability at most 4^-40.
const MillerRabinRounds = 40

// smallPrimeLimit bounds the trial-division table: the 168 primes below 1000.
const smallPrimeLimit = 1000

var (
	one = big.NewInt(1)
	two = big.NewInt(2)

	smallPrimes   = sieve(smallPrimeLimit)
	smallPrimeSet = toSet(smallPrimes)
)

// sieve returns all primes below limit in ascending order.
func sieve(limit int) []*big.Int {
	composite := make([]bool, limit)
	var primes []*big.Int
	for i := 2; i < limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, big.NewInt(int64(i)))
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

func toSet(primes []*big.Int) map[int64]struct{} {
	set := make(map[int64]struct{}, len(primes))
	for _, p := range primes {
		set[p.Int64()] = struct{}{}
	}
	return set
}

// PrimalityTester decides probable primality with trial division by small
// primes followed by Miller–Rabin rounds using random witnesses.
type PrimalityTester struct {
	source random.Source
	rounds int
}

// NewPrimalityTester creates a tester drawing witnesses from source.
func NewPrimalityTester(source random.Source) *PrimalityTester {
	return &PrimalityTester{
		source: source,
		rounds: MillerRabinRounds,
	}
}

// IsProbablePrime reports whether n is a probable prime.
// An error is only returned when the random source fails.
func (t *PrimalityTester) IsProbablePrime(n *big.Int) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, nil
	}

	if n.IsInt64() {
		if _, ok := smallPrimeSet[n.Int64()]; ok {
			return true, nil
		}
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		if rem.Mod(n, p).Sign() == 0 {
			return false, nil
		}
	}

	d := oddPart(n)

	for i := 0; i < t.rounds; i++ {
		passed, err := t.millerRabinRound(n, d)
		if err != nil {
			return false, fmt.Errorf("miller-rabin round %d: %w", i+1, err)
		}
		if !passed {
			return false, nil
		}
	}

	return true, nil
}

// oddPart returns d such that n-1 = d * 2^r with d odd.
// The halving is an exact shift, never a float division.
func oddPart(n *big.Int) *big.Int {
	d := new(big.Int).Sub(n, one)
	if d.Sign() == 0 {
		return d
	}
	return d.Rsh(d, d.TrailingZeroBits())
}

// millerRabinRound runs one round with a fresh witness in [2, n-2].
// n must be odd and greater than 4, which trial division guarantees.
func (t *PrimalityTester) millerRabinRound(n, d *big.Int) (bool, error) {
	nMinusOne := new(big.Int).Sub(n, one)
	nMinusTwo := new(big.Int).Sub(n, two)

	a, err := t.source.IntRange(two, nMinusTwo)
	if err != nil {
		return false, fmt.Errorf("failed to sample witness: %w", err)
	}

	x, err := arith.ModPow(a, d, n)
	if err != nil {
		return false, err
	}

	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return true, nil
	}

	exp := new(big.Int).Set(d)
	for exp.Cmp(nMinusOne) != 0 {
		x.Mul(x, x).Mod(x, n)
		exp.Lsh(exp, 1)

		if x.Cmp(one) == 0 {
			// non-trivial square root of unity
			return false, nil
		}
		if x.Cmp(nMinusOne) == 0 {
			return true, nil
		}
	}

	return false, nil
}
