//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSource always fails, to exercise error propagation.
type failingSource struct{}

var errSourceExhausted = errors.New("source exhausted")

func (failingSource) IntRange(_, _ *big.Int) (*big.Int, error) {
	return nil, errSourceExhausted
}

func (s failingSource) Derive() random.Source {
	return s
}

func newTestTester(seed int64) *PrimalityTester {
	return NewPrimalityTester(random.NewSeededSource(seed))
}

func TestSmallPrimeTable(t *testing.T) {
	require.Len(t, smallPrimes, 168)
	assert.Equal(t, int64(2), smallPrimes[0].Int64())
	assert.Equal(t, int64(997), smallPrimes[len(smallPrimes)-1].Int64())
}

func TestIsProbablePrime_SmallPrimes(t *testing.T) {
	tester := newTestTester(1)

	for _, p := range smallPrimes {
		isPrime, err := tester.IsProbablePrime(p)
		require.NoError(t, err)
		assert.True(t, isPrime, "%s is prime", p)
	}
}

func TestIsProbablePrime_Composites(t *testing.T) {
	tester := newTestTester(1)

	// 341 = 11 * 31 is a Fermat pseudoprime to base 2
	for _, n := range []int64{4, 6, 8, 9, 10, 15, 341, 561, 1022117, 1009 * 1009} {
		isPrime, err := tester.IsProbablePrime(big.NewInt(n))
		require.NoError(t, err)
		assert.False(t, isPrime, "%d is composite", n)
	}
}

func TestIsProbablePrime_BelowTwo(t *testing.T) {
	tester := newTestTester(1)

	for _, n := range []int64{-7, -1, 0, 1} {
		isPrime, err := tester.IsProbablePrime(big.NewInt(n))
		require.NoError(t, err)
		assert.False(t, isPrime)
	}
}

func TestIsProbablePrime_BeyondTable(t *testing.T) {
	tester := newTestTester(2)

	for _, n := range []int64{1009, 1013, 7919, 104729, 2147483647} {
		isPrime, err := tester.IsProbablePrime(big.NewInt(n))
		require.NoError(t, err)
		assert.True(t, isPrime, "%d is prime", n)
	}
}

func TestIsProbablePrime_LargeValues(t *testing.T) {
	tester := newTestTester(3)

	mersenne127 := new(big.Int).Sub(new(big.Int).Lsh(one, 127), one)
	isPrime, err := tester.IsProbablePrime(mersenne127)
	require.NoError(t, err)
	assert.True(t, isPrime, "2^127-1 is prime")

	mersenne61 := new(big.Int).Sub(new(big.Int).Lsh(one, 61), one)
	mersenne89 := new(big.Int).Sub(new(big.Int).Lsh(one, 89), one)
	product := new(big.Int).Mul(mersenne61, mersenne89)
	isPrime, err = tester.IsProbablePrime(product)
	require.NoError(t, err)
	assert.False(t, isPrime, "product of two large primes is composite")

	// F7 = 2^128 + 1 is composite with no factor below 1000
	fermat7 := new(big.Int).Add(new(big.Int).Lsh(one, 128), one)
	isPrime, err = tester.IsProbablePrime(fermat7)
	require.NoError(t, err)
	assert.False(t, isPrime)
}

func TestIsProbablePrime_AgreesWithStandardLibrary(t *testing.T) {
	tester := newTestTester(4)
	source := random.NewSeededSource(5)

	lo := new(big.Int).Lsh(one, 63)
	hi := new(big.Int).Lsh(one, 64)
	for i := 0; i < 300; i++ {
		n, err := source.IntRange(lo, hi)
		require.NoError(t, err)

		isPrime, err := tester.IsProbablePrime(n)
		require.NoError(t, err)
		assert.Equal(t, n.ProbablyPrime(20), isPrime, "disagreement on %s", n)
	}
}

func TestIsProbablePrime_SourceFailure(t *testing.T) {
	tester := NewPrimalityTester(failingSource{})

	// table lookups need no witness
	isPrime, err := tester.IsProbablePrime(big.NewInt(997))
	require.NoError(t, err)
	assert.True(t, isPrime)

	_, err = tester.IsProbablePrime(big.NewInt(1009))
	assert.ErrorIs(t, err, errSourceExhausted)
}

func TestOddPart(t *testing.T) {
	tests := []struct {
		name     string
		n        *big.Int
		expected *big.Int
	}{
		{"small", big.NewInt(97), big.NewInt(3)},
		{"already odd minus one", big.NewInt(4), big.NewInt(3)},
		{"power of two plus one", new(big.Int).Add(new(big.Int).Lsh(one, 64), one), big.NewInt(1)},
		{
			// 3*2^100 + 1 loses its low bits in float64
			"beyond float precision",
			new(big.Int).Add(new(big.Int).Lsh(big.NewInt(3), 100), one),
			big.NewInt(3),
		},
		{
			"large odd part",
			new(big.Int).Add(new(big.Int).Lsh(new(big.Int).Sub(new(big.Int).Lsh(one, 89), one), 7), one),
			new(big.Int).Sub(new(big.Int).Lsh(one, 89), one),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected.String(), oddPart(tt.n).String())
		})
	}
}
