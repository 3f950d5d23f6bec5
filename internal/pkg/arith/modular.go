package arith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when a modulus is zero or negative.
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNoInverseExists is returned when a value has no multiplicative inverse modulo m.
	ErrNoInverseExists = errors.New("no modular inverse exists")
)

var one = big.NewInt(1)

// ModPow returns base^exponent mod modulus in [0, modulus).
// A negative exponent raises the inverse of base, which must exist.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("modpow with modulus %s: %w", modulus, ErrInvalidModulus)
	}

	result := new(big.Int).Exp(base, exponent, modulus)
	if result == nil {
		return nil, fmt.Errorf("modpow of %s with negative exponent: %w", base, ErrNoInverseExists)
	}
	return result, nil
}

// GCD returns the greatest common divisor of |a| and |b| using the iterative
// Euclidean algorithm. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// IsCoprime reports whether gcd(a, b) is 1.
func IsCoprime(a, b *big.Int) bool {
	return GCD(a, b).Cmp(one) == 0
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x and y
// such that a*x + b*y = g. The returned g is never negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	quotient := new(big.Int)
	remainder := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		quotient.QuoRem(oldR, r, remainder)

		oldR, r = r, new(big.Int).Set(remainder)

		tmp.Mul(quotient, s)
		oldS, s = s, new(big.Int).Sub(oldS, tmp)

		tmp.Mul(quotient, t)
		oldT, t = t, new(big.Int).Sub(oldT, tmp)
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("inverse modulo %s: %w", m, ErrInvalidModulus)
	}

	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("inverse of %s modulo %s (gcd %s): %w", a, m, g, ErrNoInverseExists)
	}

	if x.Sign() < 0 {
		x.Add(x, m)
	}
	// |x| may exceed m when a is not reduced
	if x.Sign() < 0 || x.Cmp(m) >= 0 {
		x.Mod(x, m)
	}
	return x, nil
}

// Phi returns Euler's totient (p-1)(q-1) of the product of two primes.
func Phi(p, q *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	return pm1.Mul(pm1, qm1)
}
