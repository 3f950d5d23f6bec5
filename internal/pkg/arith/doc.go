// Package arith provides the modular arithmetic used by the textbook RSA core:
// greatest common divisors, Bézout coefficients, modular inverses and modular
// exponentiation over arbitrary-precision integers.
package arith
