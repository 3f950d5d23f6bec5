// Package random provides the uniform random-integer capability consumed by the
// prime and key generators. Sources are explicit values instead of process-wide
// state so callers can seed them deterministically.
package random
