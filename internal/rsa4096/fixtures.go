package rsa4096

import (
	"github.com/agbru/rsa4096/internal/bigint"
)

// DefaultPublicExponent is the conventional RSA public exponent F4 = 65537.
const DefaultPublicExponent = 65537

// Fixture key pairs built from Mersenne primes. Mersenne primes make
// self-contained fixtures possible: 2^p - 1 is constructed exactly with a
// shift and a subtraction, primality is established literature rather than
// runtime testing, and gcd(65537, phi) = 1 holds because 65537 divides
// 2^j - 1 only when 32 divides j, which none of the exponents below (or
// their predecessors) satisfy.

// mersenne returns 2^exp - 1.
func mersenne(exp int) (bigint.BigUint, error) {
	shifted, err := bigint.ShiftLeft(bigint.FromU32(1), exp)
	if err != nil {
		return bigint.Zero(), err
	}
	return bigint.Sub(shifted, bigint.FromU32(1))
}

// FixtureCompact derives a key pair over n = (2^521-1)(2^607-1), an
// 1128-bit modulus. Small enough that a full encrypt/decrypt round-trip is
// fast, wide enough to exercise multi-limb Montgomery reduction.
func FixtureCompact() (KeyPair, error) {
	return fixtureFromExponents(521, 607)
}

// FixtureReal4096 derives a key pair over n = (2^2203-1)(2^2281-1), a
// 4484-bit modulus in the capacity class the library is sized for. The
// private exponent spans the full modulus width, so a decrypt walks the
// complete Montgomery square-and-multiply ladder.
func FixtureReal4096() (KeyPair, error) {
	return fixtureFromExponents(2203, 2281)
}

func fixtureFromExponents(pExp, qExp int) (KeyPair, error) {
	p, err := mersenne(pExp)
	if err != nil {
		return KeyPair{}, err
	}
	q, err := mersenne(qExp)
	if err != nil {
		return KeyPair{}, err
	}
	return DeriveKeyPair(p, q, bigint.FromU32(DefaultPublicExponent))
}
