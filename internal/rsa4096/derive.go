package rsa4096

import (
	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/modinverse"
)

// DeriveKeyPair builds a full key pair from two supplied primes and a
// public exponent: n = p*q, d = e^-1 mod (p-1)(q-1). The primes come from
// the caller (a fixture or an external generator); this package does not
// generate or test primality, and a composite input produces a key pair
// whose decrypt simply fails to round-trip.
//
// Fails with ZeroOperandError when e is zero or either prime is smaller
// than 2, NoInverseError when gcd(e, (p-1)(q-1)) != 1, and OverflowError
// when n would exceed the limb capacity.
func DeriveKeyPair(p, q, e bigint.BigUint) (KeyPair, error) {
	two := bigint.FromU32(2)
	if bigint.Compare(p, two) == bigint.Less {
		return KeyPair{}, apperrors.ZeroOperandError{Operand: "p"}
	}
	if bigint.Compare(q, two) == bigint.Less {
		return KeyPair{}, apperrors.ZeroOperandError{Operand: "q"}
	}
	if e.IsZero() {
		return KeyPair{}, apperrors.ZeroOperandError{Operand: "e"}
	}

	n, err := bigint.Mul(p, q)
	if err != nil {
		return KeyPair{}, err
	}

	pMinus1, err := bigint.Sub(p, bigint.FromU32(1))
	if err != nil {
		return KeyPair{}, err
	}
	qMinus1, err := bigint.Sub(q, bigint.FromU32(1))
	if err != nil {
		return KeyPair{}, err
	}
	phi, err := bigint.Mul(pMinus1, qMinus1)
	if err != nil {
		return KeyPair{}, err
	}

	d, err := modinverse.InvMod(e, phi)
	if err != nil {
		return KeyPair{}, err
	}

	pub, err := NewKey(n, e, false)
	if err != nil {
		return KeyPair{}, err
	}
	priv, err := NewKey(n, d, true)
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{Public: pub, Private: &priv}, nil
}
