// Package rsa4096 wraps the bigint/montgomery/modexp core behind a textbook
// RSA key pair: calling modexp on BigUint operands, and handling the
// zero-input short-circuit and domain checks the core itself does not
// perform. Decoding decimal/hex/byte input is left to internal/codec.
package rsa4096

import (
	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/modexp"
	"github.com/agbru/rsa4096/internal/montgomery"
)

// Key holds one side (public or private) of an RSA key pair: the modulus n
// and an exponent (e for encryption, d for decryption). The distinction
// between public and private is informational; the arithmetic performed by
// Encrypt/Decrypt is identical. Mont is populated whenever n is odd and
// Montgomery context setup succeeds; when it is nil, ExpSelect falls back
// to Schoolbook for every call on this key.
type Key struct {
	N         bigint.BigUint
	Exp       bigint.BigUint
	IsPrivate bool
	Mont      *montgomery.Ctx
}

// NewKey builds a Key from its modulus and exponent, attempting Montgomery
// context setup when the modulus is odd. A failed or skipped setup is not
// an error: the key remains usable via Schoolbook.
func NewKey(n, exp bigint.BigUint, isPrivate bool) (Key, error) {
	if n.IsZero() {
		return Key{}, apperrors.ZeroModulusError{}
	}
	if exp.IsZero() {
		return Key{}, apperrors.ZeroOperandError{Operand: "exp"}
	}
	key := Key{N: n, Exp: exp, IsPrivate: isPrivate}
	if n.Limbs[0]&1 == 1 {
		ctx, err := montgomery.Build(n)
		if err == nil {
			key.Mont = &ctx
		}
	}
	return key, nil
}

// KeyPair bundles the public and (optionally) private halves of one RSA
// key, as produced by DeriveKeyPair from caller-supplied primes; this
// package never generates primes itself.
type KeyPair struct {
	Public  Key
	Private *Key
}

// modExp runs base^exp mod key.N through the §4.F selector, wiring obs (if
// non-nil) as the selector's observability hook.
func modExp(base bigint.BigUint, key Key, obs modexp.Observer) (bigint.BigUint, error) {
	return modexp.ExpSelect(base, key.Exp, key.N, key.Mont, obs)
}
