// Package montgomery implements Montgomery REDC reduction: a one-time
// context built from an odd modulus n, and the reduction/form-conversion
// operations that turn modular exponentiation into a sequence of
// multiplications free of trial division.
package montgomery

import (
	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
)

// Ctx holds the parameters precomputed for one odd modulus N. It is built
// once at key-load time, immutable thereafter, and may be shared freely
// across goroutines as read-only data. A Ctx with Active == false must not
// be used by redc/mulmod/expmod; callers should fall back to schoolbook
// exponentiation instead (see internal/modexp.ExpSelect).
type Ctx struct {
	N        bigint.BigUint
	K        int    // limb count of N
	NPrime   uint32 // (-N^-1) mod 2^32
	RSquared bigint.BigUint
	Active   bool
}

// Build constructs a Montgomery context for modulus n. Fails with
// EvenModulusError if n is even and ZeroModulusError if n is zero.
func Build(n bigint.BigUint) (Ctx, error) {
	if n.IsZero() {
		return Ctx{}, apperrors.ZeroModulusError{}
	}
	if n.Limbs[0]&1 == 0 {
		return Ctx{}, apperrors.EvenModulusError{}
	}

	k := n.Used
	nPrime, err := computeNPrime(n.Limbs[0])
	if err != nil {
		return Ctx{}, err
	}

	rSquared, err := computeRSquared(n, k)
	if err != nil {
		return Ctx{}, err
	}

	return Ctx{N: n, K: k, NPrime: nPrime, RSquared: rSquared, Active: true}, nil
}

// computeNPrime derives n' = (-n0^-1) mod 2^32 from the low limb n0 of an
// odd modulus, via five rounds of Hensel lifting: x <- x*(2 - n0*x) mod
// 2^32, which doubles the number of correct bits each round and so
// converges for any odd 32-bit value well within five iterations.
func computeNPrime(n0 uint32) (uint32, error) {
	x := n0
	for i := 0; i < 5; i++ {
		x = x * (2 - n0*x)
	}
	if n0*x != 1 {
		return 0, apperrors.InternalInvariantError{Invariant: "hensel lift did not converge to n0*x == 1 mod 2^32"}
	}
	nPrime := ^x + 1 // n' = -x mod 2^32, i.e. (-n^-1) mod 2^32
	if n0*nPrime != 0xFFFFFFFF {
		return 0, apperrors.InternalInvariantError{Invariant: "n0*n' != 2^32-1"}
	}
	return nPrime, nil
}

// computeRSquared computes R^2 mod n where R = 2^(32*k), as ((R mod n))^2
// mod n: first reduce R modulo n by a single shift-and-mod, then square and
// reduce again.
func computeRSquared(n bigint.BigUint, k int) (bigint.BigUint, error) {
	rModN, err := bigint.ShiftLeft(bigint.FromU32(1), 32*k)
	if err != nil {
		return bigint.Zero(), err
	}
	rModN, err = bigint.Mod(rModN, n)
	if err != nil {
		return bigint.Zero(), err
	}
	sq, err := bigint.Mul(rModN, rModN)
	if err != nil {
		return bigint.Zero(), err
	}
	rSquared, err := bigint.Mod(sq, n)
	if err != nil {
		return bigint.Zero(), err
	}
	if bigint.Compare(rSquared, n) != bigint.Less {
		return bigint.Zero(), apperrors.InternalInvariantError{Invariant: "r_squared >= n"}
	}
	return rSquared, nil
}
