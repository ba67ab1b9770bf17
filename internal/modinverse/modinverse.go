// Package modinverse computes modular inverses over bigint.BigUint via the
// extended Euclidean algorithm. internal/rsa4096 uses it to derive private
// exponents; the Montgomery context does not store R^-1 mod n, since REDC
// itself does not need it.
package modinverse

import (
	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
)

// signed pairs a nonnegative magnitude with a sign, used to track the
// coefficient track of the extended Euclidean algorithm without giving
// BigUint itself a notion of negative values.
type signed struct {
	mag  bigint.BigUint
	neg  bool
}

func fromU32(v uint32) signed { return signed{mag: bigint.FromU32(v)} }

func addSigned(a, b signed) (signed, error) {
	if a.neg == b.neg {
		sum, err := bigint.Add(a.mag, b.mag)
		if err != nil {
			return signed{}, err
		}
		return signed{mag: sum, neg: a.neg && !sum.IsZero()}, nil
	}
	// Opposite signs: subtract the smaller magnitude from the larger and
	// take the sign of whichever magnitude was larger.
	switch bigint.Compare(a.mag, b.mag) {
	case bigint.Equal:
		return signed{}, nil
	case bigint.Greater:
		diff, err := bigint.Sub(a.mag, b.mag)
		if err != nil {
			return signed{}, err
		}
		return signed{mag: diff, neg: a.neg}, nil
	default:
		diff, err := bigint.Sub(b.mag, a.mag)
		if err != nil {
			return signed{}, err
		}
		return signed{mag: diff, neg: b.neg}, nil
	}
}

func mulSigned(a signed, b bigint.BigUint) (signed, error) {
	prod, err := bigint.Mul(a.mag, b)
	if err != nil {
		return signed{}, err
	}
	return signed{mag: prod, neg: a.neg && !prod.IsZero()}, nil
}

func subSigned(a, b signed) (signed, error) {
	return addSigned(a, signed{mag: b.mag, neg: !b.neg})
}

// InvMod computes a^-1 mod m for gcd(a, m) = 1 via the standard extended
// Euclidean algorithm, tracking the Bezout coefficient on a sign-tagged pair
// rather than giving BigUint a general notion of negative numbers. The loop
// terminates in O(log max(a, m)) steps; there is no iteration cap, so the
// only outcomes are a valid inverse or NoInverse.
//
// Fails with ZeroOperandError if a or m is zero, and NoInverseError if
// gcd(a, m) != 1. The result lies in [1, m).
func InvMod(a, m bigint.BigUint) (bigint.BigUint, error) {
	if a.IsZero() {
		return bigint.Zero(), apperrors.ZeroOperandError{Operand: "a"}
	}
	if m.IsZero() {
		return bigint.Zero(), apperrors.ZeroOperandError{Operand: "m"}
	}
	if m.Used == 1 && m.Limbs[0] <= 10000 {
		if v, ok := trialSearch(a, m); ok {
			return v, nil
		}
		return bigint.Zero(), apperrors.NoInverseError{}
	}

	r0, r1 := m, a
	t0, t1 := fromU32(0), fromU32(1)

	for !r1.IsZero() {
		q, r, err := bigint.DivMod(r0, r1)
		if err != nil {
			return bigint.Zero(), err
		}
		qt, err := mulSigned(t1, q)
		if err != nil {
			return bigint.Zero(), err
		}
		tNext, err := subSigned(t0, qt)
		if err != nil {
			return bigint.Zero(), err
		}
		r0, r1 = r1, r
		t0, t1 = t1, tNext
	}

	if !r0.IsOne() {
		return bigint.Zero(), apperrors.NoInverseError{}
	}

	// t0 now satisfies a*t0 ≡ gcd(a,m) = 1 (mod m); reduce into [0, m).
	result := t0.mag
	if t0.neg && !t0.mag.IsZero() {
		reducedMag, err := bigint.Mod(t0.mag, m)
		if err != nil {
			return bigint.Zero(), err
		}
		if reducedMag.IsZero() {
			result = bigint.Zero()
		} else {
			result, err = bigint.Sub(m, reducedMag)
			if err != nil {
				return bigint.Zero(), err
			}
		}
	} else {
		reduced, err := bigint.Mod(result, m)
		if err != nil {
			return bigint.Zero(), err
		}
		result = reduced
	}

	if result.IsZero() {
		return bigint.Zero(), apperrors.NoInverseError{}
	}
	return result, nil
}

// trialSearch is a fast path for single-limb moduli no larger than 10000,
// searching linearly for x in [1, m) with a*x ≡ 1 (mod m).
func trialSearch(a, m bigint.BigUint) (bigint.BigUint, bool) {
	aMod, err := bigint.Mod(a, m)
	if err != nil {
		return bigint.Zero(), false
	}
	mWord := m.Limbs[0]
	aWord := uint32(0)
	if aMod.Used > 0 {
		aWord = aMod.Limbs[0]
	}
	for x := uint32(1); x < mWord; x++ {
		if (uint64(aWord) * uint64(x)) % uint64(mWord) == 1 {
			return bigint.FromU32(x), true
		}
	}
	return bigint.Zero(), false
}
