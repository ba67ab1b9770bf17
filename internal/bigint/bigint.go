// Package bigint implements fixed-capacity, nonnegative multi-precision
// integers over base-2^32 limbs. Every BigUint owns its backing array; there
// is no dynamic allocation and no sharing between results, so a value can be
// copied freely by assignment.
package bigint

import "github.com/agbru/rsa4096/internal/apperrors"

// Cap is the maximum number of limbs a BigUint may hold: 512 limbs of 32
// bits each, 16,384 bits. This comfortably holds 2*k+1 limbs plus one guard
// limb for any modulus up to 4096 bits (k <= 128), which is what the
// Montgomery working buffer in internal/montgomery needs.
const Cap = 512

// limbBits is the width of one limb.
const limbBits = 32

// BigUint is a nonnegative integer represented as a little-endian sequence
// of base-2^32 limbs. Used gives the count of significant limbs; all limbs
// at index >= Used are zero. A BigUint returned from any operation in this
// package is always normalized: Used == 0 iff the value is zero, and
// Limbs[Used-1] != 0 otherwise.
type BigUint struct {
	Limbs [Cap]uint32
	Used  int
}

// Zero returns the additive identity.
func Zero() BigUint {
	return BigUint{}
}

// FromU32 returns the BigUint representing v.
func FromU32(v uint32) BigUint {
	if v == 0 {
		return Zero()
	}
	var b BigUint
	b.Limbs[0] = v
	b.Used = 1
	return b
}

// FromU64 returns the BigUint representing v, spanning two limbs if needed.
func FromU64(v uint64) BigUint {
	var b BigUint
	b.Limbs[0] = uint32(v)
	b.Limbs[1] = uint32(v >> limbBits)
	b.Used = 2
	b.normalize()
	return b
}

// Clone returns an independent copy of b. Because Limbs is a fixed array,
// ordinary assignment already performs a full-limb copy; Clone exists to
// name that operation at call sites for readability.
func (b BigUint) Clone() BigUint { return b }

// normalize lowers Used to the true count of significant limbs. It must be
// called after any routine that writes limbs directly, before the value is
// returned to a caller.
func (b *BigUint) normalize() {
	u := b.Used
	if u > Cap {
		u = Cap
	}
	for u > 0 && b.Limbs[u-1] == 0 {
		u--
	}
	b.Used = u
}

// IsZero reports whether b represents zero.
func (b BigUint) IsZero() bool { return b.Used == 0 }

// IsOne reports whether b represents one.
func (b BigUint) IsOne() bool { return b.Used == 1 && b.Limbs[0] == 1 }

// Ordering is the result of Compare.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare orders a and b lexicographically by limb value starting from the
// most significant limb, which (for normalized values) is equivalent to
// numeric order.
func Compare(a, b BigUint) Ordering {
	if a.Used != b.Used {
		if a.Used < b.Used {
			return Less
		}
		return Greater
	}
	for i := a.Used - 1; i >= 0; i-- {
		if a.Limbs[i] != b.Limbs[i] {
			if a.Limbs[i] < b.Limbs[i] {
				return Less
			}
			return Greater
		}
	}
	return Equal
}

// BitLen returns the position of the highest set bit plus one; zero for the
// value zero.
func (b BigUint) BitLen() int {
	if b.Used == 0 {
		return 0
	}
	top := b.Limbs[b.Used-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (b.Used-1)*limbBits + bits
}

// GetBit returns the value (0 or 1) of bit i, where bit 0 is the least
// significant. Returns 0 for i >= 32*Cap, matching the fixed-capacity
// representation's implicit infinite run of zero bits above the top limb.
func (b BigUint) GetBit(i int) int {
	if i < 0 || i >= limbBits*Cap {
		return 0
	}
	limb := i / limbBits
	if limb >= b.Used {
		return 0
	}
	return int((b.Limbs[limb] >> uint(i%limbBits)) & 1)
}

// setBit sets bit i of b to 1 in place. Caller is responsible for keeping i
// within Cap*limbBits and for calling normalize/updating Used afterward.
func (b *BigUint) setBit(i int) {
	limb := i / limbBits
	b.Limbs[limb] |= 1 << uint(i%limbBits)
	if limb+1 > b.Used {
		b.Used = limb + 1
	}
}

// InvariantCheck re-validates the normalization invariant of b, returning an
// InternalInvariantError if it is broken. Used by the self-check battery and
// defensively by tests; never called on the correctness path of any
// arithmetic operation.
func (b BigUint) InvariantCheck() error {
	if b.Used > Cap || b.Used < 0 {
		return apperrors.InternalInvariantError{Invariant: "used out of range"}
	}
	if b.Used > 0 && b.Limbs[b.Used-1] == 0 {
		return apperrors.InternalInvariantError{Invariant: "top limb is zero but used > 0"}
	}
	for i := b.Used; i < Cap; i++ {
		if b.Limbs[i] != 0 {
			return apperrors.InternalInvariantError{Invariant: "nonzero limb beyond used"}
		}
	}
	return nil
}
