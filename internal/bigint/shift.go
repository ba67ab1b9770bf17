package bigint

import "github.com/agbru/rsa4096/internal/apperrors"

// ShiftLeft returns a << bits. Fails with an OverflowError if the result
// would need more than Cap limbs. A shift by zero returns a copy.
func ShiftLeft(a BigUint, bits int) (BigUint, error) {
	if bits == 0 || a.IsZero() {
		return a, nil
	}
	if bits < 0 {
		return Zero(), apperrors.InternalInvariantError{Invariant: "shift_left: negative bit count"}
	}
	needed := a.BitLen() + bits
	if (needed+limbBits-1)/limbBits > Cap {
		return Zero(), apperrors.OverflowError{Operation: "shift_left", NeededLimbs: (needed + limbBits - 1) / limbBits, CapacityCap: Cap}
	}

	limbShift := bits / limbBits
	bitShift := uint(bits % limbBits)

	var out BigUint
	if bitShift == 0 {
		for i := a.Used - 1; i >= 0; i-- {
			out.Limbs[i+limbShift] = a.Limbs[i]
		}
	} else {
		var carry uint32
		for i := 0; i < a.Used; i++ {
			v := a.Limbs[i]
			out.Limbs[i+limbShift] = (v << bitShift) | carry
			carry = v >> (limbBits - bitShift)
		}
		if carry != 0 {
			out.Limbs[a.Used+limbShift] = carry
		}
	}
	out.Used = a.Used + limbShift + 1
	out.normalize()
	return out, nil
}

// ShiftRight returns a >> bits. Never fails; returns zero when bits is at
// least the bit length of a.
func ShiftRight(a BigUint, bits int) BigUint {
	if bits <= 0 || a.IsZero() {
		if bits <= 0 {
			return a
		}
		return Zero()
	}
	if bits >= a.BitLen() {
		return Zero()
	}

	limbShift := bits / limbBits
	bitShift := uint(bits % limbBits)

	var out BigUint
	if bitShift == 0 {
		for i := limbShift; i < a.Used; i++ {
			out.Limbs[i-limbShift] = a.Limbs[i]
		}
	} else {
		for i := limbShift; i < a.Used; i++ {
			v := a.Limbs[i] >> bitShift
			if i+1 < a.Used {
				v |= a.Limbs[i+1] << (limbBits - bitShift)
			}
			out.Limbs[i-limbShift] = v
		}
	}
	out.Used = a.Used - limbShift
	out.normalize()
	return out
}
