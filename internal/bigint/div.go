package bigint

import "github.com/agbru/rsa4096/internal/apperrors"

// DivMod computes a = q*b + r with 0 <= r < b. Precondition b != 0;
// otherwise fails with a DivisionByZeroError. Single-limb divisors take a
// fast path dividing in one pass over the limbs of the dividend; wider
// divisors use binary long division, processing one bit of the dividend per
// step, so the cost is bounded by the dividend's bit length rather than the
// quotient's magnitude.
func DivMod(a, b BigUint) (q, r BigUint, err error) {
	if b.IsZero() {
		return Zero(), Zero(), apperrors.DivisionByZeroError{Operation: "div_mod"}
	}
	if Compare(a, b) == Less {
		return Zero(), a, nil
	}
	if b.Used == 1 {
		return divModWord(a, b.Limbs[0])
	}
	return divModBinary(a, b)
}

// Mod is a convenience wrapper returning only the remainder of DivMod.
func Mod(a, m BigUint) (BigUint, error) {
	_, r, err := DivMod(a, m)
	return r, err
}

// divModWord divides a by the single-limb divisor w in one pass from the
// most significant limb down, carrying the running remainder between limbs.
func divModWord(a BigUint, w uint32) (q, r BigUint, err error) {
	var outQ BigUint
	var rem uint64
	for i := a.Used - 1; i >= 0; i-- {
		cur := (rem << limbBits) | uint64(a.Limbs[i])
		outQ.Limbs[i] = uint32(cur / uint64(w))
		rem = cur % uint64(w)
	}
	outQ.Used = a.Used
	outQ.normalize()
	return outQ, FromU32(uint32(rem)), nil
}

// divModBinary implements binary long division: for each bit of a from
// most to least significant, the running remainder is shifted left with
// that bit shifted in, and b is subtracted out (setting the corresponding
// quotient bit) whenever the remainder has grown to at least b.
func divModBinary(a, b BigUint) (q, r BigUint, err error) {
	var rem, quo BigUint
	n := a.BitLen()
	for i := n - 1; i >= 0; i-- {
		rem = shiftLeft1SetBit(rem, a.GetBit(i))
		if Compare(rem, b) != Less {
			rem, _ = Sub(rem, b) // safe: Compare just established rem >= b
			quo.setBit(i)
		}
	}
	quo.normalize()
	rem.normalize()
	return quo, rem, nil
}

// shiftLeft1SetBit returns (x<<1)|bit. Used internally by division, where
// the transient remainder never exceeds 2*b-1 and so always fits within Cap
// for any divisor that itself fits.
func shiftLeft1SetBit(x BigUint, bit int) BigUint {
	var out BigUint
	carry := uint32(bit & 1)
	for i := 0; i < x.Used; i++ {
		v := x.Limbs[i]
		out.Limbs[i] = (v << 1) | carry
		carry = v >> (limbBits - 1)
	}
	idx := x.Used
	if carry != 0 && idx < Cap {
		out.Limbs[idx] = carry
		idx++
	}
	out.Used = idx
	out.normalize()
	return out
}
