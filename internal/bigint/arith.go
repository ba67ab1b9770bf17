package bigint

import "github.com/agbru/rsa4096/internal/apperrors"

// Add returns a+b. Fails with an OverflowError if the carry out of the top
// limb would require limb Cap.
func Add(a, b BigUint) (BigUint, error) {
	var out BigUint
	n := a.Used
	if b.Used > n {
		n = b.Used
	}
	var carry uint64
	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < a.Used {
			av = a.Limbs[i]
		}
		if i < b.Used {
			bv = b.Limbs[i]
		}
		sum := uint64(av) + uint64(bv) + carry
		out.Limbs[i] = uint32(sum)
		carry = sum >> limbBits
	}
	if carry != 0 {
		if n >= Cap {
			return Zero(), apperrors.OverflowError{Operation: "add", NeededLimbs: n + 1, CapacityCap: Cap}
		}
		out.Limbs[n] = uint32(carry)
		n++
	}
	out.Used = n
	out.normalize()
	return out, nil
}

// Sub returns a-b. Precondition a >= b; otherwise fails with an
// UnderflowError. Subtraction of equal values yields zero.
func Sub(a, b BigUint) (BigUint, error) {
	if Compare(a, b) == Less {
		return Zero(), apperrors.UnderflowError{Operation: "sub"}
	}
	var out BigUint
	var borrow uint64
	for i := 0; i < a.Used; i++ {
		var bv uint32
		if i < b.Used {
			bv = b.Limbs[i]
		}
		diff := uint64(a.Limbs[i]) - uint64(bv) - borrow
		out.Limbs[i] = uint32(diff)
		borrow = (diff >> 63) & 1
	}
	out.Used = a.Used
	out.normalize()
	return out, nil
}

// Mul returns a*b via schoolbook O(used(a)*used(b)) long multiplication.
// Fails with an OverflowError when used(a)+used(b) > Cap.
func Mul(a, b BigUint) (BigUint, error) {
	if a.IsZero() || b.IsZero() {
		return Zero(), nil
	}
	if a.Used+b.Used > Cap {
		return Zero(), apperrors.OverflowError{Operation: "mul", NeededLimbs: a.Used + b.Used, CapacityCap: Cap}
	}
	var out BigUint
	for i := 0; i < a.Used; i++ {
		if a.Limbs[i] == 0 {
			continue
		}
		var carry uint64
		ai := uint64(a.Limbs[i])
		for j := 0; j < b.Used; j++ {
			prod := ai*uint64(b.Limbs[j]) + uint64(out.Limbs[i+j]) + carry
			out.Limbs[i+j] = uint32(prod)
			carry = prod >> limbBits
		}
		k := i + b.Used
		for carry != 0 {
			sum := uint64(out.Limbs[k]) + carry
			out.Limbs[k] = uint32(sum)
			carry = sum >> limbBits
			k++
		}
	}
	out.Used = a.Used + b.Used
	out.normalize()
	return out, nil
}

// MulAddWord computes a*w + c in a single limb-scan, where c is a carry-in
// word. Fails with an OverflowError if the result would need more than Cap
// limbs.
func MulAddWord(a BigUint, w uint32, c uint32) (BigUint, error) {
	var out BigUint
	carry := uint64(c)
	n := a.Used
	for i := 0; i < n; i++ {
		prod := uint64(a.Limbs[i])*uint64(w) + carry
		out.Limbs[i] = uint32(prod)
		carry = prod >> limbBits
	}
	if carry != 0 {
		if n >= Cap {
			return Zero(), apperrors.OverflowError{Operation: "mul_add_word", NeededLimbs: n + 1, CapacityCap: Cap}
		}
		out.Limbs[n] = uint32(carry)
		n++
	}
	out.Used = n
	out.normalize()
	return out, nil
}

// AddWord computes a+w for a single-limb addend w.
func AddWord(a BigUint, w uint32) (BigUint, error) {
	return Add(a, FromU32(w))
}
