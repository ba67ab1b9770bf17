package montgomery

import (
	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
)

// redc computes T*R^-1 mod n for a context built on n. Precondition:
// 0 <= T < n*R. The inner loop tracks a 64-bit carry that absorbs both the
// high half of each m*n.limb(j) product and the running addition overflow;
// that carry is propagated past index i+k until it is fully consumed before
// moving to the next outer iteration.
func redc(t bigint.BigUint, ctx Ctx) (bigint.BigUint, error) {
	if !ctx.Active {
		return bigint.Zero(), apperrors.InternalInvariantError{Invariant: "redc called on inactive montgomery context"}
	}
	k := ctx.K
	a := t.Limbs // array value: an independent working copy, zero-padded by construction

	for i := 0; i < k; i++ {
		m := a[i] * ctx.NPrime // single-limb multiply, implicitly mod 2^32
		var carry uint64
		for j := 0; j < k; j++ {
			prod := uint64(m)*uint64(ctx.N.Limbs[j]) + uint64(a[i+j]) + carry
			a[i+j] = uint32(prod)
			carry = prod >> 32
		}
		idx := i + k
		for carry != 0 {
			sum := uint64(a[idx]) + carry
			a[idx] = uint32(sum)
			carry = sum >> 32
			idx++
		}
	}

	var out bigint.BigUint
	for idx := k; idx < bigint.Cap; idx++ {
		out.Limbs[idx-k] = a[idx]
	}
	out.Used = bigint.Cap - k
	for out.Used > 0 && out.Limbs[out.Used-1] == 0 {
		out.Used--
	}

	if bigint.Compare(out, ctx.N) != bigint.Less {
		reduced, err := bigint.Sub(out, ctx.N)
		if err != nil {
			return bigint.Zero(), err
		}
		out = reduced
	}
	if bigint.Compare(out, ctx.N) != bigint.Less {
		return bigint.Zero(), apperrors.InternalInvariantError{Invariant: "redc postcondition A < n violated"}
	}
	return out, nil
}

// reduceIfNeeded brings an input to a form conversion into [0, n): a value
// already >= n gets an explicit mod rather than leaning on REDC's
// 0 <= T < n*R domain assumption.
func reduceIfNeeded(a bigint.BigUint, ctx Ctx) (bigint.BigUint, error) {
	if bigint.Compare(a, ctx.N) == bigint.Less {
		return a, nil
	}
	return bigint.Mod(a, ctx.N)
}

// ToForm computes a*R mod n, the Montgomery representation of a.
func ToForm(a bigint.BigUint, ctx Ctx) (bigint.BigUint, error) {
	reduced, err := reduceIfNeeded(a, ctx)
	if err != nil {
		return bigint.Zero(), err
	}
	prod, err := bigint.Mul(reduced, ctx.RSquared)
	if err != nil {
		return bigint.Zero(), err
	}
	return redc(prod, ctx)
}

// FromForm computes a*R^-1 mod n, converting out of Montgomery form.
func FromForm(a bigint.BigUint, ctx Ctx) (bigint.BigUint, error) {
	reduced, err := reduceIfNeeded(a, ctx)
	if err != nil {
		return bigint.Zero(), err
	}
	return redc(reduced, ctx)
}

// MulMod multiplies two values already in Montgomery form, returning their
// product also in Montgomery form.
func MulMod(a, b bigint.BigUint, ctx Ctx) (bigint.BigUint, error) {
	prod, err := bigint.Mul(a, b)
	if err != nil {
		return bigint.Zero(), err
	}
	return redc(prod, ctx)
}

// Expmod computes base^exp mod n using Montgomery multiplication throughout:
// the base is lifted into Montgomery form once, the exponent is scanned
// left-to-right one bit at a time squaring and conditionally multiplying,
// and the final accumulator is brought back out of Montgomery form.
func Expmod(base, exp bigint.BigUint, ctx Ctx) (bigint.BigUint, error) {
	if exp.IsZero() {
		return bigint.FromU32(1), nil
	}
	if base.IsZero() {
		return bigint.Zero(), nil
	}

	bTilde, err := ToForm(base, ctx)
	if err != nil {
		return bigint.Zero(), err
	}
	rTilde, err := ToForm(bigint.FromU32(1), ctx)
	if err != nil {
		return bigint.Zero(), err
	}

	bits := exp.BitLen()
	for i := bits - 1; i >= 0; i-- {
		if i != bits-1 {
			rTilde, err = MulMod(rTilde, rTilde, ctx)
			if err != nil {
				return bigint.Zero(), err
			}
		}
		if exp.GetBit(i) == 1 {
			rTilde, err = MulMod(rTilde, bTilde, ctx)
			if err != nil {
				return bigint.Zero(), err
			}
		}
	}

	result, err := FromForm(rTilde, ctx)
	if err != nil {
		return bigint.Zero(), err
	}
	if bigint.Compare(result, ctx.N) != bigint.Less {
		result, err = bigint.Mod(result, ctx.N)
		if err != nil {
			return bigint.Zero(), err
		}
	}
	return result, nil
}
