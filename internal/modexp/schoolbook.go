// Package modexp computes base^exp mod m using only bigint.BigUint
// operations (schoolbook exponentiation), and selects between that and
// Montgomery exponentiation per call via Selector.
package modexp

import "github.com/agbru/rsa4096/internal/bigint"

// smallExponentLimbs is the used(exp) cutoff (in limbs, so <= 640 bits)
// below which Schoolbook uses the simpler right-to-left binary method
// instead of the 4-bit sliding window.
const smallExponentLimbs = 20

// windowBits is the width of the sliding window used for large exponents.
const windowBits = 4

// Schoolbook computes base^exp mod m using only BigUint operations.
// Precondition: m != 0. Edge cases: exp=0 returns 1; base=0 with exp>0
// returns 0; m=1 returns 0. Every intermediate is reduced modulo m
// immediately after the multiplication that produced it.
func Schoolbook(base, exp, m bigint.BigUint) (bigint.BigUint, error) {
	if exp.IsZero() {
		return bigint.FromU32(1), nil
	}
	if base.IsZero() {
		return bigint.Zero(), nil
	}
	if m.IsOne() {
		return bigint.Zero(), nil
	}

	baseMod, err := bigint.Mod(base, m)
	if err != nil {
		return bigint.Zero(), err
	}

	if exp.Used <= smallExponentLimbs {
		return schoolbookBinary(baseMod, exp, m)
	}
	return schoolbookSlidingWindow(baseMod, exp, m)
}

// schoolbookBinary implements right-to-left binary exponentiation, suited
// to exponents of at most smallExponentLimbs limbs (640 bits).
func schoolbookBinary(base, exp, m bigint.BigUint) (bigint.BigUint, error) {
	result := bigint.FromU32(1)
	b := base
	e := exp
	for !e.IsZero() {
		if e.GetBit(0) == 1 {
			prod, err := bigint.Mul(result, b)
			if err != nil {
				return bigint.Zero(), err
			}
			result, err = bigint.Mod(prod, m)
			if err != nil {
				return bigint.Zero(), err
			}
		}
		e = bigint.ShiftRight(e, 1)
		if !e.IsZero() {
			sq, err := bigint.Mul(b, b)
			if err != nil {
				return bigint.Zero(), err
			}
			b, err = bigint.Mod(sq, m)
			if err != nil {
				return bigint.Zero(), err
			}
		}
	}
	return result, nil
}

// schoolbookSlidingWindow implements left-to-right 4-bit sliding-window
// exponentiation: a table of the 16 smallest powers of base is precomputed,
// then exp is processed window-by-window from the most significant end,
// skipping leading all-zero windows.
func schoolbookSlidingWindow(base, exp, m bigint.BigUint) (bigint.BigUint, error) {
	table := make([]bigint.BigUint, 1<<windowBits)
	table[0] = bigint.FromU32(1)
	table[1] = base
	for i := 2; i < len(table); i++ {
		prod, err := bigint.Mul(table[i-1], base)
		if err != nil {
			return bigint.Zero(), err
		}
		table[i], err = bigint.Mod(prod, m)
		if err != nil {
			return bigint.Zero(), err
		}
	}

	bits := exp.BitLen()
	numWindows := (bits + windowBits - 1) / windowBits

	var result bigint.BigUint
	started := false

	for w := numWindows - 1; w >= 0; w-- {
		windowVal := 0
		for b := windowBits - 1; b >= 0; b-- {
			bitIndex := w*windowBits + b
			if bitIndex < bits {
				windowVal = windowVal<<1 | exp.GetBit(bitIndex)
			} else {
				windowVal <<= 1
			}
		}

		if !started {
			if windowVal == 0 {
				continue
			}
			result = table[windowVal]
			started = true
			continue
		}

		for b := 0; b < windowBits; b++ {
			sq, err := bigint.Mul(result, result)
			if err != nil {
				return bigint.Zero(), err
			}
			result, err = bigint.Mod(sq, m)
			if err != nil {
				return bigint.Zero(), err
			}
		}
		if windowVal > 0 {
			prod, err := bigint.Mul(result, table[windowVal])
			if err != nil {
				return bigint.Zero(), err
			}
			result, err = bigint.Mod(prod, m)
			if err != nil {
				return bigint.Zero(), err
			}
		}
	}

	if !started {
		return bigint.FromU32(1), nil
	}
	return result, nil
}
