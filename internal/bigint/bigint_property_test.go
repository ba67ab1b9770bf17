package bigint_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/codec"
)

// genValue generates a BigUint up to width bytes wide from random bytes.
func genValue(width int) gopter.Gen {
	return gen.SliceOfN(width, gen.UInt8()).Map(func(raw []uint8) bigint.BigUint {
		v, _ := codec.DecodeBytes(raw)
		return v
	})
}

// TestArithmetic_PropertyBased checks the arithmetic identities (add/sub
// inverse, division identity, shift round-trip, normalization) and
// cross-checks Mul against math/big over random operands up to 512 bits.
func TestArithmetic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(a+b)-b == a", prop.ForAll(
		func(a, b bigint.BigUint) bool {
			sum, err := bigint.Add(a, b)
			if err != nil {
				return false
			}
			back, err := bigint.Sub(sum, b)
			return err == nil && bigint.Compare(back, a) == bigint.Equal
		},
		genValue(64), genValue(64),
	))

	properties.Property("a*b matches math/big", prop.ForAll(
		func(a, b bigint.BigUint) bool {
			prod, err := bigint.Mul(a, b)
			if err != nil {
				return false
			}
			want := new(big.Int).Mul(toBig(a), toBig(b))
			return toBig(prod).Cmp(want) == 0
		},
		genValue(64), genValue(64),
	))

	properties.Property("a == q*b + r and r < b", prop.ForAll(
		func(a, b bigint.BigUint) bool {
			if b.IsZero() {
				return true // division by zero is covered by unit tests
			}
			q, r, err := bigint.DivMod(a, b)
			if err != nil {
				return false
			}
			prod, err := bigint.Mul(q, b)
			if err != nil {
				return false
			}
			sum, err := bigint.Add(prod, r)
			if err != nil {
				return false
			}
			return bigint.Compare(sum, a) == bigint.Equal &&
				bigint.Compare(r, b) == bigint.Less
		},
		genValue(64), genValue(24),
	))

	properties.Property("shift round-trip", prop.ForAll(
		func(a bigint.BigUint, k uint8) bool {
			bits := int(k % 200)
			shifted, err := bigint.ShiftLeft(a, bits)
			if err != nil {
				return false
			}
			back := bigint.ShiftRight(shifted, bits)
			return bigint.Compare(back, a) == bigint.Equal
		},
		genValue(64), gen.UInt8(),
	))

	properties.Property("results stay normalized", prop.ForAll(
		func(a, b bigint.BigUint) bool {
			sum, err := bigint.Add(a, b)
			if err != nil || sum.InvariantCheck() != nil {
				return false
			}
			prod, err := bigint.Mul(a, b)
			if err != nil || prod.InvariantCheck() != nil {
				return false
			}
			if b.IsZero() {
				return true
			}
			q, r, err := bigint.DivMod(a, b)
			return err == nil && q.InvariantCheck() == nil && r.InvariantCheck() == nil
		},
		genValue(48), genValue(48),
	))

	properties.TestingRun(t)
}
