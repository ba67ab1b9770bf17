package montgomery

import (
	"fmt"

	"github.com/agbru/rsa4096/internal/bigint"
)

// CheckResult is one row of a self-check battery, matching the shape used
// by internal/bigint's SelfTest so the CLI can render them uniformly.
type CheckResult struct {
	Property string
	Passed   bool
	Detail   string
}

// SelfTest checks the defining Montgomery properties against ctx — the n'
// identity, the form round-trip, and the mulmod congruence — using a small
// battery of operands derived from ctx.N itself, so it is meaningful for
// any odd modulus the caller supplies.
func SelfTest(ctx Ctx) []CheckResult {
	var results []CheckResult
	results = append(results, checkNPrime(ctx))
	results = append(results, checkFormRoundTrip(ctx)...)
	results = append(results, checkMulModCongruence(ctx)...)
	return results
}

// checkNPrime verifies (n.limbs[0] * n') mod 2^32 == 2^32 - 1.
func checkNPrime(ctx Ctx) CheckResult {
	product := ctx.N.Limbs[0] * ctx.NPrime
	ok := product == 0xFFFFFFFF
	return CheckResult{Property: "montgomery_n_prime", Passed: ok, Detail: fmt.Sprintf("n0*n' mod 2^32 = %#x", product)}
}

func operandSample(ctx Ctx) []bigint.BigUint {
	candidates := []bigint.BigUint{
		bigint.FromU32(1),
		bigint.FromU32(2),
		bigint.FromU32(0xFFFF),
	}
	if !ctx.N.IsOne() {
		nMinus1, err := bigint.Sub(ctx.N, bigint.FromU32(1))
		if err == nil {
			candidates = append(candidates, nMinus1)
		}
	}
	var out []bigint.BigUint
	for _, c := range candidates {
		if bigint.Compare(c, ctx.N) == bigint.Less && !c.IsZero() {
			out = append(out, c)
		}
	}
	return out
}

// checkFormRoundTrip verifies from_form(to_form(a)) == a.
func checkFormRoundTrip(ctx Ctx) []CheckResult {
	var out []CheckResult
	for _, a := range operandSample(ctx) {
		tilde, err := ToForm(a, ctx)
		if err != nil {
			out = append(out, CheckResult{Property: "form_round_trip", Passed: false, Detail: err.Error()})
			continue
		}
		back, err := FromForm(tilde, ctx)
		ok := err == nil && bigint.Compare(back, a) == bigint.Equal
		out = append(out, CheckResult{Property: "form_round_trip", Passed: ok})
	}
	return out
}

// checkMulModCongruence verifies
// mulmod(to_form(a), to_form(b)) == to_form((a*b) mod n).
func checkMulModCongruence(ctx Ctx) []CheckResult {
	var out []CheckResult
	sample := operandSample(ctx)
	for _, a := range sample {
		for _, b := range sample {
			aTilde, err1 := ToForm(a, ctx)
			bTilde, err2 := ToForm(b, ctx)
			if err1 != nil || err2 != nil {
				continue
			}
			lhs, err := MulMod(aTilde, bTilde, ctx)
			if err != nil {
				out = append(out, CheckResult{Property: "mulmod_congruence", Passed: false, Detail: err.Error()})
				continue
			}
			prod, err := bigint.Mul(a, b)
			if err != nil {
				continue
			}
			reduced, err := bigint.Mod(prod, ctx.N)
			if err != nil {
				continue
			}
			rhs, err := ToForm(reduced, ctx)
			ok := err == nil && bigint.Compare(lhs, rhs) == bigint.Equal
			out = append(out, CheckResult{Property: "mulmod_congruence", Passed: ok})
		}
	}
	return out
}
