package bigint

import "fmt"

// CheckResult is one row of a self-check battery: a named property, whether
// it held, and a short human-readable detail for the failing (or
// interesting) case.
type CheckResult struct {
	Property string
	Passed   bool
	Detail   string
}

// SelfTest runs the arithmetic identities that hold for every BigUint —
// normalization, the division identity, add/sub inversion, and the shift
// round-trip — against a battery of literal and derived operands. It
// performs no I/O; its caller (the CLI's verify subcommand) is responsible
// for presenting the results.
func SelfTest() []CheckResult {
	var results []CheckResult
	results = append(results, checkNormalization()...)
	results = append(results, checkDivisionIdentity()...)
	results = append(results, checkAddSubInverse()...)
	results = append(results, checkShiftIdentity()...)
	return results
}

func sample() []BigUint {
	vals := []BigUint{
		Zero(),
		FromU32(1),
		FromU32(2),
		FromU64(0xFFFFFFFF),
		FromU64(0x1_0000_0000),
	}
	big1 := FromU32(0xFFFFFFFF)
	for i := 0; i < 4; i++ {
		big1, _ = Mul(big1, FromU32(0xFFFFFFFF))
	}
	vals = append(vals, big1)
	return vals
}

func checkNormalization() []CheckResult {
	var out []CheckResult
	for _, v := range sample() {
		err := v.InvariantCheck()
		out = append(out, CheckResult{
			Property: "normalization",
			Passed:   err == nil,
			Detail:   fmt.Sprintf("used=%d", v.Used),
		})
	}
	return out
}

func checkDivisionIdentity() []CheckResult {
	var out []CheckResult
	vals := sample()
	for _, a := range vals {
		for _, b := range vals {
			if b.IsZero() {
				continue
			}
			q, r, err := DivMod(a, b)
			if err != nil {
				out = append(out, CheckResult{Property: "division_identity", Passed: false, Detail: err.Error()})
				continue
			}
			prod, err := Mul(q, b)
			if err != nil {
				out = append(out, CheckResult{Property: "division_identity", Passed: false, Detail: err.Error()})
				continue
			}
			sum, err := Add(prod, r)
			ok := err == nil && Compare(sum, a) == Equal && Compare(r, b) == Less
			out = append(out, CheckResult{Property: "division_identity", Passed: ok})
		}
	}
	return out
}

func checkAddSubInverse() []CheckResult {
	var out []CheckResult
	vals := sample()
	for _, a := range vals {
		for _, b := range vals {
			sum, err := Add(a, b)
			if err != nil {
				continue // overflow is out of scope for this property
			}
			back, err := Sub(sum, b)
			ok := err == nil && Compare(back, a) == Equal
			out = append(out, CheckResult{Property: "add_sub_inverse", Passed: ok})
		}
	}
	return out
}

func checkShiftIdentity() []CheckResult {
	var out []CheckResult
	for _, a := range sample() {
		for _, k := range []int{0, 1, 7, 32, 33, 64, 100} {
			shifted, err := ShiftLeft(a, k)
			if err != nil {
				continue // overflow is out of scope for this property
			}
			back := ShiftRight(shifted, k)
			ok := Compare(back, a) == Equal
			out = append(out, CheckResult{Property: "shift_identity", Passed: ok})
		}
	}
	return out
}
