package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/modexp"
	"github.com/agbru/rsa4096/internal/orchestration"
	"github.com/agbru/rsa4096/internal/rsa4096"
)

// runAlgorithms sweeps a mixed battery of exponentiation cases across every
// engine, including both reference oracles, and verifies side-by-side
// agreement. Where benchmark asks "how fast", algorithms asks "identical
// on everything, including the awkward inputs".
func (a *Application) runAlgorithms(ctx context.Context, out io.Writer) int {
	pair, err := rsa4096.FixtureCompact()
	if err != nil {
		return a.fail(err)
	}
	nMinus1, err := bigint.Sub(pair.Public.N, bigint.FromU32(1))
	if err != nil {
		return a.fail(err)
	}

	cases := []orchestration.Case{
		{Label: "exp-zero", Base: bigint.FromU32(7), Exp: bigint.Zero(), N: bigint.FromU32(143)},
		{Label: "base-zero", Base: bigint.Zero(), Exp: bigint.FromU32(9), N: bigint.FromU32(143)},
		{Label: "modulus-one", Base: bigint.FromU32(7), Exp: bigint.FromU32(9), N: bigint.FromU32(1)},
		{Label: "tiny", Base: bigint.FromU32(2), Exp: bigint.FromU32(5), N: bigint.FromU32(35)},
		{Label: "base-above-modulus", Base: bigint.FromU64(1 << 40), Exp: bigint.FromU32(3), N: bigint.FromU32(143)},
		{Label: "wide-base-edge", Base: nMinus1, Exp: bigint.FromU32(2), N: pair.Public.N},
		{Label: "wide-small-exp", Base: bigint.FromU32(42), Exp: bigint.FromU32(65537), N: pair.Public.N},
	}

	results := orchestration.ExecuteSweep(ctx, orchestration.DefaultEngines(a.observer()), cases, nil)
	clipresent.DisplayBenchmark(out, displayBenchmarkRows(results))

	// Second pass through the core's own agreement checker, which carries
	// each algorithm's value so a disagreement names the culprit.
	var checks []clipresent.CheckResult
	for _, c := range cases {
		res := modexp.AgreementCheck(c.Base, c.Exp, c.N)
		checks = append(checks, check("agreement "+c.Label, !res.Mismatch, res.Detail))
	}
	clipresent.DisplayCheckResults(out, "Cross-algorithm agreement", checks)

	if a.Config.Verbose {
		for _, c := range cases {
			alg, reason := modexp.Select(c.N, nil)
			fmt.Fprintf(out, "%-20s selector-without-context: %s (%s)\n", c.Label, alg, reason)
		}
	}
	if !allPassed(checks) {
		return apperrors.ExitErrorMismatch
	}
	return a.reportAgreement(out, results)
}
