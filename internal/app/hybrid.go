package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/modexp"
	"github.com/agbru/rsa4096/internal/montgomery"
	"github.com/agbru/rsa4096/internal/orchestration"
	"github.com/agbru/rsa4096/internal/rsa4096"
)

// runHybrid drives each branch of the exponentiation selector explicitly:
// a one-limb modulus (below the Montgomery cutoff), a wide fixture modulus
// (above it), and an even modulus (Montgomery inapplicable), then runs the
// same cases through the forced montgomery and schoolbook engines and
// cross-checks the outputs.
func (a *Application) runHybrid(ctx context.Context, out io.Writer) int {
	pair, err := rsa4096.FixtureCompact()
	if err != nil {
		return a.fail(err)
	}

	evenN := bigint.FromU64(0x1_0000_0000) // even: selector must refuse Montgomery
	cases := []orchestration.Case{
		{Label: "tiny-odd", Base: bigint.FromU32(42), Exp: bigint.FromU32(103), N: bigint.FromU32(143)},
		{Label: "wide-odd", Base: bigint.FromU32(42), Exp: pair.Public.Exp, N: pair.Public.N},
		{Label: "even", Base: bigint.FromU32(7), Exp: bigint.FromU32(65537), N: evenN},
	}

	if !a.Config.Quiet {
		for _, c := range cases {
			var ctxPtr *montgomery.Ctx
			if !c.N.IsZero() && c.N.Limbs[0]&1 == 1 {
				if mctx, err := montgomery.Build(c.N); err == nil {
					ctxPtr = &mctx
				}
			}
			alg, reason := modexp.Select(c.N, ctxPtr)
			fmt.Fprintf(out, "%-10s -> %-10s (%s)\n", c.Label, alg, reason)
		}
		fmt.Fprintln(out)
	}

	engines := []orchestration.Engine{
		orchestration.SelectorEngine{Obs: a.observer()},
		orchestration.MontgomeryEngine{},
		orchestration.SchoolbookEngine{},
	}
	results := orchestration.ExecuteSweep(ctx, engines, cases, nil)
	clipresent.DisplayBenchmark(out, displayBenchmarkRows(results))
	return a.reportAgreement(out, results)
}
