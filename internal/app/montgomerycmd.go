package app

import (
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/codec"
	"github.com/agbru/rsa4096/internal/montgomery"
	"github.com/agbru/rsa4096/internal/rsa4096"
	"github.com/agbru/rsa4096/internal/ui"
)

// runMontgomery builds Montgomery contexts for a one-limb and a multi-limb
// modulus, prints their precomputed internals, and runs the Montgomery
// property battery against each.
func (a *Application) runMontgomery(out io.Writer) int {
	pair, err := rsa4096.FixtureCompact()
	if err != nil {
		return a.fail(err)
	}

	moduli := []struct {
		label string
		n     bigint.BigUint
	}{
		{"n=143", bigint.FromU32(143)},
		{"1128-bit fixture", pair.Public.N},
	}

	theme := ui.GetCurrentTheme()
	var results []clipresent.CheckResult
	for _, m := range moduli {
		ctx, err := montgomery.Build(m.n)
		if err != nil {
			return a.fail(err)
		}

		fmt.Fprintln(out, theme.Bold.Render("Context "+m.label))
		fmt.Fprintf(out, "  k         = %d limbs (R = 2^%d)\n", ctx.K, 32*ctx.K)
		fmt.Fprintf(out, "  n'        = %#x\n", ctx.NPrime)
		fmt.Fprintf(out, "  r_squared = %s\n", clipresent.TruncateHex(codec.EncodeHex(ctx.RSquared)))

		results = append(results, displayMontgomeryChecks(montgomery.SelfTest(ctx))...)
	}

	clipresent.DisplayCheckResults(out, "Montgomery properties", results)
	if !allPassed(results) {
		return apperrors.ExitErrorInternal
	}
	return apperrors.ExitSuccess
}
