package app

import (
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/montgomery"
	"github.com/agbru/rsa4096/internal/rsa4096"
)

// runVerify runs the arithmetic and Montgomery self-check batteries: the
// BigUint universal properties against a fixed operand battery, then the
// Montgomery properties against both a one-limb modulus and a full
// multi-limb fixture modulus. A failed check is an invariant breach, so
// the exit code is the internal-error code rather than the generic one.
func (a *Application) runVerify(out io.Writer) int {
	results := displayBigintChecks(bigint.SelfTest())

	moduli := []bigint.BigUint{bigint.FromU32(143)}
	if pair, err := rsa4096.FixtureCompact(); err == nil {
		moduli = append(moduli, pair.Public.N)
	} else {
		return a.fail(err)
	}

	for _, m := range moduli {
		ctx, err := montgomery.Build(m)
		if err != nil {
			return a.fail(err)
		}
		results = append(results, displayMontgomeryChecks(montgomery.SelfTest(ctx))...)
	}

	clipresent.DisplayCheckResults(out, "Core self-checks", results)
	if !allPassed(results) {
		return apperrors.ExitErrorInternal
	}
	return apperrors.ExitSuccess
}
