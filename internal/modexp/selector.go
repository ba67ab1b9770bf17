//go:generate mockgen -source=selector.go -destination=mocks/mock_observer.go -package=mocks

package modexp

import (
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/montgomery"
)

// minMontgomeryBits is the bit length of n below which Montgomery's setup
// cost (building R^2 mod n) dominates, so schoolbook is chosen instead.
// Above the cutoff the only remaining guard is that the context's working
// buffer (2k+1 limbs) fits the limb capacity, which montgomery.Build
// enforces by construction.
const minMontgomeryBits = 512

// Observer receives notifications about ExpSelector's choice of algorithm
// and any runtime fallback. It is a pure observability hook: a nil Observer
// disables reporting without changing selection behavior, and no selection
// decision is ever made by consulting it.
type Observer interface {
	OnSelect(algorithm string, reason string)
	OnFallback(from, to string, err error)
}

// Select determines which algorithm ExpSelect should route a call to: an
// absent or inactive context, or an even modulus, forces schoolbook; a
// modulus narrower than minMontgomeryBits also forces schoolbook (setup
// cost dominates); anything else uses Montgomery.
func Select(n bigint.BigUint, ctx *montgomery.Ctx) (algorithm string, reason string) {
	if ctx == nil || !ctx.Active {
		return "schoolbook", "no active montgomery context"
	}
	if n.Used == 0 || n.Limbs[0]&1 == 0 {
		return "schoolbook", "even modulus"
	}
	if n.BitLen() < minMontgomeryBits {
		return "schoolbook", "modulus narrower than montgomery setup threshold"
	}
	return "montgomery", "modulus eligible for montgomery reduction"
}

// ExpSelect picks between Montgomery (internal/montgomery.Expmod) and
// Schoolbook for one call to base^exp mod n, per Select's decision. If
// Montgomery fails at runtime, it retries with Schoolbook using the
// original, un-reduced inputs; if the retry fails too, the Montgomery
// error is the one surfaced. After any success, the result is guaranteed
// result < n, reducing once more if necessary. obs may be nil.
func ExpSelect(base, exp, n bigint.BigUint, ctx *montgomery.Ctx, obs Observer) (bigint.BigUint, error) {
	algorithm, reason := Select(n, ctx)
	if obs != nil {
		obs.OnSelect(algorithm, reason)
	}

	var result bigint.BigUint
	var err error
	if algorithm == "montgomery" {
		result, err = montgomery.Expmod(base, exp, *ctx)
		if montErr := err; montErr != nil {
			if obs != nil {
				obs.OnFallback("montgomery", "schoolbook", montErr)
			}
			result, err = Schoolbook(base, exp, n)
			if err != nil {
				err = montErr
			}
		}
	} else {
		result, err = Schoolbook(base, exp, n)
	}
	if err != nil {
		return bigint.Zero(), err
	}

	if bigint.Compare(result, n) != bigint.Less {
		result, err = bigint.Mod(result, n)
		if err != nil {
			return bigint.Zero(), err
		}
	}
	return result, nil
}
