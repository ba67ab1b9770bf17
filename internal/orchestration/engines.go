package orchestration

import (
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/codec"
	"github.com/agbru/rsa4096/internal/modexp"
	"github.com/agbru/rsa4096/internal/montgomery"
)

// Engine computes base^exp mod n. Implementations must be safe for
// concurrent use: every method call owns its inputs and outputs and keeps
// no state between calls.
type Engine interface {
	// Name identifies the engine in result tables ("montgomery",
	// "schoolbook", "selector", "math/big", "gmp").
	Name() string
	ModExp(base, exp, n bigint.BigUint) (bigint.BigUint, error)
}

// SchoolbookEngine routes every call to modexp.Schoolbook.
type SchoolbookEngine struct{}

func (SchoolbookEngine) Name() string { return "schoolbook" }

func (SchoolbookEngine) ModExp(base, exp, n bigint.BigUint) (bigint.BigUint, error) {
	if n.IsZero() {
		return bigint.Zero(), apperrors.DivisionByZeroError{Operation: "schoolbook modexp"}
	}
	return modexp.Schoolbook(base, exp, n)
}

// MontgomeryEngine builds a fresh Montgomery context per call and runs the
// REDC-based expmod. Even or zero moduli fail the same way montgomery.Build
// does; there is no schoolbook fallback here, since this engine exists to
// exercise the Montgomery path in isolation.
type MontgomeryEngine struct{}

func (MontgomeryEngine) Name() string { return "montgomery" }

func (MontgomeryEngine) ModExp(base, exp, n bigint.BigUint) (bigint.BigUint, error) {
	ctx, err := montgomery.Build(n)
	if err != nil {
		return bigint.Zero(), err
	}
	return montgomery.Expmod(base, exp, ctx)
}

// SelectorEngine routes through modexp.ExpSelect, the policy production
// callers use, including its Montgomery-to-schoolbook fallback. Obs may be
// nil.
type SelectorEngine struct {
	Obs modexp.Observer
}

func (SelectorEngine) Name() string { return "selector" }

func (e SelectorEngine) ModExp(base, exp, n bigint.BigUint) (bigint.BigUint, error) {
	if n.IsZero() {
		return bigint.Zero(), apperrors.DivisionByZeroError{Operation: "selector modexp"}
	}
	var ctxPtr *montgomery.Ctx
	if n.Limbs[0]&1 == 1 {
		if ctx, err := montgomery.Build(n); err == nil {
			ctxPtr = &ctx
		}
	}
	return modexp.ExpSelect(base, exp, n, ctxPtr, e.Obs)
}

// BigRefEngine is the pure-Go reference oracle, delegating to math/big.
type BigRefEngine struct{}

func (BigRefEngine) Name() string { return "math/big" }

func (BigRefEngine) ModExp(base, exp, n bigint.BigUint) (bigint.BigUint, error) {
	if n.IsZero() {
		return bigint.Zero(), apperrors.DivisionByZeroError{Operation: "math/big modexp"}
	}
	b := new(big.Int).SetBytes(codec.ToBytes(base))
	e := new(big.Int).SetBytes(codec.ToBytes(exp))
	m := new(big.Int).SetBytes(codec.ToBytes(n))
	r := new(big.Int).Exp(b, e, m)
	return codec.DecodeBytes(r.Bytes())
}

// GMPRefEngine is the native reference oracle, delegating to GNU GMP
// through github.com/ncw/gmp. It is the fastest engine in every sweep and
// anchors the benchmark subcommand's timing comparisons.
type GMPRefEngine struct{}

func (GMPRefEngine) Name() string { return "gmp" }

func (GMPRefEngine) ModExp(base, exp, n bigint.BigUint) (bigint.BigUint, error) {
	if n.IsZero() {
		return bigint.Zero(), apperrors.DivisionByZeroError{Operation: "gmp modexp"}
	}
	b := new(gmp.Int).SetBytes(codec.ToBytes(base))
	e := new(gmp.Int).SetBytes(codec.ToBytes(exp))
	m := new(gmp.Int).SetBytes(codec.ToBytes(n))
	r := new(gmp.Int).Exp(b, e, m)
	return codec.DecodeBytes(r.Bytes())
}

// DefaultEngines returns the engine set the benchmark and algorithms
// subcommands sweep: both core implementations, the production selector,
// and both reference oracles.
func DefaultEngines(obs modexp.Observer) []Engine {
	return []Engine{
		MontgomeryEngine{},
		SchoolbookEngine{},
		SelectorEngine{Obs: obs},
		BigRefEngine{},
		GMPRefEngine{},
	}
}
