package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/modinverse"
	"github.com/agbru/rsa4096/internal/montgomery"
	"github.com/agbru/rsa4096/internal/rsa4096"
)

// runBoundary checks that every failure path fails with the right error
// kind — never by silently truncating — plus two value-domain edges
// (a - a normalizing to zero, and reduction being idempotent).
func (a *Application) runBoundary(out io.Writer) int {
	var results []clipresent.CheckResult

	expectKind := func(property string, err error, kind apperrors.Kind) {
		results = append(results, check(property, errors.Is(err, kind), fmt.Sprintf("got %v", err)))
	}

	// Underflow: subtrahend larger than minuend.
	_, err := bigint.Sub(bigint.FromU32(3), bigint.FromU32(5))
	expectKind("sub underflows", err, apperrors.Underflow)

	// Division by zero.
	_, _, err = bigint.DivMod(bigint.FromU32(7), bigint.Zero())
	expectKind("div_mod by zero", err, apperrors.DivisionByZero)

	// Overflow: a product wider than the limb capacity.
	half, err := bigint.ShiftLeft(bigint.FromU32(1), 32*(bigint.Cap/2))
	if err != nil {
		return a.fail(err)
	}
	_, err = bigint.Mul(half, half)
	expectKind("over-wide product overflows", err, apperrors.Overflow)
	_, err = bigint.ShiftLeft(bigint.FromU32(1), 32*bigint.Cap)
	expectKind("over-wide shift overflows", err, apperrors.Overflow)

	// Montgomery build preconditions.
	_, err = montgomery.Build(bigint.FromU32(100))
	expectKind("montgomery build on even modulus", err, apperrors.EvenModulus)
	_, err = montgomery.Build(bigint.Zero())
	expectKind("montgomery build on zero modulus", err, apperrors.ZeroModulus)

	// Modular inverse preconditions.
	_, err = modinverse.InvMod(bigint.Zero(), bigint.FromU32(7))
	expectKind("inverse of zero", err, apperrors.ZeroOperand)
	_, err = modinverse.InvMod(bigint.FromU32(6), bigint.FromU32(9))
	expectKind("inverse with gcd != 1", err, apperrors.NoInverse)

	// RSA domain check: message must be below the modulus.
	pub, err := rsa4096.NewKey(bigint.FromU32(35), bigint.FromU32(5), false)
	if err != nil {
		return a.fail(err)
	}
	_, err = rsa4096.Encrypt(context.Background(), pub, bigint.FromU32(35), a.observer())
	expectKind("encrypt with m == n", err, apperrors.DomainError)
	_, err = rsa4096.Encrypt(context.Background(), pub, bigint.FromU32(1000), a.observer())
	expectKind("encrypt with m > n", err, apperrors.DomainError)

	// Value edges: equal subtraction normalizes to zero, reduction is
	// idempotent.
	diff, err := bigint.Sub(bigint.FromU32(9), bigint.FromU32(9))
	results = append(results, check("a - a normalizes to zero",
		err == nil && diff.IsZero() && diff.Used == 0, ""))

	x := bigint.FromU64(0xFEDCBA9876543210)
	n := bigint.FromU32(10007)
	once, err1 := bigint.Mod(x, n)
	twice, err2 := bigint.Mod(once, n)
	results = append(results, check("mod is idempotent",
		err1 == nil && err2 == nil && bigint.Compare(once, twice) == bigint.Equal, ""))

	clipresent.DisplayCheckResults(out, "Boundary and failure paths", results)
	if !allPassed(results) {
		return apperrors.ExitErrorInternal
	}
	return apperrors.ExitSuccess
}
