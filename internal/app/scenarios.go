package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/codec"
	"github.com/agbru/rsa4096/internal/modexp"
	"github.com/agbru/rsa4096/internal/rsa4096"
)

// runTest exercises the end-to-end RSA scenarios: the literal small-key
// encryptions, a full keypair round-trip, the zero short-circuit, and a
// multi-limb fixture round-trip.
func (a *Application) runTest(ctx context.Context, out io.Writer) int {
	var results []clipresent.CheckResult
	obs := a.observer()

	// n=35, e=5: the three classic textbook encryptions.
	pub35, err := rsa4096.NewKey(bigint.FromU32(35), bigint.FromU32(5), false)
	if err != nil {
		return a.fail(err)
	}
	for _, tc := range []struct{ m, want uint32 }{{2, 32}, {3, 33}, {4, 9}} {
		c, err := rsa4096.Encrypt(ctx, pub35, bigint.FromU32(tc.m), obs)
		ok := err == nil && bigint.Compare(c, bigint.FromU32(tc.want)) == bigint.Equal
		results = append(results, check(
			fmt.Sprintf("encrypt(%d) mod 35", tc.m), ok,
			fmt.Sprintf("want %d, got %s", tc.want, codec.EncodeDecimal(c))))
	}

	// n=143=11*13, e=7, d=103: encrypt then decrypt returns the message.
	results = append(results, roundTripCheck(ctx, "roundtrip n=143",
		bigint.FromU32(143), bigint.FromU32(7), bigint.FromU32(103), bigint.FromU32(42), obs))

	// Zero short-circuits straight through.
	zero, err := rsa4096.Encrypt(ctx, pub35, bigint.Zero(), obs)
	results = append(results, check("encrypt(0) short-circuit",
		err == nil && zero.IsZero(), ""))

	// e=1 at the domain's upper edge: m = n-1 comes back unchanged.
	pubIdentity, err := rsa4096.NewKey(bigint.FromU32(35), bigint.FromU32(1), false)
	if err != nil {
		return a.fail(err)
	}
	same, err := rsa4096.Encrypt(ctx, pubIdentity, bigint.FromU32(34), obs)
	results = append(results, check("expmod(34, 1) mod 35",
		err == nil && bigint.Compare(same, bigint.FromU32(34)) == bigint.Equal, ""))

	// Multi-limb fixture keypair round-trip.
	pair, err := rsa4096.FixtureCompact()
	if err != nil {
		return a.fail(err)
	}
	results = append(results, roundTripCheck(ctx, "roundtrip 1128-bit fixture",
		pair.Public.N, pair.Public.Exp, pair.Private.Exp, bigint.FromU32(42), obs))
	msg, err := codec.DecodeHex("deadbeefcafe0123456789")
	if err != nil {
		return a.fail(err)
	}
	results = append(results, roundTripCheck(ctx, "roundtrip 1128-bit wide message",
		pair.Public.N, pair.Public.Exp, pair.Private.Exp, msg, obs))

	clipresent.DisplayCheckResults(out, "RSA scenarios", results)
	if !allPassed(results) {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// roundTripCheck encrypts m under (n, e), decrypts under (n, d), and
// reports whether the message survived.
func roundTripCheck(ctx context.Context, label string, n, e, d, m bigint.BigUint, obs modexp.Observer) clipresent.CheckResult {
	pub, err := rsa4096.NewKey(n, e, false)
	if err != nil {
		return check(label, false, err.Error())
	}
	priv, err := rsa4096.NewKey(n, d, true)
	if err != nil {
		return check(label, false, err.Error())
	}
	c, err := rsa4096.Encrypt(ctx, pub, m, obs)
	if err != nil {
		return check(label, false, err.Error())
	}
	back, err := rsa4096.Decrypt(ctx, priv, c, obs)
	if err != nil {
		return check(label, false, err.Error())
	}
	ok := bigint.Compare(back, m) == bigint.Equal
	return check(label, ok, fmt.Sprintf("m=%s", clipresent.TruncateDecimal(codec.EncodeDecimal(m))))
}
