package app

import (
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/codec"
)

// runRoundtrip checks decode(encode(x)) == x across all three encodings
// for a battery of values, and encode(decode(s)) == canonicalize(s) for
// inputs carrying leading zeros or mixed case.
func (a *Application) runRoundtrip(out io.Writer) int {
	var results []clipresent.CheckResult

	decimals := []string{
		"0", "1", "9", "10", "4294967295", "4294967296",
		"340282366920938463463374607431768211455",
		"179769313486231590772930519078902473361797697894230657273430081157732675805500963132708477322407536021120113879871393357658789768814416622492847430639474124377767893424865485276302219601246094119453082952085005768838150682342462881473913110540827237163350510684586298239947245938479716304835356329624224137215",
	}
	for _, s := range decimals {
		v, err := codec.DecodeDecimal(s)
		ok := err == nil && codec.EncodeDecimal(v) == s
		results = append(results, check("decimal round-trip", ok, s[:min(len(s), 32)]))
	}

	hexes := []string{"0", "1", "f", "ff", "100", "deadbeef", "ffffffffffffffff", "0123456789abcdef0123456789abcdef"}
	for _, s := range hexes {
		v, err := codec.DecodeHex(s)
		want := canonicalHex(s)
		ok := err == nil && codec.EncodeHex(v) == want
		results = append(results, check("hex round-trip", ok, s))
	}

	// Canonicalization: leading zeros stripped, case folded, empty reads
	// as zero.
	canon := []struct{ in, want string }{
		{"007", "7"},
		{"000", "0"},
		{"DEADBEEF", "deadbeef"},
		{"00ff", "ff"},
	}
	for _, tc := range canon {
		v, err := codec.DecodeHex(tc.in)
		ok := err == nil && codec.EncodeHex(v) == tc.want
		results = append(results, check("hex canonicalization", ok, fmt.Sprintf("%s -> %s", tc.in, tc.want)))
	}

	emptyDec, errDec := codec.DecodeDecimal("")
	emptyHex, errHex := codec.DecodeHex("")
	emptyBytes, errBytes := codec.DecodeBytes(nil)
	results = append(results, check("empty input reads as zero",
		errDec == nil && errHex == nil && errBytes == nil &&
			emptyDec.IsZero() && emptyHex.IsZero() && emptyBytes.IsZero(), ""))

	// Cross-encoding: the same value through every codec pair.
	v, err := codec.DecodeDecimal("123456789012345678901234567890")
	if err != nil {
		return a.fail(err)
	}
	viaHex, errViaHex := codec.DecodeHex(codec.EncodeHex(v))
	viaBytes, errViaBytes := codec.DecodeBytes(codec.ToBytes(v))
	results = append(results, check("cross-encoding agreement",
		errViaHex == nil && errViaBytes == nil &&
			bigint.Compare(viaHex, v) == bigint.Equal &&
			bigint.Compare(viaBytes, v) == bigint.Equal, ""))

	clipresent.DisplayCheckResults(out, "Codec round-trips", results)
	if !allPassed(results) {
		return apperrors.ExitErrorInternal
	}
	return apperrors.ExitSuccess
}

// canonicalHex lower-cases s and strips leading zeros, keeping a single
// zero for the value zero.
func canonicalHex(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	i := 0
	for i < len(out)-1 && out[i] == '0' {
		i++
	}
	return string(out[i:])
}
