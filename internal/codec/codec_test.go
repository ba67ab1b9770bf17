package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/codec"
)

func TestDecimalRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "9", "10", "255", "4294967295", "4294967296",
		"18446744073709551616",
		"340282366920938463463374607431768211455",
		"123456789012345678901234567890123456789012345678901234567890",
	}
	for _, s := range cases {
		v, err := codec.DecodeDecimal(s)
		if err != nil {
			t.Fatalf("DecodeDecimal(%q): %v", s, err)
		}
		if got := codec.EncodeDecimal(v); got != s {
			t.Errorf("round-trip %q = %q", s, got)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "f", "10", "ff", "deadbeef", "123456789abcdef0", "ffffffffffffffffffffffffffffffff"}
	for _, s := range cases {
		v, err := codec.DecodeHex(s)
		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", s, err)
		}
		if got := codec.EncodeHex(v); got != s {
			t.Errorf("round-trip %q = %q", s, got)
		}
	}
}

func TestHexCanonicalization(t *testing.T) {
	cases := []struct{ in, want string }{
		{"DEADBEEF", "deadbeef"},
		{"0DeadBeef", "deadbeef"},
		{"0000", "0"},
		{"007", "7"},
	}
	for _, tc := range cases {
		v, err := codec.DecodeHex(tc.in)
		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", tc.in, err)
		}
		if got := codec.EncodeHex(v); got != tc.want {
			t.Errorf("EncodeHex(DecodeHex(%q)) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEmptyInputsDecodeAsZero(t *testing.T) {
	dec, err := codec.DecodeDecimal("")
	if err != nil || !dec.IsZero() {
		t.Errorf("DecodeDecimal(\"\") = (%v, %v), want zero", dec, err)
	}
	hx, err := codec.DecodeHex("")
	if err != nil || !hx.IsZero() {
		t.Errorf("DecodeHex(\"\") = (%v, %v), want zero", hx, err)
	}
	by, err := codec.DecodeBytes(nil)
	if err != nil || !by.IsZero() {
		t.Errorf("DecodeBytes(nil) = (%v, %v), want zero", by, err)
	}
}

func TestBadFormat(t *testing.T) {
	if _, err := codec.DecodeDecimal("12a4"); !errors.Is(err, apperrors.BadFormat) {
		t.Errorf("DecodeDecimal with letter: %v, want BadFormat", err)
	}
	if _, err := codec.DecodeDecimal("-5"); !errors.Is(err, apperrors.BadFormat) {
		t.Errorf("DecodeDecimal with sign: %v, want BadFormat", err)
	}
	if _, err := codec.DecodeHex("xyz"); !errors.Is(err, apperrors.BadFormat) {
		t.Errorf("DecodeHex non-hex: %v, want BadFormat", err)
	}
	if _, err := codec.DecodeHex("0x12"); !errors.Is(err, apperrors.BadFormat) {
		t.Errorf("DecodeHex with prefix: %v, want BadFormat (no-prefix contract)", err)
	}
}

func TestBytesBigEndian(t *testing.T) {
	v, err := codec.DecodeBytes([]byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got := codec.EncodeDecimal(v); got != "66051" { // 0x010203
		t.Errorf("DecodeBytes big-endian = %s, want 66051", got)
	}

	out := codec.ToBytes(v)
	if !bytes.Equal(out, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ToBytes = %x, want 010203", out)
	}
}

func TestBytesMinimumLength(t *testing.T) {
	if got := codec.ByteLen(bigint.Zero()); got != 1 {
		t.Errorf("ByteLen(0) = %d, want 1", got)
	}
	if !bytes.Equal(codec.ToBytes(bigint.Zero()), []byte{0}) {
		t.Error("zero must encode as a single zero byte")
	}
	if got := codec.ByteLen(bigint.FromU32(255)); got != 1 {
		t.Errorf("ByteLen(255) = %d, want 1", got)
	}
	if got := codec.ByteLen(bigint.FromU32(256)); got != 2 {
		t.Errorf("ByteLen(256) = %d, want 2", got)
	}

	// Leading zero bytes on input do not survive a round-trip.
	v, err := codec.DecodeBytes([]byte{0, 0, 0x7f})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !bytes.Equal(codec.ToBytes(v), []byte{0x7f}) {
		t.Error("output must be minimum length")
	}
}

func TestBufferTooSmall(t *testing.T) {
	v, err := codec.DecodeHex("112233445566")
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	var short [2]byte
	errEnc := codec.EncodeBytes(v, short[:])
	var tooSmall apperrors.BufferTooSmallError
	if !errors.As(errEnc, &tooSmall) {
		t.Fatalf("EncodeBytes error = %v, want BufferTooSmallError", errEnc)
	}
	if tooSmall.Need != 6 || tooSmall.Have != 2 {
		t.Errorf("BufferTooSmallError = %+v, want Need=6 Have=2", tooSmall)
	}

	// An oversized buffer zero-pads on the left instead of failing.
	var wide [8]byte
	wide[0], wide[1] = 0xAA, 0xBB
	if err := codec.EncodeBytes(v, wide[:]); err != nil {
		t.Fatalf("EncodeBytes into wide buffer: %v", err)
	}
	if !bytes.Equal(wide[:], []byte{0, 0, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66}) {
		t.Errorf("wide buffer = %x", wide)
	}
}

// TestCodecRoundTrip_PropertyBased checks decode(encode(x)) == x across
// all three encodings for random values.
func TestCodecRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("all encodings round-trip", prop.ForAll(
		func(raw []uint8) bool {
			v, err := codec.DecodeBytes(raw)
			if err != nil {
				return false
			}
			viaDec, err := codec.DecodeDecimal(codec.EncodeDecimal(v))
			if err != nil || bigint.Compare(viaDec, v) != bigint.Equal {
				return false
			}
			viaHex, err := codec.DecodeHex(codec.EncodeHex(v))
			if err != nil || bigint.Compare(viaHex, v) != bigint.Equal {
				return false
			}
			viaBytes, err := codec.DecodeBytes(codec.ToBytes(v))
			return err == nil && bigint.Compare(viaBytes, v) == bigint.Equal
		},
		gen.SliceOfN(48, gen.UInt8()),
	))

	properties.TestingRun(t)
}
