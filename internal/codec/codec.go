// Package codec converts between BigUint and decimal strings, hex strings,
// and big-endian byte slices, matching the I2OSP/OS2IP convention used by
// standard RSA primitives: unsigned big-endian, minimum-length on output, no
// sign byte, no length prefix.
package codec

import (
	"strings"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
)

// DecodeDecimal parses a decimal string into a BigUint, processing digits
// left-to-right as repeated x*10+d. Non-digit characters fail with a
// BadFormatError. Empty input decodes as zero.
func DecodeDecimal(s string) (bigint.BigUint, error) {
	if s == "" {
		return bigint.Zero(), nil
	}
	acc := bigint.Zero()
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return bigint.Zero(), apperrors.BadFormatError{Encoding: "decimal", Input: s}
		}
		next, err := bigint.MulAddWord(acc, 10, uint32(ch-'0'))
		if err != nil {
			return bigint.Zero(), err
		}
		acc = next
	}
	return acc, nil
}

// EncodeDecimal renders b as a decimal string with no leading zeros, "0" for
// zero, by peeling digits via repeated DivMod by ten.
func EncodeDecimal(b bigint.BigUint) string {
	if b.IsZero() {
		return "0"
	}
	ten := bigint.FromU32(10)
	digits := make([]byte, 0, b.BitLen()/3+2)
	cur := b
	for !cur.IsZero() {
		q, r, _ := bigint.DivMod(cur, ten)
		d := byte(0)
		if r.Used > 0 {
			d = byte(r.Limbs[0])
		}
		digits = append(digits, '0'+d)
		cur = q
	}
	// digits were collected least-significant first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

const hexDigits = "0123456789abcdef"

// DecodeHex parses a hex string (case-insensitive, no "0x" prefix) into a
// BigUint. Non-hex characters fail with a BadFormatError. Empty input
// decodes as zero.
func DecodeHex(s string) (bigint.BigUint, error) {
	if s == "" {
		return bigint.Zero(), nil
	}
	acc := bigint.Zero()
	for _, ch := range s {
		v, ok := hexVal(ch)
		if !ok {
			return bigint.Zero(), apperrors.BadFormatError{Encoding: "hex", Input: s}
		}
		next, err := bigint.MulAddWord(acc, 16, uint32(v))
		if err != nil {
			return bigint.Zero(), err
		}
		acc = next
	}
	return acc, nil
}

func hexVal(ch rune) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}

// EncodeHex renders b as a lower-case hex string with no leading zeros
// (except for the value zero, which renders as "0").
func EncodeHex(b bigint.BigUint) string {
	if b.IsZero() {
		return "0"
	}
	var sb strings.Builder
	started := false
	for i := b.Used - 1; i >= 0; i-- {
		limb := b.Limbs[i]
		for shift := 28; shift >= 0; shift -= 4 {
			nibble := (limb >> uint(shift)) & 0xF
			if !started && nibble == 0 {
				continue
			}
			started = true
			sb.WriteByte(hexDigits[nibble])
		}
	}
	return sb.String()
}

// DecodeBytes parses a big-endian byte slice into a BigUint; the first
// (highest-index) byte is most significant. Empty input decodes as zero.
func DecodeBytes(buf []byte) (bigint.BigUint, error) {
	acc := bigint.Zero()
	for _, bv := range buf {
		next, err := bigint.MulAddWord(acc, 256, uint32(bv))
		if err != nil {
			return bigint.Zero(), err
		}
		acc = next
	}
	return acc, nil
}

// ByteLen returns the minimum number of big-endian bytes needed to
// represent b (one byte for zero).
func ByteLen(b bigint.BigUint) int {
	bits := b.BitLen()
	if bits == 0 {
		return 1
	}
	return (bits + 7) / 8
}

// EncodeBytes writes the minimum big-endian encoding of b into out. Fails
// with a BufferTooSmallError, reporting the needed length, if out is
// shorter than ByteLen(b).
func EncodeBytes(b bigint.BigUint, out []byte) error {
	need := ByteLen(b)
	if len(out) < need {
		return apperrors.BufferTooSmallError{Have: len(out), Need: need}
	}
	// Zero any leading padding the caller's buffer may carry.
	for i := 0; i < len(out)-need; i++ {
		out[i] = 0
	}
	for i := 0; i < need; i++ {
		out[len(out)-1-i] = byte(b.GetBit(i*8)) |
			byte(b.GetBit(i*8+1))<<1 |
			byte(b.GetBit(i*8+2))<<2 |
			byte(b.GetBit(i*8+3))<<3 |
			byte(b.GetBit(i*8+4))<<4 |
			byte(b.GetBit(i*8+5))<<5 |
			byte(b.GetBit(i*8+6))<<6 |
			byte(b.GetBit(i*8+7))<<7
	}
	return nil
}

// ToBytes is a convenience wrapper allocating a minimum-length buffer.
func ToBytes(b bigint.BigUint) []byte {
	out := make([]byte, ByteLen(b))
	_ = EncodeBytes(b, out)
	return out
}
