package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/codec"
)

// runBinary exercises the bit-level surface: bit lengths, single-bit
// reads, shift round-trips, and the big-endian byte codec.
func (a *Application) runBinary(out io.Writer) int {
	var results []clipresent.CheckResult

	for _, tc := range []struct {
		v    bigint.BigUint
		bits int
	}{
		{bigint.Zero(), 0},
		{bigint.FromU32(1), 1},
		{bigint.FromU32(255), 8},
		{bigint.FromU32(256), 9},
		{bigint.FromU64(1 << 32), 33},
		{bigint.FromU64(0xFFFFFFFFFFFFFFFF), 64},
	} {
		results = append(results, check(
			fmt.Sprintf("bit_length == %d", tc.bits),
			tc.v.BitLen() == tc.bits,
			fmt.Sprintf("value %s", codec.EncodeHex(tc.v))))
	}

	v := bigint.FromU64(0b1010_0001)
	results = append(results, check("get_bit on 0b10100001",
		v.GetBit(0) == 1 && v.GetBit(1) == 0 && v.GetBit(5) == 1 && v.GetBit(7) == 1, ""))
	results = append(results, check("get_bit beyond capacity is zero",
		v.GetBit(32*bigint.Cap) == 0 && v.GetBit(32*bigint.Cap+100) == 0, ""))

	for _, k := range []int{1, 31, 32, 33, 100, 1000} {
		shifted, err := bigint.ShiftLeft(v, k)
		if err != nil {
			results = append(results, check(fmt.Sprintf("shift round-trip by %d", k), false, err.Error()))
			continue
		}
		back := bigint.ShiftRight(shifted, k)
		results = append(results, check(fmt.Sprintf("shift round-trip by %d", k),
			bigint.Compare(back, v) == bigint.Equal, ""))
	}

	// Byte codec: round-trip, minimum length, and the short-buffer error.
	wide, err := codec.DecodeHex("0102030405060708090a0b0c0d0e0f")
	if err != nil {
		return a.fail(err)
	}
	raw := codec.ToBytes(wide)
	back, err := codec.DecodeBytes(raw)
	results = append(results, check("bytes round-trip",
		err == nil && bigint.Compare(back, wide) == bigint.Equal,
		fmt.Sprintf("%d bytes", len(raw))))
	results = append(results, check("bytes minimum length",
		len(raw) == 15, fmt.Sprintf("got %d", len(raw))))

	padded, err := codec.DecodeBytes(append(make([]byte, 4), raw...))
	results = append(results, check("leading zero bytes ignored",
		err == nil && bigint.Compare(padded, wide) == bigint.Equal, ""))

	short := make([]byte, 3)
	errShort := codec.EncodeBytes(wide, short)
	var tooSmall apperrors.BufferTooSmallError
	results = append(results, check("short buffer reports needed length",
		errors.As(errShort, &tooSmall) && tooSmall.Need == 15,
		fmt.Sprintf("%v", errShort)))

	zeroBytes := codec.ToBytes(bigint.Zero())
	results = append(results, check("zero encodes as one byte",
		bytes.Equal(zeroBytes, []byte{0}), ""))

	clipresent.DisplayCheckResults(out, "Bit and byte operations", results)
	if !allPassed(results) {
		return apperrors.ExitErrorInternal
	}
	return apperrors.ExitSuccess
}
