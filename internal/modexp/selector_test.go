package modexp_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/modexp"
	"github.com/agbru/rsa4096/internal/modexp/mocks"
	"github.com/agbru/rsa4096/internal/montgomery"
)

// wideOddModulusHex is 576 bits, above the Montgomery cutoff.
const wideOddModulusHex = "f123456789abcdef" +
	"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef" +
	"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdd1"

func buildCtx(t *testing.T, n bigint.BigUint) *montgomery.Ctx {
	t.Helper()
	ctx, err := montgomery.Build(n)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return &ctx
}

func TestSelectDecisionTable(t *testing.T) {
	wideN := fromHex(t, wideOddModulusHex)
	wideCtx := buildCtx(t, wideN)
	tinyN := bigint.FromU32(143)
	tinyCtx := buildCtx(t, tinyN)
	inactive := &montgomery.Ctx{}

	tests := []struct {
		name string
		n    bigint.BigUint
		ctx  *montgomery.Ctx
		want string
	}{
		{"nil context", wideN, nil, "schoolbook"},
		{"inactive context", wideN, inactive, "schoolbook"},
		{"even modulus", bigint.FromU64(1 << 33), wideCtx, "schoolbook"},
		{"below cutoff", tinyN, tinyCtx, "schoolbook"},
		{"wide odd modulus", wideN, wideCtx, "montgomery"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := modexp.Select(tc.n, tc.ctx)
			if got != tc.want {
				t.Errorf("Select = %q (%s), want %q", got, reason, tc.want)
			}
		})
	}
}

func TestExpSelectReportsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().OnSelect("schoolbook", gomock.Any())

	got, err := modexp.ExpSelect(bigint.FromU32(2), bigint.FromU32(5), bigint.FromU32(35), nil, obs)
	if err != nil {
		t.Fatalf("ExpSelect: %v", err)
	}
	if bigint.Compare(got, bigint.FromU32(32)) != bigint.Equal {
		t.Errorf("ExpSelect = %v, want 32", got)
	}
}

func TestExpSelectMontgomeryPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	n := fromHex(t, wideOddModulusHex)
	ctx := buildCtx(t, n)

	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().OnSelect("montgomery", gomock.Any())

	got, err := modexp.ExpSelect(bigint.FromU32(42), bigint.FromU32(65537), n, ctx, obs)
	if err != nil {
		t.Fatalf("ExpSelect: %v", err)
	}
	want, err := modexp.Schoolbook(bigint.FromU32(42), bigint.FromU32(65537), n)
	if err != nil {
		t.Fatalf("Schoolbook reference: %v", err)
	}
	if bigint.Compare(got, want) != bigint.Equal {
		t.Error("Montgomery path disagrees with schoolbook reference")
	}
}

// TestExpSelectFallsBack hands ExpSelect a context whose r_squared is far
// wider than the modulus, so the first reduction violates REDC's
// postcondition and the Montgomery attempt fails at runtime; the
// schoolbook retry must deliver the result.
func TestExpSelectFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	n := fromHex(t, wideOddModulusHex)
	good := buildCtx(t, n)

	overwide, err := bigint.ShiftLeft(bigint.FromU32(1), 32*(bigint.Cap-2))
	if err != nil {
		t.Fatalf("ShiftLeft: %v", err)
	}
	broken := &montgomery.Ctx{
		N:        good.N,
		K:        good.K,
		NPrime:   good.NPrime,
		RSquared: overwide,
		Active:   true,
	}

	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().OnSelect("montgomery", gomock.Any())
	obs.EXPECT().OnFallback("montgomery", "schoolbook", gomock.Any())

	got, err := modexp.ExpSelect(bigint.FromU32(42), bigint.FromU32(65537), n, broken, obs)
	if err != nil {
		t.Fatalf("ExpSelect after fallback: %v", err)
	}
	want, err := modexp.Schoolbook(bigint.FromU32(42), bigint.FromU32(65537), n)
	if err != nil {
		t.Fatalf("Schoolbook reference: %v", err)
	}
	if bigint.Compare(got, want) != bigint.Equal {
		t.Error("fallback result disagrees with schoolbook")
	}
}

func TestExpSelectResultBelowModulus(t *testing.T) {
	n := fromHex(t, wideOddModulusHex)
	got, err := modexp.ExpSelect(bigint.FromU32(7), bigint.FromU32(3), n, buildCtx(t, n), nil)
	if err != nil {
		t.Fatalf("ExpSelect: %v", err)
	}
	if bigint.Compare(got, n) != bigint.Less {
		t.Error("result must be strictly below the modulus")
	}
}
