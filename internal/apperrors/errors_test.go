package apperrors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/agbru/rsa4096/internal/apperrors"
)

func TestKindSentinels(t *testing.T) {
	tests := []struct {
		err  error
		kind apperrors.Kind
	}{
		{apperrors.OverflowError{Operation: "mul", NeededLimbs: 600, CapacityCap: 512}, apperrors.Overflow},
		{apperrors.UnderflowError{Operation: "sub"}, apperrors.Underflow},
		{apperrors.DivisionByZeroError{Operation: "div_mod"}, apperrors.DivisionByZero},
		{apperrors.BadFormatError{Encoding: "hex", Input: "zz"}, apperrors.BadFormat},
		{apperrors.BufferTooSmallError{Have: 1, Need: 9}, apperrors.BufferTooSmall},
		{apperrors.ZeroOperandError{Operand: "a"}, apperrors.ZeroOperand},
		{apperrors.NoInverseError{}, apperrors.NoInverse},
		{apperrors.EvenModulusError{}, apperrors.EvenModulus},
		{apperrors.ZeroModulusError{}, apperrors.ZeroModulus},
		{apperrors.DomainErrorDetail{Operation: "encrypt", Detail: "m >= n"}, apperrors.DomainError},
		{apperrors.InternalInvariantError{Invariant: "redc bound"}, apperrors.InternalInvariantBroken},
	}
	for _, tc := range tests {
		if !errors.Is(tc.err, tc.kind) {
			t.Errorf("%T does not unwrap to %s", tc.err, tc.kind)
		}
		if got := apperrors.KindOf(tc.err); got != tc.kind {
			t.Errorf("KindOf(%T) = %s, want %s", tc.err, got, tc.kind)
		}
	}
}

func TestKindOfUnknownError(t *testing.T) {
	if got := apperrors.KindOf(errors.New("plain")); got != apperrors.Kind("error") {
		t.Errorf("KindOf(plain error) = %s, want generic", got)
	}
}

func TestWrappingPreservesKind(t *testing.T) {
	inner := apperrors.OverflowError{Operation: "add", NeededLimbs: 513, CapacityCap: 512}
	wrapped := apperrors.WrapError(inner, "computing %s", "r_squared")
	if !errors.Is(wrapped, apperrors.Overflow) {
		t.Error("wrapping lost the Overflow kind")
	}
	var ov apperrors.OverflowError
	if !errors.As(wrapped, &ov) || ov.NeededLimbs != 513 {
		t.Error("wrapping lost the concrete error value")
	}
	if !strings.Contains(wrapped.Error(), "r_squared") {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}

	if apperrors.WrapError(nil, "whatever") != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, apperrors.ExitSuccess},
		{apperrors.NewConfigError("bad flag"), apperrors.ExitErrorConfig},
		{apperrors.InternalInvariantError{Invariant: "x"}, apperrors.ExitErrorInternal},
		{apperrors.OverflowError{}, apperrors.ExitErrorGeneric},
		{apperrors.DomainErrorDetail{}, apperrors.ExitErrorGeneric},
		{fmt.Errorf("wrapped: %w", apperrors.NoInverseError{}), apperrors.ExitErrorGeneric},
		{errors.New("unclassified"), apperrors.ExitErrorGeneric},
	}
	for _, tc := range tests {
		if got := apperrors.ExitCodeFor(tc.err); got != tc.want {
			t.Errorf("ExitCodeFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
