package orchestration_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/orchestration"
)

// stubEngine returns a fixed value or error for every case.
type stubEngine struct {
	name  string
	value uint32
	err   error
}

func (s stubEngine) Name() string { return s.name }

func (s stubEngine) ModExp(_, _, _ bigint.BigUint) (bigint.BigUint, error) {
	if s.err != nil {
		return bigint.Zero(), s.err
	}
	return bigint.FromU32(s.value), nil
}

func smallCases() []orchestration.Case {
	return []orchestration.Case{
		{Label: "case-a", Base: bigint.FromU32(2), Exp: bigint.FromU32(5), N: bigint.FromU32(35)},
		{Label: "case-b", Base: bigint.FromU32(42), Exp: bigint.FromU32(103), N: bigint.FromU32(143)},
	}
}

func TestExecuteSweepRunsEveryPair(t *testing.T) {
	engines := []orchestration.Engine{
		orchestration.SchoolbookEngine{},
		orchestration.BigRefEngine{},
	}
	cases := smallCases()

	var mu sync.Mutex
	reported := 0
	results := orchestration.ExecuteSweep(context.Background(), engines, cases,
		orchestration.ReporterFunc(func(orchestration.Result) {
			mu.Lock()
			reported++
			mu.Unlock()
		}))

	if len(results) != len(cases)*len(engines) {
		t.Fatalf("got %d results, want %d", len(results), len(cases)*len(engines))
	}
	if reported != len(results) {
		t.Errorf("reporter saw %d results, want %d", reported, len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s/%s: %v", r.CaseLabel, r.Engine, r.Err)
		}
		if r.CaseLabel == "" || r.Engine == "" {
			t.Errorf("result missing labels: %+v", r)
		}
	}

	code, mismatches := orchestration.AnalyzeAgreement(results)
	if code != apperrors.ExitSuccess || len(mismatches) != 0 {
		t.Errorf("agreement = (%d, %v), want success", code, mismatches)
	}
}

func TestAnalyzeAgreementDetectsMismatch(t *testing.T) {
	engines := []orchestration.Engine{
		stubEngine{name: "right", value: 7},
		stubEngine{name: "wrong", value: 8},
	}
	results := orchestration.ExecuteSweep(context.Background(), engines, smallCases()[:1], nil)

	code, mismatches := orchestration.AnalyzeAgreement(results)
	if code != apperrors.ExitErrorMismatch {
		t.Fatalf("exit code = %d, want mismatch", code)
	}
	if len(mismatches) != 1 || mismatches[0].CaseLabel != "case-a" {
		t.Errorf("mismatches = %v", mismatches)
	}
}

func TestAnalyzeAgreementToleratesPartialFailures(t *testing.T) {
	boom := errors.New("engine not applicable")
	engines := []orchestration.Engine{
		stubEngine{name: "working", value: 7},
		stubEngine{name: "broken", err: boom},
	}
	results := orchestration.ExecuteSweep(context.Background(), engines, smallCases(), nil)

	code, mismatches := orchestration.AnalyzeAgreement(results)
	if code != apperrors.ExitSuccess || len(mismatches) != 0 {
		t.Errorf("agreement = (%d, %v), want success despite one failing engine", code, mismatches)
	}
}

func TestAnalyzeAgreementAllEnginesFailing(t *testing.T) {
	boom := errors.New("nothing works")
	engines := []orchestration.Engine{stubEngine{name: "broken", err: boom}}
	results := orchestration.ExecuteSweep(context.Background(), engines, smallCases(), nil)

	code, _ := orchestration.AnalyzeAgreement(results)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want generic failure", code)
	}
}

func TestCoreEnginesAgreeOnAwkwardInputs(t *testing.T) {
	engines := []orchestration.Engine{
		orchestration.MontgomeryEngine{},
		orchestration.SchoolbookEngine{},
		orchestration.SelectorEngine{},
		orchestration.BigRefEngine{},
	}
	cases := []orchestration.Case{
		{Label: "exp-zero", Base: bigint.FromU32(9), Exp: bigint.Zero(), N: bigint.FromU32(143)},
		{Label: "base-zero", Base: bigint.Zero(), Exp: bigint.FromU32(9), N: bigint.FromU32(143)},
		{Label: "modulus-one", Base: bigint.FromU32(9), Exp: bigint.FromU32(2), N: bigint.FromU32(1)},
		{Label: "base-above-n", Base: bigint.FromU64(1 << 40), Exp: bigint.FromU32(3), N: bigint.FromU32(143)},
	}
	results := orchestration.ExecuteSweep(context.Background(), engines, cases, nil)
	code, mismatches := orchestration.AnalyzeAgreement(results)
	if code != apperrors.ExitSuccess {
		t.Errorf("agreement = (%d, %v), want success", code, mismatches)
	}
}
