package app

import (
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/montgomery"
	"github.com/agbru/rsa4096/internal/orchestration"
)

// The core's self-check batteries and the sweep runner each define their
// own result shapes so they stay free of presentation concerns; the
// converters below are the only place the CLI bridges them.

func displayBigintChecks(in []bigint.CheckResult) []clipresent.CheckResult {
	out := make([]clipresent.CheckResult, len(in))
	for i, r := range in {
		out[i] = clipresent.CheckResult{Property: r.Property, Passed: r.Passed, Detail: r.Detail}
	}
	return out
}

func displayMontgomeryChecks(in []montgomery.CheckResult) []clipresent.CheckResult {
	out := make([]clipresent.CheckResult, len(in))
	for i, r := range in {
		out[i] = clipresent.CheckResult{Property: r.Property, Passed: r.Passed, Detail: r.Detail}
	}
	return out
}

func displayBenchmarkRows(in []orchestration.Result) []clipresent.BenchmarkRow {
	out := make([]clipresent.BenchmarkRow, len(in))
	for i, r := range in {
		out[i] = clipresent.BenchmarkRow{
			Label:     r.CaseLabel,
			Algorithm: r.Engine,
			BitLen:    r.BitLen,
			Duration:  r.Duration,
			Err:       r.Err,
		}
	}
	return out
}

func allPassed(results []clipresent.CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// check builds one pass/fail row.
func check(property string, passed bool, detail string) clipresent.CheckResult {
	return clipresent.CheckResult{Property: property, Passed: passed, Detail: detail}
}
