package orchestration

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
)

// Case is one (base, exp, n) triple in a sweep, labeled for result tables.
type Case struct {
	Label string
	Base  bigint.BigUint
	Exp   bigint.BigUint
	N     bigint.BigUint
}

// Result is the outcome of running one Case through one Engine.
type Result struct {
	CaseLabel string
	Engine    string
	BitLen    int
	Value     bigint.BigUint
	Duration  time.Duration
	Err       error
}

// Reporter receives each Result as it completes. Implementations are called
// from multiple goroutines and must synchronize internally.
type Reporter interface {
	OnResult(Result)
}

// NullReporter discards all results.
type NullReporter struct{}

func (NullReporter) OnResult(Result) {}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Result)

func (f ReporterFunc) OnResult(r Result) { f(r) }

// ExecuteSweep runs every case through every engine concurrently, bounded
// by the CPU count. Each goroutine owns its BigUint inputs and outputs, so
// no locking is needed around the arithmetic itself; results land in a
// pre-sized slice at distinct indices. Cancellation of ctx stops launching
// new work; already-running cases finish.
func ExecuteSweep(ctx context.Context, engines []Engine, cases []Case, rep Reporter) []Result {
	if rep == nil {
		rep = NullReporter{}
	}
	results := make([]Result, len(cases)*len(engines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for ci, c := range cases {
		for ei, e := range engines {
			idx, kase, engine := ci*len(engines)+ei, c, e
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{CaseLabel: kase.Label, Engine: engine.Name(), BitLen: kase.N.BitLen(), Err: err}
					rep.OnResult(results[idx])
					return nil
				}
				start := time.Now()
				v, err := engine.ModExp(kase.Base, kase.Exp, kase.N)
				results[idx] = Result{
					CaseLabel: kase.Label,
					Engine:    engine.Name(),
					BitLen:    kase.N.BitLen(),
					Value:     v,
					Duration:  time.Since(start),
					Err:       err,
				}
				rep.OnResult(results[idx])
				return nil
			})
		}
	}

	g.Wait()
	return results
}

// Mismatch describes one case on which two engines produced different
// values. Any mismatch between successful engines is an invariant breach:
// the engines implement the same mathematical function.
type Mismatch struct {
	CaseLabel string
	EngineA   string
	EngineB   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s and %s disagree", m.CaseLabel, m.EngineA, m.EngineB)
}

// AnalyzeAgreement groups results by case and compares every pair of
// successful engine outputs. It returns the process exit code the sweep
// deserves: ExitErrorMismatch if any two engines disagree,
// ExitErrorGeneric if every engine failed on some case, ExitSuccess
// otherwise. Engines that fail on cases others handle (for instance the
// pure-Montgomery engine on an even modulus) do not count against
// agreement.
func AnalyzeAgreement(results []Result) (int, []Mismatch) {
	byCase := make(map[string][]Result)
	var order []string // case labels in first-seen order, for stable reports
	for _, r := range results {
		if _, seen := byCase[r.CaseLabel]; !seen {
			order = append(order, r.CaseLabel)
		}
		byCase[r.CaseLabel] = append(byCase[r.CaseLabel], r)
	}

	var mismatches []Mismatch
	allFailedSomewhere := false
	for _, label := range order {
		group := byCase[label]
		var first *Result
		succeeded := 0
		for i := range group {
			if group[i].Err != nil {
				continue
			}
			succeeded++
			if first == nil {
				first = &group[i]
				continue
			}
			if bigint.Compare(group[i].Value, first.Value) != bigint.Equal {
				mismatches = append(mismatches, Mismatch{
					CaseLabel: label,
					EngineA:   first.Engine,
					EngineB:   group[i].Engine,
				})
			}
		}
		if succeeded == 0 {
			allFailedSomewhere = true
		}
	}

	switch {
	case len(mismatches) > 0:
		return apperrors.ExitErrorMismatch, mismatches
	case allFailedSomewhere:
		return apperrors.ExitErrorGeneric, nil
	default:
		return apperrors.ExitSuccess, nil
	}
}
