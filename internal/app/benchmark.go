package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/rsa4096/internal/apperrors"
	"github.com/agbru/rsa4096/internal/bigint"
	"github.com/agbru/rsa4096/internal/clipresent"
	"github.com/agbru/rsa4096/internal/orchestration"
	"github.com/agbru/rsa4096/internal/tui"
)

// benchmarkBits are the modulus widths the benchmark subcommand sweeps.
// The spread brackets the selector's 512-bit Montgomery cutoff from both
// sides.
var benchmarkBits = []int{256, 512, 1024, 2048, 4096}

// benchmarkCases builds one case per modulus width: modulus 2^bits - 1
// (odd by construction, so every engine is applicable), exponent 65537,
// and a fixed multi-limb base.
func benchmarkCases() ([]orchestration.Case, error) {
	base := bigint.FromU64(0x0123456789ABCDEF)
	exp := bigint.FromU32(65537)

	cases := make([]orchestration.Case, 0, len(benchmarkBits))
	for _, bits := range benchmarkBits {
		shifted, err := bigint.ShiftLeft(bigint.FromU32(1), bits)
		if err != nil {
			return nil, err
		}
		n, err := bigint.Sub(shifted, bigint.FromU32(1))
		if err != nil {
			return nil, err
		}
		cases = append(cases, orchestration.Case{
			Label: fmt.Sprintf("modulus-%d", bits),
			Base:  base,
			Exp:   exp,
			N:     n,
		})
	}
	return cases, nil
}

// runBenchmark times every engine across the modulus sweep, either under
// the live dashboard (--tui) or as a spinner-then-table run, and returns
// the sweep's agreement verdict as the exit code.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	cases, err := benchmarkCases()
	if err != nil {
		return a.fail(err)
	}
	engines := orchestration.DefaultEngines(a.observer())

	if a.Config.TUI {
		return tui.Run(ctx, engines, cases)
	}

	var spin *spinner.Spinner
	if !a.Config.Quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(a.ErrWriter))
		spin.Suffix = fmt.Sprintf(" benchmarking %d cases across %d engines...", len(cases), len(engines))
		spin.Start()
	}

	results := orchestration.ExecuteSweep(ctx, engines, cases, nil)

	if spin != nil {
		spin.Stop()
	}

	rows := displayBenchmarkRows(results)
	clipresent.DisplayBenchmark(out, rows)
	if a.Config.OutputFile != "" {
		if err := clipresent.WriteBenchmarkToFile(a.Config.OutputFile, rows); err != nil {
			return a.fail(err)
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "Results saved to %s\n", a.Config.OutputFile)
		}
	}
	return a.reportAgreement(out, results)
}

// reportAgreement prints any cross-engine mismatches and maps the sweep to
// an exit code. A mismatch between engines computing the same function is
// fatal, never papered over.
func (a *Application) reportAgreement(out io.Writer, results []orchestration.Result) int {
	code, mismatches := orchestration.AnalyzeAgreement(results)
	for _, m := range mismatches {
		a.Logger.Error().Str("case", m.CaseLabel).Str("engine_a", m.EngineA).Str("engine_b", m.EngineB).Msg("engine results disagree")
		fmt.Fprintf(a.ErrWriter, "Error (%s): %s\n", apperrors.InternalInvariantBroken, m)
	}
	if code == apperrors.ExitSuccess && !a.Config.Quiet {
		fmt.Fprintln(out, "All engines agree.")
	}
	return code
}
