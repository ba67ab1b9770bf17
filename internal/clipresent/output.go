package clipresent

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/rsa4096/internal/ui"
)

const (
	// TruncationLimit is the digit threshold above which a decimal value is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges is the number of decimal digits shown at each end of a
	// truncated value.
	DisplayEdges = 25
	// HexDisplayEdges is the number of hex characters shown at each end of a
	// truncated value.
	HexDisplayEdges = 40
)

// CheckResult is the display-layer shape of a self-check outcome. It
// mirrors bigint.CheckResult and montgomery.CheckResult field-for-field so
// callers can convert either without clipresent importing the core.
type CheckResult struct {
	Property string
	Passed   bool
	Detail   string
}

// TruncateDecimal shortens a decimal digit string longer than
// TruncationLimit to its first and last DisplayEdges digits, joined by an
// ellipsis marker noting the omitted digit count. Shorter strings pass
// through unchanged.
func TruncateDecimal(s string) string {
	return truncateMiddle(s, TruncationLimit, DisplayEdges)
}

// TruncateHex shortens a hex digit string longer than TruncationLimit to
// its first and last HexDisplayEdges characters. Shorter strings pass
// through unchanged.
func TruncateHex(s string) string {
	return truncateMiddle(s, TruncationLimit, HexDisplayEdges)
}

func truncateMiddle(s string, limit, edges int) string {
	if len(s) <= limit {
		return s
	}
	omitted := len(s) - 2*edges
	return fmt.Sprintf("%s...(%d digits omitted)...%s", s[:edges], omitted, s[len(s)-edges:])
}

// DisplayCheckResults writes a self-check battery's results as a table,
// one row per property, with a colored pass/fail marker.
func DisplayCheckResults(out io.Writer, title string, results []CheckResult) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintln(out, theme.Bold.Render(title))

	failed := 0
	for _, r := range results {
		mark := theme.Success.Render("PASS")
		if !r.Passed {
			mark = theme.Error.Render("FAIL")
			failed++
		}
		fmt.Fprintf(out, "  [%s] %s\n", mark, r.Property)
		if r.Detail != "" {
			fmt.Fprintf(out, "        %s\n", theme.Secondary.Render(r.Detail))
		}
	}

	summary := fmt.Sprintf("%d/%d checks passed", len(results)-failed, len(results))
	if failed == 0 {
		fmt.Fprintln(out, theme.Success.Render(summary))
	} else {
		fmt.Fprintln(out, theme.Error.Render(summary))
	}
}

// BenchmarkRow is one algorithm's timing result on one case in a
// comparison table.
type BenchmarkRow struct {
	Label     string
	Algorithm string
	BitLen    int
	Duration  time.Duration
	Err       error
}

// DisplayBenchmark writes a comparison table of BenchmarkRow entries.
func DisplayBenchmark(out io.Writer, rows []BenchmarkRow) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintln(out, theme.Underline.Render("Case                     Algorithm   BitLen   Duration   Status"))

	for _, r := range rows {
		duration := FormatExecutionDuration(r.Duration)
		status := theme.Success.Render("ok")
		if r.Err != nil {
			status = theme.Error.Render(fmt.Sprintf("error: %v", r.Err))
		}
		fmt.Fprintf(out, "%-24s %-11s %-8d %-10s %s\n",
			r.Label, theme.Primary.Render(r.Algorithm), r.BitLen, duration, status)
	}
}

// WriteBenchmarkToFile writes rows as an uncolored plain-text table to
// path, for the --output flag. Unlike DisplayBenchmark it never emits
// escape sequences, so the file stays grep-friendly.
func WriteBenchmarkToFile(path string, rows []BenchmarkRow) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-24s %-11s %-8s %-10s %s\n", "Case", "Algorithm", "BitLen", "Duration", "Status")
	for _, r := range rows {
		status := "ok"
		if r.Err != nil {
			status = fmt.Sprintf("error: %v", r.Err)
		}
		fmt.Fprintf(&sb, "%-24s %-11s %-8d %-10s %s\n",
			r.Label, r.Algorithm, r.BitLen, FormatExecutionDuration(r.Duration), status)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// FormatExecutionDuration renders a duration the way a human reads small
// timings: microseconds below a millisecond, milliseconds below a second,
// time.Duration's default string form otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
