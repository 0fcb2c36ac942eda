// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummary], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatVerdict].

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/mpvec/internal/config"
	apperrors "github.com/agbru/mpvec/internal/errors"
	"github.com/agbru/mpvec/internal/format"
	"github.com/agbru/mpvec/internal/ui"
	"github.com/agbru/mpvec/internal/verify"
)

// DisplaySweepConfig prints the parameters of the upcoming run.
func DisplaySweepConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%sSweep configuration%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Kernels:  %s%s%s\n", ui.ColorPrimary(), cfg.Kernels, ui.ColorReset())
	fmt.Fprintf(out, "  Rounds:   %d per kernel\n", cfg.Rounds)
	fmt.Fprintf(out, "  Lengths:  %d..%d words\n", cfg.MinWords, cfg.MaxWords)
	fmt.Fprintf(out, "  Seed:     %d\n", cfg.Seed)
	fmt.Fprintf(out, "  Workers:  %d\n", cfg.Workers)
	fmt.Fprintf(out, "  Timeout:  %s\n\n", cfg.Timeout)
}

// DisplaySummary prints the per-kernel result table followed by the
// verdict line. Uses manual padding so ANSI color codes do not skew
// the column alignment.
func DisplaySummary(results []verify.SweepResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Sweep Summary ---\n")

	maxNameLen := len("Kernel")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if d := format.Duration(res.Duration); len(d) > maxDurationLen {
			maxDurationLen = len(d)
		}
	}

	fmt.Fprintf(out, "%sKernel%s%s   %sDuration%s%s   %sThroughput%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Kernel")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		switch {
		case res.Err == nil:
			status = fmt.Sprintf("%s✅ %d rounds%s", ui.ColorGreen(), res.Rounds, ui.ColorReset())
		case apperrors.IsContextError(res.Err):
			status = fmt.Sprintf("%s⏱ interrupted after %d rounds%s", ui.ColorYellow(), res.Rounds, ui.ColorReset())
		default:
			status = fmt.Sprintf("%s❌ %v%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := format.Duration(res.Duration)
		throughput := format.Throughput(res.Words, res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %-10s   %s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			throughput,
			status)
	}

	fmt.Fprintf(out, "\n%s\n", FormatVerdict(results))
}

// DisplayQuietSummary prints only the verdict line, for scripting.
func DisplayQuietSummary(results []verify.SweepResult, out io.Writer) {
	fmt.Fprintln(out, verdictText(results))
}

// FormatVerdict returns the colorized one-line verdict for a sweep.
func FormatVerdict(results []verify.SweepResult) string {
	failed := countFailures(results)
	if failed == 0 {
		return fmt.Sprintf("%s%s✅ %s%s", ui.ColorBold(), ui.ColorGreen(), verdictText(results), ui.ColorReset())
	}
	return fmt.Sprintf("%s%s❌ %s%s", ui.ColorBold(), ui.ColorRed(), verdictText(results), ui.ColorReset())
}

// verdictText returns the plain, uncolored verdict.
func verdictText(results []verify.SweepResult) string {
	failed := countFailures(results)
	if failed == 0 {
		return fmt.Sprintf("all %d kernels match the oracle", len(results))
	}
	return fmt.Sprintf("%d of %d kernels diverged from the oracle", failed, len(results))
}

func countFailures(results []verify.SweepResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}

// padRight returns s followed by spaces up to the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
