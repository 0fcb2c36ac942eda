package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/mpvec/internal/cli"
	apperrors "github.com/agbru/mpvec/internal/errors"
	"github.com/agbru/mpvec/internal/logging"
	"github.com/agbru/mpvec/internal/metrics"
	"github.com/agbru/mpvec/internal/server"
	"github.com/agbru/mpvec/internal/sysmon"
	"github.com/agbru/mpvec/internal/verify"
)

// runSweep orchestrates a full verification run: lifecycle setup, the
// optional metrics server, the sweep itself, and the report.
func (a *Application) runSweep(ctx context.Context, out io.Writer, logger logging.Logger) int {
	// Lifecycle: overall timeout plus SIGINT/SIGTERM.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	checkers, err := verify.Select(a.Config.Kernels)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	var observer verify.Observer = verify.NullObserver{}
	var metricsServer *server.Server
	if a.Config.MetricsAddr != "" {
		metricsServer = server.NewServer(a.Config.MetricsAddr, logger)
		observer = metricsServer.Metrics()
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Error("metrics server failed", err)
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error("metrics server shutdown failed", err)
			}
		}()
	}

	if !a.Config.Quiet {
		cli.DisplaySweepConfig(a.Config, out)
	}

	// Quiet mode swaps the spinner for a silent drain.
	var reporter verify.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = verify.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	memCollector := metrics.NewMemoryCollector()

	opts := verify.SweepOptions{
		Rounds:   a.Config.Rounds,
		MinWords: a.Config.MinWords,
		MaxWords: a.Config.MaxWords,
		Seed:     a.Config.Seed,
		Workers:  a.Config.Workers,
	}
	results := verify.ExecuteSweeps(ctx, checkers, opts, reporter, progressOut, observer)

	if a.Config.Quiet {
		cli.DisplayQuietSummary(results, out)
	} else {
		cli.DisplaySummary(results, out)
	}

	if a.Config.Verbose && !a.Config.Quiet {
		a.displayResourceReport(memCollector, out)
	}

	if err := verify.FirstFailure(results); err != nil {
		logger.Error("sweep failed", err, logging.Int("kernels", len(results)))
		return apperrors.ExitCodeFor(err)
	}

	logger.Debug("sweep completed",
		logging.Int("kernels", len(results)),
		logging.Uint64("words", totalWords(results)))
	return apperrors.ExitSuccess
}

// displayResourceReport prints process allocation activity and a
// system usage snapshot.
func (a *Application) displayResourceReport(mc *metrics.MemoryCollector, out io.Writer) {
	delta := mc.DeltaSinceBaseline()
	sys := sysmon.Sample()

	fmt.Fprintf(out, "\nResource usage:\n")
	fmt.Fprintf(out, "  Allocated:  %.2f MiB\n", float64(delta.AllocBytes)/(1024*1024))
	fmt.Fprintf(out, "  GC cycles:  %d\n", delta.GCCycles)
	if delta.PauseNs > 0 {
		fmt.Fprintf(out, "  GC pause:   %.2fms\n", float64(delta.PauseNs)/1e6)
	}
	fmt.Fprintf(out, "  CPU:        %.1f%%\n", sys.CPUPercent)
	fmt.Fprintf(out, "  Memory:     %.1f%%\n", sys.MemPercent)
	fmt.Fprintf(out, "  Goroutines: %d\n", sys.Goroutines)
}

func totalWords(results []verify.SweepResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Words
	}
	return total
}
