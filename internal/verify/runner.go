package verify

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/mpvec/internal/errors"
)

// SweepOptions configures a verification sweep.
type SweepOptions struct {
	// Rounds is the number of randomized rounds per kernel.
	Rounds int
	// MinWords and MaxWords bound the vector length of each round.
	MinWords int
	MaxWords int
	// Seed is the base RNG seed; each kernel derives its own stream
	// from it so failures replay deterministically per kernel.
	Seed int64
	// Workers caps the number of kernels swept concurrently.
	Workers int
}

// SweepResult is the outcome of one kernel's sweep.
type SweepResult struct {
	// Name is the kernel identifier.
	Name string
	// Rounds is the number of rounds actually completed.
	Rounds int
	// Words is the total number of words processed.
	Words uint64
	// Duration is the wall time the sweep took.
	Duration time.Duration
	// Err is the first failure, nil on success.
	Err error
}

// ProgressUpdate reports one kernel's advancement through its rounds.
type ProgressUpdate struct {
	// Index identifies the kernel within the sweep.
	Index int
	// Fraction is the completed share of rounds, 0.0 to 1.0.
	Fraction float64
}

// ProgressBufferMultiplier sizes the progress channel per kernel. A
// larger buffer reduces the likelihood of blocking sweep goroutines
// when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// progressGranularity is how many updates each kernel emits across its
// sweep; more would only burn channel traffic.
const progressGranularity = 100

// A ProgressReporter consumes progress updates for display. The
// NullProgressReporter discards them for quiet mode.
type ProgressReporter interface {
	// DisplayProgress drains the channel until it closes, then marks
	// wg done.
	DisplayProgress(wg *sync.WaitGroup, ch <-chan ProgressUpdate, numKernels int, out io.Writer)
}

// NullProgressReporter silently drains progress updates.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, ch <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range ch {
	}
}

// An Observer receives sweep telemetry as it happens. Implementations
// must be safe for concurrent use.
type Observer interface {
	// RoundCompleted records one finished round of the named kernel
	// and the number of words it processed.
	RoundCompleted(kernel string, words int)
	// WorkerActive tracks sweep goroutine starts (+1) and stops (-1).
	WorkerActive(delta int)
}

// NullObserver discards all telemetry.
type NullObserver struct{}

// RoundCompleted implements Observer.
func (NullObserver) RoundCompleted(string, int) {}

// WorkerActive implements Observer.
func (NullObserver) WorkerActive(int) {}

// ExecuteSweeps runs every checker's sweep concurrently and collects
// per-kernel results.
//
// Kernels are independent, so they fan out on an errgroup limited to
// opts.Workers goroutines; a kernel failure stops that kernel's sweep
// but not the others, and context cancellation stops everything. The
// returned slice preserves checker order.
func ExecuteSweeps(ctx context.Context, checkers []Checker, opts SweepOptions, reporter ProgressReporter, out io.Writer, obs Observer) []SweepResult {
	if obs == nil {
		obs = NullObserver{}
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	results := make([]SweepResult, len(checkers))
	progressChan := make(chan ProgressUpdate, len(checkers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(checkers), out)

	for i, checker := range checkers {
		idx, c := i, checker
		g.Go(func() error {
			obs.WorkerActive(+1)
			defer obs.WorkerActive(-1)

			startTime := time.Now()
			results[idx] = runSweep(ctx, idx, c, opts, progressChan, obs)
			results[idx].Duration = time.Since(startTime)
			// Sweep failures are reported per kernel, never used to
			// cancel sibling sweeps.
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// runSweep executes one kernel's rounds on its own deterministic RNG
// stream.
func runSweep(ctx context.Context, idx int, c Checker, opts SweepOptions, progress chan<- ProgressUpdate, obs Observer) SweepResult {
	kernelSeed := opts.Seed + int64(idx)
	rng := rand.New(rand.NewSource(kernelSeed))
	res := SweepResult{Name: c.Name}

	every := opts.Rounds / progressGranularity
	if every == 0 {
		every = 1
	}

	for round := 0; round < opts.Rounds; round++ {
		if round%every == 0 {
			if err := ctx.Err(); err != nil {
				res.Err = err
				return res
			}
			select {
			case progress <- ProgressUpdate{Index: idx, Fraction: float64(round) / float64(opts.Rounds)}:
			default:
			}
		}

		n := opts.MinWords
		if opts.MaxWords > opts.MinWords {
			n += rng.Intn(opts.MaxWords - opts.MinWords + 1)
		}
		if err := c.Round(rng, n); err != nil {
			res.Err = apperrors.MismatchError{Kernel: c.Name, Seed: kernelSeed, Detail: err.Error()}
			return res
		}

		res.Rounds++
		res.Words += uint64(n)
		obs.RoundCompleted(c.Name, n)
	}

	// The terminal update is sent blocking: reporters drain the channel
	// until it closes, so this cannot deadlock, and the UI must see the
	// 100% mark.
	progress <- ProgressUpdate{Index: idx, Fraction: 1.0}
	return res
}

// FirstFailure returns the most significant failure across results:
// mismatches outrank context errors, which outrank nothing.
func FirstFailure(results []SweepResult) error {
	var ctxErr error
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if apperrors.IsContextError(r.Err) {
			if ctxErr == nil {
				ctxErr = r.Err
			}
			continue
		}
		return r.Err
	}
	return ctxErr
}
