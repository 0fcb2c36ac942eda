package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/mpvec/internal/verify"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// 200ms keeps the terminal quiet without looking stalled.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal
// spinner. It decouples DisplayProgress from a specific spinner
// implementation, which makes the progress loop testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to keep the two in sync
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState aggregates the progress of concurrent kernel sweeps.
// It keeps the per-kernel fractions and computes the average, which is
// what the single consolidated progress bar displays.
type ProgressState struct {
	progresses []float64
	numKernels int
}

// NewProgressState creates a progress state tracking numKernels sweeps.
func NewProgressState(numKernels int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numKernels),
		numKernels: numKernels,
	}
}

// Update records a new progress value for one kernel. Out-of-range
// indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked
// kernels, 0.0 to 1.0.
func (ps *ProgressState) CalculateAverage() float64 {
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	if ps.numKernels == 0 {
		return 0.0
	}
	return total / float64(ps.numKernels)
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress consumes sweep progress updates and renders a
// spinner with a consolidated progress bar until the channel closes.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan verify.ProgressUpdate, numKernels int, out io.Writer) {
	defer wg.Done()

	if numKernels == 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numKernels)
	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	render := func() {
		avg := state.CalculateAverage()
		sp.UpdateSuffix(fmt.Sprintf(" %s %5.1f%%", progressBar(avg, ProgressBarWidth), avg*100))
	}
	render()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			state.Update(update.Index, update.Fraction)
		case <-ticker.C:
			render()
		}
	}
}

// CLIProgressReporter implements verify.ProgressReporter for terminal
// output with a spinner and progress bar.
type CLIProgressReporter struct{}

var _ verify.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for running sweeps.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan verify.ProgressUpdate, numKernels int, out io.Writer) {
	DisplayProgress(wg, progressChan, numKernels, out)
}
