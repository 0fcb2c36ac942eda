package cli

import (
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/mpvec/internal/verify"
)

// MockSpinner records spinner lifecycle calls for assertions.
type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func TestProgressState(t *testing.T) {
	t.Parallel()

	ps := NewProgressState(4)

	if avg := ps.CalculateAverage(); avg != 0.0 {
		t.Errorf("initial average = %f, want 0.0", avg)
	}

	ps.Update(0, 1.0)
	ps.Update(1, 0.5)
	ps.Update(2, 0.5)
	// index 3 stays at 0.0

	if avg := ps.CalculateAverage(); math.Abs(avg-0.5) > 1e-9 {
		t.Errorf("average = %f, want 0.5", avg)
	}

	// Out-of-range updates must be ignored, not panic.
	ps.Update(-1, 1.0)
	ps.Update(4, 1.0)
	if avg := ps.CalculateAverage(); math.Abs(avg-0.5) > 1e-9 {
		t.Errorf("average after invalid updates = %f, want 0.5", avg)
	}
}

func TestProgressStateZeroKernels(t *testing.T) {
	t.Parallel()

	ps := NewProgressState(0)
	if avg := ps.CalculateAverage(); avg != 0.0 {
		t.Errorf("average of zero kernels = %f, want 0.0", avg)
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress float64
		length   int
		filled   int
	}{
		{"empty", 0.0, 10, 0},
		{"half", 0.5, 10, 5},
		{"full", 1.0, 10, 10},
		{"clamped above", 1.5, 10, 10},
		{"clamped below", -0.5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bar := progressBar(tt.progress, tt.length)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled cells = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "░"); got != tt.length-tt.filled {
				t.Errorf("empty cells = %d, want %d", got, tt.length-tt.filled)
			}
		})
	}
}

func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	var wg sync.WaitGroup
	wg.Add(1)

	progressChan := make(chan verify.ProgressUpdate)

	go func() {
		progressChan <- verify.ProgressUpdate{Index: 0, Fraction: 0.5}
		time.Sleep(10 * time.Millisecond)
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 1, io.Discard)
	wg.Wait()

	if !mockS.started {
		t.Error("spinner should have started")
	}
	if !mockS.stopped {
		t.Error("spinner should have stopped")
	}
}

func TestDisplayProgress_ZeroKernels(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan verify.ProgressUpdate)
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
	// Must return immediately without starting a spinner.
}

func TestCLIProgressReporterImplementsInterface(t *testing.T) {
	var _ verify.ProgressReporter = CLIProgressReporter{}
}
