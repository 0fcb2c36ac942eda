package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/mpvec/internal/config"
	"github.com/agbru/mpvec/internal/ui"
	"github.com/agbru/mpvec/internal/verify"
)

func plainTheme(t *testing.T) {
	t.Helper()
	original := ui.GetCurrentTheme()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
}

func TestDisplaySummary_AllPass(t *testing.T) {
	plainTheme(t)

	results := []verify.SweepResult{
		{Name: "addvv", Rounds: 2000, Words: 256000, Duration: 12 * time.Millisecond},
		{Name: "sqr", Rounds: 2000, Words: 256000, Duration: 45 * time.Millisecond},
	}

	var buf bytes.Buffer
	DisplaySummary(results, &buf)
	out := buf.String()

	for _, want := range []string{"addvv", "sqr", "Kernel", "Duration", "Throughput", "12ms", "45ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "all 2 kernels match the oracle") {
		t.Errorf("summary missing passing verdict:\n%s", out)
	}
}

func TestDisplaySummary_WithFailure(t *testing.T) {
	plainTheme(t)

	results := []verify.SweepResult{
		{Name: "addvv", Rounds: 2000, Words: 256000, Duration: 12 * time.Millisecond},
		{Name: "submulvvw", Rounds: 17, Duration: time.Millisecond,
			Err: errors.New("kernel \"submulvvw\" diverged from oracle (seed 43)")},
	}

	var buf bytes.Buffer
	DisplaySummary(results, &buf)
	out := buf.String()

	if !strings.Contains(out, "1 of 2 kernels diverged from the oracle") {
		t.Errorf("summary missing failing verdict:\n%s", out)
	}
	if !strings.Contains(out, "diverged from oracle") {
		t.Errorf("summary should carry the failure detail:\n%s", out)
	}
}

func TestDisplayQuietSummary(t *testing.T) {
	plainTheme(t)

	t.Run("pass", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayQuietSummary([]verify.SweepResult{{Name: "addvv"}}, &buf)
		if got := strings.TrimSpace(buf.String()); got != "all 1 kernels match the oracle" {
			t.Errorf("quiet output = %q", got)
		}
	})

	t.Run("fail", func(t *testing.T) {
		var buf bytes.Buffer
		DisplayQuietSummary([]verify.SweepResult{{Name: "addvv", Err: errors.New("boom")}}, &buf)
		if got := strings.TrimSpace(buf.String()); got != "1 of 1 kernels diverged from the oracle" {
			t.Errorf("quiet output = %q", got)
		}
	})
}

func TestDisplaySweepConfig(t *testing.T) {
	plainTheme(t)

	cfg := config.AppConfig{
		Rounds:   500,
		MinWords: 1,
		MaxWords: 64,
		Seed:     7,
		Workers:  4,
		Kernels:  "all",
		Timeout:  time.Minute,
	}

	var buf bytes.Buffer
	DisplaySweepConfig(cfg, &buf)
	out := buf.String()

	for _, want := range []string{"500", "1..64", "Seed:     7", "Workers:  4", "all"} {
		if !strings.Contains(out, want) {
			t.Errorf("config display missing %q:\n%s", want, out)
		}
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	if got := padRight("x", 3); got != "x   " {
		t.Errorf("padRight(x, 3) = %q", got)
	}
	if got := padRight("x", 0); got != "x" {
		t.Errorf("padRight(x, 0) = %q", got)
	}
	if got := padRight("x", -1); got != "x" {
		t.Errorf("padRight(x, -1) = %q", got)
	}
}
