package config

import (
	"flag"
	"io"
	"runtime"
	"time"

	apperrors "github.com/agbru/mpvec/internal/errors"
)

// EnvPrefix is prepended to every environment variable this package
// reads, e.g. MPVEC_ROUNDS.
const EnvPrefix = "MPVEC_"

// Default sweep parameters. Vector sizes deliberately straddle the
// kernels' interesting boundaries (single word, the squaring unroll,
// the strategy thresholds) without making a default run slow.
const (
	DefaultRounds   = 2000
	DefaultMinWords = 1
	DefaultMaxWords = 256
	DefaultTimeout  = 2 * time.Minute
)

// AppConfig holds the full configuration of a verification run.
type AppConfig struct {
	// Rounds is the number of randomized rounds per kernel.
	Rounds int
	// MinWords and MaxWords bound the vector length of each round.
	MinWords int
	MaxWords int
	// Seed is the base RNG seed; 0 derives one from the clock.
	Seed int64
	// Workers is the number of concurrent sweep goroutines.
	Workers int
	// Kernels selects which kernels to sweep ("all" or a comma list).
	Kernels string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// MetricsAddr, when non-empty, serves Prometheus metrics on this
	// address for the duration of the run.
	MetricsAddr string
	// Quiet suppresses everything but the final one-line verdict.
	Quiet bool
	// Verbose adds the memory and system usage report.
	Verbose bool
	// JSONLogs switches structured logs from console to JSON output.
	JSONLogs bool
}

// DefaultWorkers estimates a worker count from the host's core count.
// The kernels are memory-bandwidth bound, so going much beyond the
// physical parallelism only adds scheduling noise.
func DefaultWorkers() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 8:
		return numCPU - 1
	default:
		return 8
	}
}

// ParseConfig parses command-line arguments into an AppConfig,
// applying environment variable overrides for flags that were not set
// explicitly, and validates the result.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Rounds, "rounds", DefaultRounds, "randomized rounds per kernel")
	fs.IntVar(&cfg.MinWords, "min-words", DefaultMinWords, "minimum vector length in words")
	fs.IntVar(&cfg.MaxWords, "max-words", DefaultMaxWords, "maximum vector length in words")
	fs.Int64Var(&cfg.Seed, "seed", 0, "base RNG seed (0 = derive from clock)")
	fs.IntVar(&cfg.Workers, "workers", 0, "concurrent sweep workers (0 = auto)")
	fs.StringVar(&cfg.Kernels, "kernels", "all", "comma-separated kernel names, or 'all'")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "overall run timeout")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the final verdict")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "include memory and system usage in the report")
	fs.BoolVar(&cfg.JSONLogs, "json-logs", false, "emit logs as JSON instead of console format")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for internally consistent values.
func (c AppConfig) Validate() error {
	if c.Rounds <= 0 {
		return apperrors.ValidationError{Field: "rounds", Message: "must be positive"}
	}
	if c.MinWords < 1 {
		return apperrors.ValidationError{Field: "min-words", Message: "must be at least 1"}
	}
	if c.MaxWords < c.MinWords {
		return apperrors.ValidationError{Field: "max-words", Message: "must be >= min-words"}
	}
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: "must not be negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	return nil
}
