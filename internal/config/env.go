// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form
// may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBool interprets the usual truthy/falsy spellings
// (case-insensitive); ok is false for anything else.
func parseBool(v string) (value, ok bool) {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the MPVEC_ prefix) to the CLI
// flag name(s) it corresponds to and a function that applies the env
// value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped as numeric, duration, string, and bool.
var envOverrides = []envOverride{
	// Numeric overrides
	{"ROUNDS", []string{"rounds"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rounds = parsed
		}
	}},
	{"MIN_WORDS", []string{"min-words"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MinWords = parsed
		}
	}},
	{"MAX_WORDS", []string{"max-words"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxWords = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},
	{"WORKERS", []string{"workers"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"KERNELS", []string{"kernels"}, func(c *AppConfig, v string) {
		c.Kernels = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},

	// Bool overrides
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.Quiet = parsed
		}
	}},
	{"VERBOSE", []string{"verbose"}, func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.Verbose = parsed
		}
	}},
	{"JSON_LOGS", []string{"json-logs"}, func(c *AppConfig, v string) {
		if parsed, ok := parseBool(v); ok {
			c.JSONLogs = parsed
		}
	}},
}

// applyEnvOverrides applies environment variable overrides for every
// flag the user did not set explicitly on the command line. CLI flags
// always win over the environment.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
