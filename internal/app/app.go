// Package app wires configuration, logging, the metrics server, and
// the verification sweep into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/mpvec/internal/config"
	"github.com/agbru/mpvec/internal/logging"
	"github.com/agbru/mpvec/internal/ui"
)

// Application represents the mpvec harness instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	app := &Application{ErrWriter: errWriter}

	programName := "mpvec"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the verification sweep and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	ui.InitTheme(a.Config.Quiet)

	logger := a.newLogger()
	return a.runSweep(ctx, out, logger)
}

// newLogger builds the run's logger from the output configuration.
func (a *Application) newLogger() logging.Logger {
	if a.Config.JSONLogs {
		return logging.NewLogger(a.ErrWriter, "mpvec")
	}
	return logging.NewDefaultLogger()
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
