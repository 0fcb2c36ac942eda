package app

import (
	"fmt"
	"io"
)

// Version is the harness version, overridable at build time with
// -ldflags "-X github.com/agbru/mpvec/internal/app.Version=...".
var Version = "1.0.0"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "mpvec %s\n", Version)
}
