package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. It shows microseconds
// for durations below a millisecond, milliseconds below a second, and
// the default string representation otherwise, which reads better for
// the short per-kernel timings the harness reports.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Throughput renders a words-per-second rate with a unit prefix.
func Throughput(words uint64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}
	rate := float64(words) / d.Seconds()
	switch {
	case rate >= 1e9:
		return fmt.Sprintf("%.2f Gw/s", rate/1e9)
	case rate >= 1e6:
		return fmt.Sprintf("%.2f Mw/s", rate/1e6)
	case rate >= 1e3:
		return fmt.Sprintf("%.2f Kw/s", rate/1e3)
	default:
		return fmt.Sprintf("%.0f w/s", rate)
	}
}
