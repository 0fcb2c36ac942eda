// Package verify cross-checks every arithmetic kernel against the
// math/big oracle with randomized, reproducible rounds. It coordinates
// concurrent sweep execution and aggregates per-kernel results,
// decoupled from presentation via the ProgressReporter and Observer
// interfaces.
package verify
