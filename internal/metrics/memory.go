package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	TotalAlloc   uint64 // cumulative bytes allocated
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryDelta summarizes allocation activity between two snapshots.
// Sweeps over pre-allocated digit vectors should show a near-zero
// AllocBytes; growth here usually means a kernel or checker allocates
// per round.
type MemoryDelta struct {
	AllocBytes uint64 // bytes allocated during the interval
	GCCycles   uint32 // GC cycles completed during the interval
	PauseNs    uint64 // GC pause time accumulated during the interval
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct {
	baseline MemorySnapshot
}

// NewMemoryCollector creates a memory collector and records the current
// reading as its baseline.
func NewMemoryCollector() *MemoryCollector {
	mc := &MemoryCollector{}
	mc.baseline = mc.Snapshot()
	return mc
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// DeltaSinceBaseline reports allocation activity since the collector
// was created.
func (mc *MemoryCollector) DeltaSinceBaseline() MemoryDelta {
	return Delta(mc.baseline, mc.Snapshot())
}

// Delta computes the allocation activity between two snapshots. The
// cumulative counters never decrease, so the subtraction is safe as
// long as before was taken first.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		GCCycles:   after.NumGC - before.NumGC,
		PauseNs:    after.PauseTotalNs - before.PauseTotalNs,
	}
}
