package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// MemoryDelta is the difference between two snapshots taken around a run.
type MemoryDelta struct {
	Allocated uint64 // bytes allocated between the snapshots
	GCCycles  uint32 // GC cycles completed between the snapshots
	PauseNs   uint64 // GC pause time accumulated between the snapshots
	PeakSys   uint64 // Sys at the later snapshot
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// Since returns the change from before to s. Counters are monotonic, so
// the subtraction cannot underflow when before was taken first.
func (s MemorySnapshot) Since(before MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated: s.TotalAlloc - before.TotalAlloc,
		GCCycles:  s.NumGC - before.NumGC,
		PauseNs:   s.PauseTotalNs - before.PauseTotalNs,
		PeakSys:   s.Sys,
	}
}
