package profiler

import "runtime"

// Stats is a snapshot of runtime counters for debug overlays and logs.
type Stats struct {
	HeapBytes  uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

func ReadStats() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapBytes:  m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}
