package telemetry

import "runtime"

// MemorySnapshot holds a point-in-time memory reading for the benchmark
// dashboard's resource line. The arithmetic core performs no dynamic
// allocation (every BigUint is a fixed Cap-limb array), so this is purely
// informational about the CLI process as a whole.
type MemorySnapshot struct {
	HeapAlloc   uint64
	HeapSys     uint64
	NumGC       uint32
	HeapObjects uint64
}

// Snapshot reads current memory statistics.
func Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		HeapSys:     m.HeapSys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}
