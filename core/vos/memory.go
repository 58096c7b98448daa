package vos

import "runtime"

// RuntimeMemory reports the Go runtime's own heap as the machine's memory.
type RuntimeMemory struct {
	readStats func(*runtime.MemStats)
	gc        func()
}

var _ Memory = (*RuntimeMemory)(nil)

// NewRuntimeMemory creates a Memory backed by the running process.
func NewRuntimeMemory() *RuntimeMemory {
	return &RuntimeMemory{
		readStats: runtime.ReadMemStats,
		gc:        runtime.GC,
	}
}

func (m *RuntimeMemory) stats() runtime.MemStats {
	var ms runtime.MemStats
	m.readStats(&ms)
	return ms
}

// Available returns the bytes obtained from the OS that the heap isn't using.
func (m *RuntimeMemory) Available() (uint64, error) {
	ms := m.stats()
	if ms.HeapInuse > ms.Sys {
		return 0, nil
	}
	return ms.Sys - ms.HeapInuse, nil
}

// Used returns the bytes of allocated heap objects.
func (m *RuntimeMemory) Used() (uint64, error) {
	return m.stats().HeapAlloc, nil
}

// Collect forces a garbage collection and returns the number of heap objects
// it freed.
func (m *RuntimeMemory) Collect() (int, error) {
	before := m.stats().Frees
	m.gc()
	after := m.stats().Frees
	if after < before {
		return 0, nil
	}
	return int(after - before), nil
}
