package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

var sink []byte

func TestMemorySnapshot_Since(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	sink = make([]byte, 1024*1024) // 1 MB

	delta := mc.Snapshot().Since(before)
	if delta.Allocated < 1024*1024 {
		t.Errorf("Allocated = %d, want at least 1 MiB", delta.Allocated)
	}
	if delta.PeakSys == 0 {
		t.Error("PeakSys should be > 0")
	}
}
