package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapReturnsStablePointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get(TickCount)
	b := m.Get(TickCount)
	if a != b {
		t.Fatal("expected same pointer for same key")
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}

	var keys []string
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })

	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	const workers = 32
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get(EventsApplied).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get(EventsApplied).Load(); got != workers*100 {
		t.Errorf("expected %d, got %d", workers*100, got)
	}
}

func TestAtomicFloatObserve(t *testing.T) {
	var f AtomicFloat
	if got := f.Observe(10, 0.5); got != 10 {
		t.Errorf("first observation should seed, got %f", got)
	}
	if got := f.Observe(20, 0.5); got != 15 {
		t.Errorf("expected 15, got %f", got)
	}
	f.Set(3)
	if f.Get() != 3 {
		t.Errorf("expected 3, got %f", f.Get())
	}
}

func TestRegistryValues(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(TickCount).Store(7)
	r.Floats.Get(TickDeltaMs).Set(50)

	v := r.Values()
	if v[TickCount] != 7 {
		t.Errorf("expected tick.count 7, got %f", v[TickCount])
	}
	if v[TickDeltaMs] != 50 {
		t.Errorf("expected tick.delta_ms 50, got %f", v[TickDeltaMs])
	}
	if r.TotalCount() != 2 {
		t.Errorf("expected 2 metrics, got %d", r.TotalCount())
	}
}
