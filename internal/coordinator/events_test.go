package coordinator

import (
	"context"
	"testing"
)

func TestLifecycleEventsPublished(t *testing.T) {
	sizes := map[string]uint64{"b": 100}
	fl := newFakeLoader(sizes)
	pub := NewMemoryPublisher()
	c := NewWithConfig(Config{
		Loader:        fl,
		Estimator:     fixedEstimator{sizes: sizes},
		BudgetBytes:   1000,
		CacheCapacity: 4,
		Publisher:     pub,
	})

	register(t, c, baseOnlySuite("s", "b"))
	mustLoad(t, c, "s")
	if err := c.UnloadSuite(context.Background(), "s"); err != nil {
		t.Fatalf("unload: %v", err)
	}

	want := []string{"suite_registered", "load_start", "load_ready", "unload_start", "unload_done"}
	events := pub.Events()
	if len(events) != len(want) {
		t.Fatalf("events=%d, want %d: %+v", len(events), len(want), events)
	}
	for i, name := range want {
		if events[i].Name != name {
			t.Fatalf("event[%d]=%s, want %s", i, events[i].Name, name)
		}
	}
	if events[2].Fields["components"] != 1 {
		t.Fatalf("load_ready fields=%v", events[2].Fields)
	}
}
