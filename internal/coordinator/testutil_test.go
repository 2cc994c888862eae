package coordinator

import (
	"context"
	"sync"
	"testing"

	"suited/pkg/types"
)

// fakeLoader is an in-memory ResourceLoader for tests. Component behavior is
// keyed by component name.
type fakeLoader struct {
	mu       sync.Mutex
	sizes    map[string]uint64  // actual size returned by Load
	invalid  map[string]string  // components failing Validate, with message
	failLoad map[string]error   // components failing Load
	gate     map[string]chan struct{} // Load blocks on the channel when present

	started chan string // receives component names as loads begin, when set
	loads   []string    // component names in Load order
	unloads []string    // component names in Unload order
}

func newFakeLoader(sizes map[string]uint64) *fakeLoader {
	return &fakeLoader{
		sizes:    sizes,
		invalid:  make(map[string]string),
		failLoad: make(map[string]error),
		gate:     make(map[string]chan struct{}),
	}
}

func (f *fakeLoader) Validate(ctx context.Context, spec types.ComponentSpec) ValidationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, bad := f.invalid[spec.Name]; bad {
		return ValidationResult{Errors: []string{msg}}
	}
	return ValidationResult{Valid: true, EstimatedSize: f.sizes[spec.Name]}
}

func (f *fakeLoader) Load(ctx context.Context, spec types.ComponentSpec) (LoadResult, error) {
	f.mu.Lock()
	gate := f.gate[spec.Name]
	started := f.started
	f.mu.Unlock()
	if started != nil {
		started <- spec.Name
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return LoadResult{}, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, bad := f.failLoad[spec.Name]; bad {
		return LoadResult{}, err
	}
	f.loads = append(f.loads, spec.Name)
	return LoadResult{SizeBytes: f.sizes[spec.Name]}, nil
}

func (f *fakeLoader) Unload(ctx context.Context, spec types.ComponentSpec, sizeBytes uint64) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unloads = append(f.unloads, spec.Name)
	return sizeBytes
}

func (f *fakeLoader) loadOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.loads...)
}

func (f *fakeLoader) unloadOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.unloads...)
}

// fixedEstimator returns per-component estimates with a fallback default.
type fixedEstimator struct {
	sizes map[string]uint64
	def   uint64
}

func (e fixedEstimator) Estimate(role types.Role, spec types.ComponentSpec) uint64 {
	if v, ok := e.sizes[spec.Name]; ok {
		return v
	}
	if e.def > 0 {
		return e.def
	}
	return 1
}

// constScorer always returns the same compatibility score.
type constScorer struct{ score float64 }

func (s constScorer) Score(a, b types.ComponentSpec) float64 { return s.score }

// newTestCoordinator builds a coordinator around a fakeLoader whose actual
// sizes double as the estimates.
func newTestCoordinator(t *testing.T, budget uint64, capacity int, sizes map[string]uint64) (*Coordinator, *fakeLoader) {
	t.Helper()
	fl := newFakeLoader(sizes)
	c := NewWithConfig(Config{
		Loader:        fl,
		Estimator:     fixedEstimator{sizes: sizes},
		BudgetBytes:   budget,
		CacheCapacity: capacity,
	})
	return c, fl
}

// spec builds a ComponentSpec with a synthetic source.
func spec(name string) types.ComponentSpec {
	return types.ComponentSpec{Name: name, Source: "mem://" + name}
}

// baseOnlySuite declares a suite with a single base component.
func baseOnlySuite(name, component string) types.SuiteConfig {
	return types.SuiteConfig{Name: name, Base: spec(component)}
}

// register registers cfg or fails the test.
func register(t *testing.T, c *Coordinator, cfg types.SuiteConfig) {
	t.Helper()
	if err := c.RegisterSuite(context.Background(), cfg); err != nil {
		t.Fatalf("register %s: %v", cfg.Name, err)
	}
}

// mustLoad loads a suite or fails the test.
func mustLoad(t *testing.T, c *Coordinator, name string) {
	t.Helper()
	if err := c.LoadSuite(context.Background(), name, false); err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
}

// poolLoadedBytes sums SizeBytes over all handles in Loaded state.
func poolLoadedBytes(c *Coordinator) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total uint64
	for _, h := range c.pool {
		if h.State == StateLoaded {
			total += h.SizeBytes
		}
	}
	return total
}
