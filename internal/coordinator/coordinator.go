package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"suited/pkg/types"
)

// timeNow is swappable in tests that need deterministic recency ordering.
var timeNow = time.Now

// Coordinator orchestrates registration, memory-budgeted loading/unloading,
// and LRU eviction of component suites. All mutations of suites, pool, and
// budget accounting are serialized through mu; loader calls are awaited with
// the lock released.
type Coordinator struct {
	mu        sync.Mutex
	registry  *SuiteRegistry
	budget    *BudgetTracker
	capacity  int
	suites    map[string]*suite          // active suites by name
	pool      map[string]*ComponentHandle // handles by id
	inflight  map[string]struct{}        // suite names with a load in progress
	stats     Stats
	startTime time.Time

	loader    ResourceLoader
	estimator SizeEstimator
	scorer    CompatibilityScorer
	publisher EventPublisher
	log       zerolog.Logger
}

// RegisterSuite validates and stores a suite configuration. On failure the
// registry is unchanged and the returned error carries every problem found
// (see ValidationProblems).
func (c *Coordinator) RegisterSuite(ctx context.Context, cfg types.SuiteConfig) error {
	if err := c.registry.Register(ctx, cfg); err != nil {
		c.log.Warn().Str("suite", cfg.Name).Err(err).Msg("suite registration rejected")
		return err
	}
	c.log.Info().Str("suite", cfg.Name).Msg("suite registered")
	c.publisher.Publish(Event{Name: "suite_registered", Suite: cfg.Name})
	return nil
}

// ListSuites returns the registered suite configs.
func (c *Coordinator) ListSuites() []types.SuiteConfig {
	return c.registry.Configs()
}

// Ready reports whether the coordinator can accept work. It is ready once
// constructed; readiness exists for the serving layer's /readyz.
func (c *Coordinator) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loader != nil && c.estimator != nil
}

// Active reports whether the named suite is currently loaded.
func (c *Coordinator) Active(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.suites[name]
	return ok
}

// UsedBytes returns the bytes currently held by loaded components.
func (c *Coordinator) UsedBytes() uint64 { return c.budget.Used() }

// effectiveCapacity resolves the cache capacity in force after loading the
// named suite: a per-config override when set, else the coordinator default.
func (c *Coordinator) effectiveCapacity(cfg types.SuiteConfig) int {
	if cfg.CacheCapacity > 0 {
		return cfg.CacheCapacity
	}
	return c.capacity
}
