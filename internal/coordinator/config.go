package coordinator

import (
	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultCacheCapacity = 4
)

// Config encapsulates all tunables for Coordinator construction.
type Config struct {
	// Loader performs actual component load/unload. Required.
	Loader ResourceLoader
	// Estimator predicts component footprints. Required.
	Estimator SizeEstimator
	// Scorer rates component compatibility. Optional; nil disables scoring.
	Scorer CompatibilityScorer
	// BudgetBytes is the global memory ceiling (0 = unlimited).
	BudgetBytes uint64
	// CacheCapacity is the default max concurrently-active suites.
	CacheCapacity int
	// Publisher receives lifecycle events. Optional.
	Publisher EventPublisher
	// Logger for structured logs. Optional; defaults to a disabled logger.
	Logger *zerolog.Logger
}

// NewWithConfig constructs a Coordinator from Config, applying defaults.
func NewWithConfig(cfg Config) *Coordinator {
	capacity := cfg.CacheCapacity
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	pub := cfg.Publisher
	if pub == nil {
		pub = noopPublisher{}
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	c := &Coordinator{
		loader:    cfg.Loader,
		estimator: cfg.Estimator,
		scorer:    cfg.Scorer,
		budget:    NewBudgetTracker(cfg.BudgetBytes),
		capacity:  capacity,
		suites:    make(map[string]*suite),
		pool:      make(map[string]*ComponentHandle),
		inflight:  make(map[string]struct{}),
		publisher: pub,
		log:       log,
	}
	c.registry = NewSuiteRegistry(cfg.Loader, cfg.Estimator, cfg.Scorer, cfg.BudgetBytes, capacity)
	c.startTime = timeNow()
	return c
}
