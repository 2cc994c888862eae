package coordinator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"suited/pkg/types"
)

// SuiteRegistry stores validated suite configurations by name. Registration
// is all-or-nothing: every referenced component must validate and the summed
// size estimates must fit the suite's memory budget, or nothing is stored.
type SuiteRegistry struct {
	mu        sync.RWMutex
	configs   map[string]types.SuiteConfig
	compat    map[string]map[string]float64
	loader    ResourceLoader
	estimator SizeEstimator
	scorer    CompatibilityScorer

	// defaults applied when a config leaves budget/capacity unset
	defaultBudget   uint64
	defaultCapacity int
}

// NewSuiteRegistry constructs a registry validating against the given
// collaborators. defaultBudget/defaultCapacity fill unset config fields.
func NewSuiteRegistry(loader ResourceLoader, estimator SizeEstimator, scorer CompatibilityScorer, defaultBudget uint64, defaultCapacity int) *SuiteRegistry {
	return &SuiteRegistry{
		configs:         make(map[string]types.SuiteConfig),
		compat:          make(map[string]map[string]float64),
		loader:          loader,
		estimator:       estimator,
		scorer:          scorer,
		defaultBudget:   defaultBudget,
		defaultCapacity: defaultCapacity,
	}
}

// Register validates cfg and stores it. Re-registering an existing name runs
// the full validation pass again before the old config is replaced.
func (r *SuiteRegistry) Register(ctx context.Context, cfg types.SuiteConfig) error {
	var problems []string
	if cfg.Name == "" {
		problems = append(problems, "suite name is required")
	}
	if cfg.Base.Source == "" {
		problems = append(problems, "base component source is required")
	}
	specs := cfg.Components()
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			problems = append(problems, fmt.Sprintf("%s component has no name", s.Role))
			continue
		}
		if seen[s.Name] {
			problems = append(problems, fmt.Sprintf("duplicate component name %q", s.Name))
		}
		seen[s.Name] = true
	}
	if len(problems) > 0 {
		return ErrConfigValidation(cfg.Name, problems)
	}

	// Fan out loader validation; each component is independent.
	results := make([]ValidationResult, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range specs {
		i, s := i, s
		g.Go(func() error {
			results[i] = r.loader.Validate(gctx, s)
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for i, s := range specs {
		res := results[i]
		if !res.Valid {
			for _, msg := range res.Errors {
				problems = append(problems, fmt.Sprintf("component %q: %s", s.Name, msg))
			}
			if len(res.Errors) == 0 {
				problems = append(problems, fmt.Sprintf("component %q: invalid reference %q", s.Name, s.Source))
			}
			continue
		}
		est := r.estimator.Estimate(s.Role, s)
		if res.EstimatedSize > est {
			est = res.EstimatedSize
		}
		total += est
	}

	budget := cfg.MaxMemoryBudget
	if budget == 0 {
		budget = r.defaultBudget
	}
	if len(problems) == 0 && budget > 0 && total > budget {
		problems = append(problems, fmt.Sprintf("estimated size %d bytes exceeds memory budget %d", total, budget))
	}

	scores := r.scoreAgainstBase(cfg, specs)
	if cfg.CompatibilityThreshold > 0 {
		for name, score := range scores {
			if score < cfg.CompatibilityThreshold {
				problems = append(problems, fmt.Sprintf("component %q compatibility %.2f below threshold %.2f", name, score, cfg.CompatibilityThreshold))
			}
		}
	}

	if len(problems) > 0 {
		return ErrConfigValidation(cfg.Name, problems)
	}

	r.mu.Lock()
	r.configs[cfg.Name] = cfg
	r.compat[cfg.Name] = scores
	r.mu.Unlock()
	return nil
}

// scoreAgainstBase rates the base component against every other component.
// Scores are advisory unless the config sets a threshold.
func (r *SuiteRegistry) scoreAgainstBase(cfg types.SuiteConfig, specs []types.ComponentSpec) map[string]float64 {
	if r.scorer == nil || len(specs) < 2 {
		return nil
	}
	scores := make(map[string]float64, len(specs)-1)
	base := specs[0]
	for _, s := range specs[1:] {
		scores[s.Name] = r.scorer.Score(base, s)
	}
	return scores
}

// Get returns the config registered under name.
func (r *SuiteRegistry) Get(name string) (types.SuiteConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[name]
	return cfg, ok
}

// Compatibility returns the advisory scores recorded at registration.
func (r *SuiteRegistry) Compatibility(name string) map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.compat[name]
	if src == nil {
		return nil
	}
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Names returns all registered suite names, sorted.
func (r *SuiteRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.configs))
	for name := range r.configs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Configs returns a copy of all registered configs, sorted by name.
func (r *SuiteRegistry) Configs() []types.SuiteConfig {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.SuiteConfig, 0, len(names))
	for _, n := range names {
		out = append(out, r.configs[n])
	}
	return out
}
