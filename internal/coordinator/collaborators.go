package coordinator

import (
	"context"

	"suited/pkg/types"
)

// ValidationResult reports whether a component spec resolves to a loadable
// resource, with the loader's own size estimate when it can produce one.
type ValidationResult struct {
	Valid         bool
	EstimatedSize uint64
	Errors        []string
}

// LoadResult carries what the loader learned while loading a component.
// SizeBytes is the actual footprint, which may differ from the estimate
// reserved up front; the coordinator reconciles the difference on commit.
type LoadResult struct {
	SizeBytes uint64
}

// ResourceLoader performs the actual mechanics of resolving, loading, and
// unloading one component. Implementations must honor ctx cancellation on
// Load; a canceled load surfaces as an error and triggers the same rollback
// path as any other component failure.
type ResourceLoader interface {
	Validate(ctx context.Context, spec types.ComponentSpec) ValidationResult
	Load(ctx context.Context, spec types.ComponentSpec) (LoadResult, error)
	// Unload releases the resource behind spec and returns the bytes freed.
	Unload(ctx context.Context, spec types.ComponentSpec, sizeBytes uint64) uint64
}

// SizeEstimator predicts a component's memory footprint before it is loaded.
type SizeEstimator interface {
	Estimate(role types.Role, spec types.ComponentSpec) uint64
}

// CompatibilityScorer rates how well two components work together, in [0,1].
// Scores are advisory status metadata unless a suite config opts into hard
// gating via its compatibility threshold.
type CompatibilityScorer interface {
	Score(a, b types.ComponentSpec) float64
}
