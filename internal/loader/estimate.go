package loader

import (
	"os"

	"suited/pkg/types"
)

// WeightedEstimator predicts a component's loaded footprint from its on-disk
// size scaled by a per-role weight. Roles without an explicit weight use 1.0.
type WeightedEstimator struct {
	Weights map[types.Role]float64
}

// DefaultWeights reflect that base components typically expand in memory
// while addons and extensions load near their file size.
func DefaultWeights() map[types.Role]float64 {
	return map[types.Role]float64{
		types.RoleBase:       1.1,
		types.RoleAuxiliaryA: 1.05,
		types.RoleAuxiliaryB: 1.05,
		types.RoleAddon:      1.0,
		types.RoleExtension:  1.0,
	}
}

// NewWeightedEstimator returns an estimator with the given weights, or the
// defaults when weights is nil.
func NewWeightedEstimator(weights map[types.Role]float64) *WeightedEstimator {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &WeightedEstimator{Weights: weights}
}

// Estimate returns the predicted footprint in bytes. When the source cannot
// be inspected it returns a conservative minimum of 1 byte so budget checks
// are never bypassed by an unknown size.
func (e *WeightedEstimator) Estimate(role types.Role, spec types.ComponentSpec) uint64 {
	fi, err := os.Stat(spec.Source)
	if err != nil || fi.IsDir() {
		return 1
	}
	w := e.Weights[role]
	if w <= 0 {
		w = 1.0
	}
	est := uint64(float64(fi.Size()) * w)
	if est == 0 {
		est = 1
	}
	return est
}
