package coordinator

import (
	"sort"

	"suited/pkg/types"
)

// PlanLoadOrder returns the suite's components in deterministic load order:
// a stable sort by role tier (base < auxiliary-a < auxiliary-b < addon <
// extension), ties preserving declaration order.
func PlanLoadOrder(cfg types.SuiteConfig) []types.ComponentSpec {
	specs := cfg.Components()
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Role.Tier() < specs[j].Role.Tier()
	})
	return specs
}

// UnloadOrder returns the exact reverse of the given load order, so addons
// and extensions release before the components they depend on.
func UnloadOrder(specs []types.ComponentSpec) []types.ComponentSpec {
	out := make([]types.ComponentSpec, len(specs))
	for i, s := range specs {
		out[len(specs)-1-i] = s
	}
	return out
}
