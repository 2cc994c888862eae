package loader

import (
	"path/filepath"
	"strings"

	"suited/pkg/types"
)

// AffinityScorer rates two components by name affinity: components sharing
// leading name tokens (split on '-', '_', '.') score higher. Purely
// heuristic; the coordinator treats scores as advisory unless a suite config
// opts into gating.
type AffinityScorer struct{}

// Score returns a value in [0,1]: 1 for identical token sets, scaled down by
// how few leading tokens the two names share.
func (AffinityScorer) Score(a, b types.ComponentSpec) float64 {
	ta := nameTokens(a)
	tb := nameTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if ta[i] != tb[i] {
			break
		}
		shared++
	}
	longest := len(ta)
	if len(tb) > longest {
		longest = len(tb)
	}
	return float64(shared) / float64(longest)
}

func nameTokens(spec types.ComponentSpec) []string {
	name := spec.Name
	if name == "" {
		name = filepath.Base(spec.Source)
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	name = strings.ToLower(name)
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
}
