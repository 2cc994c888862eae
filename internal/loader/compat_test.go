package loader

import (
	"testing"

	"suited/pkg/types"
)

func TestAffinityScore(t *testing.T) {
	s := AffinityScorer{}
	cases := []struct {
		a, b string
		want float64
	}{
		{"sdxl-base", "sdxl-refiner", 0.5},
		{"sdxl-base-v1", "sdxl-base-v2", 2.0 / 3.0},
		{"sdxl-base", "sdxl-base", 1},
		{"sdxl-base", "flux-vae", 0},
		{"SDXL_base", "sdxl-base", 1}, // case and separator-insensitive
	}
	for _, tc := range cases {
		got := s.Score(types.ComponentSpec{Name: tc.a}, types.ComponentSpec{Name: tc.b})
		if got != tc.want {
			t.Errorf("Score(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAffinityScoreFallsBackToSourceBasename(t *testing.T) {
	s := AffinityScorer{}
	a := types.ComponentSpec{Source: "/models/sdxl-base.safetensors"}
	b := types.ComponentSpec{Name: "sdxl-refiner"}
	if got := s.Score(a, b); got != 0.5 {
		t.Fatalf("score=%v, want 0.5", got)
	}
}

func TestAffinityScoreEmptyNames(t *testing.T) {
	s := AffinityScorer{}
	if got := s.Score(types.ComponentSpec{}, types.ComponentSpec{Name: "x"}); got != 0 {
		t.Fatalf("score=%v, want 0", got)
	}
}
