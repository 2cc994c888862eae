package coordinator

import (
	"context"
	"strings"
	"testing"

	"suited/pkg/types"
)

func newTestRegistry(sizes map[string]uint64, scorer CompatibilityScorer, budget uint64) (*SuiteRegistry, *fakeLoader) {
	fl := newFakeLoader(sizes)
	return NewSuiteRegistry(fl, fixedEstimator{sizes: sizes}, scorer, budget, 4), fl
}

func TestRegisterRejectsMissingBase(t *testing.T) {
	reg, fl := newTestRegistry(map[string]uint64{"b": 100}, nil, 1000)
	fl.invalid["b"] = "source does not exist"

	err := reg.Register(context.Background(), baseOnlySuite("s", "b"))
	if !IsConfigValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	found := false
	for _, p := range ValidationProblems(err) {
		if strings.Contains(p, "source does not exist") && strings.Contains(p, `"b"`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("problems must name the missing reference: %v", ValidationProblems(err))
	}
	if _, ok := reg.Get("s"); ok {
		t.Fatalf("registry must be unchanged on failure")
	}
}

func TestRegisterRejectsStructuralProblems(t *testing.T) {
	reg, _ := newTestRegistry(map[string]uint64{"b": 100}, nil, 1000)

	tests := []struct {
		name string
		cfg  types.SuiteConfig
		want string
	}{
		{"empty name", types.SuiteConfig{Base: spec("b")}, "suite name is required"},
		{"no base source", types.SuiteConfig{Name: "s", Base: types.ComponentSpec{Name: "b"}}, "base component source is required"},
		{"duplicate component", types.SuiteConfig{Name: "s", Base: spec("b"), Addons: []types.ComponentSpec{spec("b")}}, "duplicate component name"},
		{"unnamed component", types.SuiteConfig{Name: "s", Base: spec("b"), Addons: []types.ComponentSpec{{Source: "mem://x"}}}, "has no name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Register(context.Background(), tt.cfg)
			if !IsConfigValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			joined := strings.Join(ValidationProblems(err), "; ")
			if !strings.Contains(joined, tt.want) {
				t.Fatalf("problems %q must contain %q", joined, tt.want)
			}
		})
	}
}

func TestRegisterRejectsBudgetExcess(t *testing.T) {
	reg, _ := newTestRegistry(map[string]uint64{"b": 900, "a": 400}, nil, 1000)
	auxA := spec("a")
	err := reg.Register(context.Background(), types.SuiteConfig{Name: "s", Base: spec("b"), AuxiliaryA: &auxA})
	if !IsConfigValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	joined := strings.Join(ValidationProblems(err), "; ")
	if !strings.Contains(joined, "exceeds memory budget") {
		t.Fatalf("problems = %q", joined)
	}
}

func TestRegisterPerSuiteBudgetOverride(t *testing.T) {
	reg, _ := newTestRegistry(map[string]uint64{"b": 900}, nil, 500)
	cfg := baseOnlySuite("s", "b")
	cfg.MaxMemoryBudget = 2000
	if err := reg.Register(context.Background(), cfg); err != nil {
		t.Fatalf("per-suite budget must override the default: %v", err)
	}
}

func TestRegisterCompatibilityGate(t *testing.T) {
	sizes := map[string]uint64{"b": 100, "a": 100}
	auxA := spec("a")
	cfg := types.SuiteConfig{Name: "s", Base: spec("b"), AuxiliaryA: &auxA, CompatibilityThreshold: 0.9}

	reg, _ := newTestRegistry(sizes, constScorer{score: 0.2}, 1000)
	err := reg.Register(context.Background(), cfg)
	if !IsConfigValidation(err) {
		t.Fatalf("expected gating failure, got %v", err)
	}

	// threshold 0 means advisory only: the same score passes and is recorded
	cfg.CompatibilityThreshold = 0
	if err := reg.Register(context.Background(), cfg); err != nil {
		t.Fatalf("advisory scoring must not gate: %v", err)
	}
	scores := reg.Compatibility("s")
	if got := scores["a"]; got != 0.2 {
		t.Fatalf("recorded score=%v", got)
	}
}

func TestRegisterReRegisterRevalidates(t *testing.T) {
	sizes := map[string]uint64{"b": 100}
	reg, fl := newTestRegistry(sizes, nil, 1000)
	if err := reg.Register(context.Background(), baseOnlySuite("s", "b")); err != nil {
		t.Fatalf("register: %v", err)
	}

	// second registration with a now-invalid reference must fail and keep
	// the previous config
	fl.invalid["b"] = "gone"
	cfg := baseOnlySuite("s", "b")
	if err := reg.Register(context.Background(), cfg); !IsConfigValidation(err) {
		t.Fatalf("expected re-validation failure, got %v", err)
	}
	if _, ok := reg.Get("s"); !ok {
		t.Fatalf("previous config must survive a failed re-registration")
	}
}

func TestRegistryNames(t *testing.T) {
	reg, _ := newTestRegistry(map[string]uint64{"b": 100}, nil, 1000)
	for _, n := range []string{"zeta", "alpha"} {
		if err := reg.Register(context.Background(), baseOnlySuite(n, "b")); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}
	names := reg.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("names=%v", names)
	}
}
