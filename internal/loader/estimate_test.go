package loader

import (
	"testing"

	"suited/pkg/types"
)

func TestWeightedEstimatorScalesByRole(t *testing.T) {
	dir := t.TempDir()
	path := createResourceFile(t, dir, "base.bin", 1000)
	e := NewWeightedEstimator(nil)

	spec := types.ComponentSpec{Name: "base", Source: path}
	if got := e.Estimate(types.RoleBase, spec); got != 1100 {
		t.Fatalf("base estimate=%d, want 1100", got)
	}
	if got := e.Estimate(types.RoleAddon, spec); got != 1000 {
		t.Fatalf("addon estimate=%d, want 1000", got)
	}
}

func TestWeightedEstimatorUnknownRoleDefaultsToRawSize(t *testing.T) {
	dir := t.TempDir()
	path := createResourceFile(t, dir, "x.bin", 512)
	e := NewWeightedEstimator(map[types.Role]float64{})

	if got := e.Estimate(types.RoleBase, types.ComponentSpec{Name: "x", Source: path}); got != 512 {
		t.Fatalf("estimate=%d, want 512", got)
	}
}

func TestWeightedEstimatorConservativeMinimum(t *testing.T) {
	e := NewWeightedEstimator(nil)

	// unreadable source: never report zero
	if got := e.Estimate(types.RoleBase, types.ComponentSpec{Name: "x", Source: "/does/not/exist"}); got != 1 {
		t.Fatalf("estimate=%d, want 1", got)
	}

	dir := t.TempDir()
	empty := createResourceFile(t, dir, "empty.bin", 0)
	if got := e.Estimate(types.RoleBase, types.ComponentSpec{Name: "x", Source: empty}); got != 1 {
		t.Fatalf("estimate=%d, want 1", got)
	}
}
