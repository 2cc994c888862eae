package config

import (
	"testing"

	"suited/pkg/types"
)

func TestLoadManifestYAML(t *testing.T) {
	path := writeConfig(t, "suites.yaml", `
suites:
  - name: sdxl
    base:
      name: sdxl-unet
      source: /models/sdxl-unet.bin
    auxiliary_a:
      name: sdxl-vae
      source: /models/sdxl-vae.bin
    addons:
      - name: sdxl-lora
        source: /models/sdxl-lora.bin
    max_memory_budget: 1000
    compatibility_threshold: 0.5
  - name: flux
    base:
      name: flux-unet
      source: /models/flux-unet.bin
`)
	suites, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if len(suites) != 2 {
		t.Fatalf("suites=%d", len(suites))
	}
	s := suites[0]
	if s.Name != "sdxl" || s.Base.Name != "sdxl-unet" {
		t.Fatalf("suite=%+v", s)
	}
	if s.AuxiliaryA == nil || s.AuxiliaryA.Name != "sdxl-vae" {
		t.Fatalf("auxiliary_a=%+v", s.AuxiliaryA)
	}
	if len(s.Addons) != 1 || s.Addons[0].Source != "/models/sdxl-lora.bin" {
		t.Fatalf("addons=%+v", s.Addons)
	}
	if s.MaxMemoryBudget != 1000 || s.CompatibilityThreshold != 0.5 {
		t.Fatalf("suite=%+v", s)
	}

	// roles come from the slots, not the manifest
	comps := s.Components()
	if comps[0].Role != types.RoleBase || comps[1].Role != types.RoleAuxiliaryA || comps[2].Role != types.RoleAddon {
		t.Fatalf("roles=%v %v %v", comps[0].Role, comps[1].Role, comps[2].Role)
	}
}

func TestLoadManifestRejectsUnnamedSuite(t *testing.T) {
	path := writeConfig(t, "suites.yaml", `
suites:
  - base:
      name: unet
      source: /models/unet.bin
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected error for unnamed suite")
	}
}

func TestLoadManifestJSON(t *testing.T) {
	path := writeConfig(t, "suites.json", `{"suites": [{"name": "s", "base": {"name": "b", "source": "/m/b.bin"}}]}`)
	suites, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if len(suites) != 1 || suites[0].Base.Source != "/m/b.bin" {
		t.Fatalf("suites=%+v", suites)
	}
}
