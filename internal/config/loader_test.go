package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "suited.yaml", `
addr: ":9090"
manifest: /etc/suited/suites.yaml
memory_budget_mb: 4096
cache_capacity: 3
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.ManifestPath != "/etc/suited/suites.yaml" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.MemoryBudgetMB != 4096 || cfg.CacheCapacity != 3 || cfg.LogLevel != "debug" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "suited.json", `{"addr": ":8081", "memory_budget_mb": 1024}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.MemoryBudgetMB != 1024 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "suited.toml", "addr = \":8082\"\ncache_capacity = 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8082" || cfg.CacheCapacity != 2 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "suited.ini", "addr = :1\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
