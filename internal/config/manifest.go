package config

import (
	"fmt"

	"suited/pkg/types"
)

// Manifest declares suites to register at startup.
type Manifest struct {
	Suites []types.SuiteConfig `json:"suites" yaml:"suites" toml:"suites"`
}

// LoadManifest reads a suite manifest file. The same extensions as Load are
// supported. Suites are returned in declaration order; registration order
// matters only for log readability.
func LoadManifest(path string) ([]types.SuiteConfig, error) {
	var m Manifest
	if err := decodeFile(path, &m); err != nil {
		return nil, err
	}
	for i, s := range m.Suites {
		if s.Name == "" {
			return nil, fmt.Errorf("manifest suite %d has no name", i)
		}
	}
	return m.Suites, nil
}
