package types

// Role identifies the position a component occupies inside a suite.
// The set is closed: Base is mandatory, the two auxiliary slots are
// optional singletons, and addons/extensions are repeatable.
type Role string

const (
	RoleBase       Role = "base"
	RoleAuxiliaryA Role = "auxiliary_a"
	RoleAuxiliaryB Role = "auxiliary_b"
	RoleAddon      Role = "addon"
	RoleExtension  Role = "extension"
)

// Tier returns the load-priority tier for the role. Lower tiers load first;
// unload order is the exact reverse.
func (r Role) Tier() int {
	switch r {
	case RoleBase:
		return 1
	case RoleAuxiliaryA:
		return 2
	case RoleAuxiliaryB:
		return 3
	case RoleAddon:
		return 4
	case RoleExtension:
		return 5
	default:
		return 0
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r.Tier() != 0 }

// ComponentSpec describes one loadable resource inside a suite.
type ComponentSpec struct {
	// Stable component name, unique within a suite.
	// example: sdxl-unet
	Name string `json:"name" yaml:"name" toml:"name" example:"sdxl-unet"`
	// Role the component plays in the suite. Derived from the config slot
	// the spec occupies; callers need not set it by hand.
	// example: base
	Role Role `json:"role" yaml:"role" toml:"role" example:"base"`
	// Source reference the resource loader resolves (e.g. a file path).
	// example: /var/lib/suited/resources/sdxl-unet.bin
	Source string `json:"source" yaml:"source" toml:"source" example:"/var/lib/suited/resources/sdxl-unet.bin"`
}

// SuiteConfig declares a named bundle of components loaded and unloaded as a
// unit. The struct slot a component occupies determines its role.
type SuiteConfig struct {
	// Unique suite name used as the registry key.
	// example: sdxl-refiner
	Name string `json:"name" yaml:"name" toml:"name" example:"sdxl-refiner"`
	// Required base component.
	Base ComponentSpec `json:"base" yaml:"base" toml:"base"`
	// Optional first auxiliary component.
	AuxiliaryA *ComponentSpec `json:"auxiliary_a,omitempty" yaml:"auxiliary_a,omitempty" toml:"auxiliary_a,omitempty"`
	// Optional second auxiliary component.
	AuxiliaryB *ComponentSpec `json:"auxiliary_b,omitempty" yaml:"auxiliary_b,omitempty" toml:"auxiliary_b,omitempty"`
	// Repeatable addon components.
	Addons []ComponentSpec `json:"addons,omitempty" yaml:"addons,omitempty" toml:"addons,omitempty"`
	// Repeatable extension components.
	Extensions []ComponentSpec `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	// Per-suite memory ceiling in bytes checked at registration.
	// 0 inherits the coordinator budget.
	// example: 8589934592
	MaxMemoryBudget uint64 `json:"max_memory_budget,omitempty" yaml:"max_memory_budget,omitempty" toml:"max_memory_budget,omitempty" example:"8589934592"`
	// Max concurrently-active suites enforced after this suite loads.
	// 0 inherits the coordinator cache capacity.
	// example: 2
	CacheCapacity int `json:"cache_capacity,omitempty" yaml:"cache_capacity,omitempty" toml:"cache_capacity,omitempty" example:"2"`
	// Minimum pairwise compatibility score required at registration.
	// 0 disables gating; scores remain advisory status metadata.
	// example: 0.5
	CompatibilityThreshold float64 `json:"compatibility_threshold,omitempty" yaml:"compatibility_threshold,omitempty" toml:"compatibility_threshold,omitempty" example:"0.5"`
}

// Components returns the suite's component specs in declaration order with
// roles stamped from the slot each spec occupies. Declaration order is
// already tier order (base, auxiliaries, addons, extensions).
func (c SuiteConfig) Components() []ComponentSpec {
	out := make([]ComponentSpec, 0, 3+len(c.Addons)+len(c.Extensions))
	base := c.Base
	base.Role = RoleBase
	out = append(out, base)
	if c.AuxiliaryA != nil {
		a := *c.AuxiliaryA
		a.Role = RoleAuxiliaryA
		out = append(out, a)
	}
	if c.AuxiliaryB != nil {
		b := *c.AuxiliaryB
		b.Role = RoleAuxiliaryB
		out = append(out, b)
	}
	for _, a := range c.Addons {
		a.Role = RoleAddon
		out = append(out, a)
	}
	for _, e := range c.Extensions {
		e.Role = RoleExtension
		out = append(out, e)
	}
	return out
}
