package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: suite not found: sdxl-refiner
	Error string `json:"error" example:"suite not found: sdxl-refiner"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// ComponentStatus summarizes one loaded component for status endpoints.
type ComponentStatus struct {
	// Handle id assigned when the load was dispatched.
	// example: 7b0262de-9a4e-4a7a-9e6e-1f1a1caa1f61
	ID string `json:"id" example:"7b0262de-9a4e-4a7a-9e6e-1f1a1caa1f61"`
	// Component name from the suite config.
	// example: sdxl-unet
	Name string `json:"name" example:"sdxl-unet"`
	// Role inside the suite.
	// example: base
	Role Role `json:"role" example:"base"`
	// Lifecycle state (unloaded, loading, loaded, unloading, error).
	// example: loaded
	State string `json:"state" example:"loaded"`
	// Actual size in bytes reported by the loader.
	// example: 6442450944
	SizeBytes uint64 `json:"size_bytes" example:"6442450944"`
	// Wall-clock load duration in milliseconds.
	// example: 1840
	LoadTimeMs int64 `json:"load_time_ms" example:"1840"`
	// Last time the owning suite was used (unix seconds).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix" example:"1700000000"`
}

// SuiteStatus is the per-suite detail returned by GET /suites/{name}.
type SuiteStatus struct {
	// Suite name.
	// example: sdxl-refiner
	Name string `json:"name" example:"sdxl-refiner"`
	// Whether the suite is currently active (all components loaded).
	// example: true
	Active bool `json:"active" example:"true"`
	// Owned components, in load order. Empty when inactive.
	Components []ComponentStatus `json:"components,omitempty"`
	// Total bytes held by the suite's loaded components.
	// example: 7516192768
	TotalBytes uint64 `json:"total_bytes" example:"7516192768"`
	// Last time the suite was used (unix seconds).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix,omitempty" example:"1700000000"`
	// Checkout count; the suite is pinned against eviction while > 0.
	// example: 1
	InUse int `json:"in_use" example:"1"`
	// Advisory pairwise compatibility of the base against each other
	// component, keyed by component name. Recorded at registration.
	Compatibility map[string]float64 `json:"compatibility,omitempty"`
}

// StatusResponse is the global view returned by GET /status.
type StatusResponse struct {
	// Active suites, most recently used last.
	Suites []SuiteStatus `json:"suites"`
	// Names of registered suite configs.
	Registered []string `json:"registered"`
	// Global memory budget in bytes.
	// example: 17179869184
	BudgetBytes uint64 `json:"budget_bytes" example:"17179869184"`
	// Bytes currently held by loaded components.
	// example: 7516192768
	UsedBytes uint64 `json:"used_bytes" example:"7516192768"`
	// UsedBytes / BudgetBytes (0 when the budget is unlimited).
	// example: 0.4375
	Utilization float64 `json:"utilization" example:"0.4375"`
	// Max concurrently-active suites.
	// example: 4
	CacheCapacity int `json:"cache_capacity" example:"4"`
	// Number of active suites.
	// example: 2
	ActiveCount int `json:"active_count" example:"2"`
	// Total successful suite loads.
	// example: 12
	LoadsTotal uint64 `json:"loads_total" example:"12"`
	// Total suite unloads (explicit and cascaded).
	// example: 9
	UnloadsTotal uint64 `json:"unloads_total" example:"9"`
	// Total suites evicted to free budget or capacity.
	// example: 5
	EvictionsTotal uint64 `json:"evictions_total" example:"5"`
	// Total load attempts rolled back after partial failure.
	// example: 1
	RollbacksTotal uint64 `json:"rollbacks_total" example:"1"`
	// Uptime of the coordinator in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// OptimizeReport summarizes the actions taken by POST /optimize.
type OptimizeReport struct {
	// Bytes released by evictions and redundant-component sweeps.
	// example: 2147483648
	FreedBytes uint64 `json:"freed_bytes" example:"2147483648"`
	// Human-readable actions taken, in order.
	Actions []string `json:"actions"`
	// (budget - used) / budget after optimization.
	// example: 0.75
	Efficiency float64 `json:"efficiency" example:"0.75"`
}

// CleanupReport summarizes the result of POST /cleanup.
type CleanupReport struct {
	// Number of suites unloaded.
	// example: 2
	SuitesUnloaded int `json:"suites_unloaded" example:"2"`
	// Bytes released.
	// example: 7516192768
	FreedBytes uint64 `json:"freed_bytes" example:"7516192768"`
}

// SuitesResponse wraps the registered suite configs returned by GET /suites.
type SuitesResponse struct {
	Suites []SuiteConfig `json:"suites"`
}
