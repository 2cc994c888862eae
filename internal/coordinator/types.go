package coordinator

import (
	"time"

	"suited/pkg/types"
)

// ComponentState represents the lifecycle state of a component handle.
type ComponentState string

const (
	StateUnloaded  ComponentState = "unloaded"
	StateLoading   ComponentState = "loading"
	StateLoaded    ComponentState = "loaded"
	StateUnloading ComponentState = "unloading"
	StateError     ComponentState = "error"
)

// ComponentHandle tracks one dispatched component load. Handles are created
// when LoadSuite dispatches a load and removed from the pool when the
// component is unloaded or the load attempt is rolled back.
type ComponentHandle struct {
	ID        string
	Spec      types.ComponentSpec
	State     ComponentState
	SizeBytes uint64
	LoadTime  time.Duration

	// owner is the suite the handle was dispatched for. Suite membership is
	// the explicit handle set on the suite entry; owner exists so redundancy
	// sweeps can tell a leftover handle from one belonging to an in-flight
	// load.
	owner string
}

// suite is the runtime entry for one active suite. Membership is the explicit
// handle id set recorded at load time, never inferred from naming.
type suite struct {
	name     string
	handles  []string // pool ids in load order
	lastUsed time.Time
	inUse    int // > 0 pins the suite against eviction
}

// Stats counts coordinator lifecycle operations.
type Stats struct {
	Loads     uint64
	Unloads   uint64
	Evictions uint64
	Rollbacks uint64
}
