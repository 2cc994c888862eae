// Package coordinator provides registration, memory-budgeted loading, and
// LRU eviction of component suites. It is structured into small files by
// concern:
//
//   - coordinator.go: core Coordinator type, constructor, simple getters.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - collaborators.go: ResourceLoader/SizeEstimator/CompatibilityScorer interfaces.
//   - types.go: internal state types (ComponentState, ComponentHandle, suite).
//   - errors.go: error types and predicates (IsSuiteNotFound, IsSuiteBusy, ...).
//   - registry.go: SuiteRegistry with all-or-nothing config validation.
//   - budget.go: BudgetTracker with two-phase reserve/commit accounting.
//   - planner.go: deterministic load/unload ordering by role tier.
//   - load.go: LoadSuite with rollback on partial failure.
//   - unload.go: UnloadSuite, Cleanup, and shared unload internals.
//   - evict.go: LRU eviction skipping checked-out suites.
//   - optimize.go: OptimizeMemory capacity/redundancy sweep.
//   - checkout.go: Checkout/Release pinning.
//   - status.go: Status/SuiteStatus reporting.
//   - events.go: EventPublisher hook for lifecycle events.
//   - metrics.go: Prometheus collectors for loads/evictions/usage.
//
// External packages should treat this package as the orchestration layer and
// use public methods only. All coordinator state (registry, pool, active
// suites, usage counter) is mutated under a single mutex; calls into the
// ResourceLoader are awaited without holding it.
package coordinator
