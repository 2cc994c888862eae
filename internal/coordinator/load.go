package coordinator

import (
	"context"

	"github.com/google/uuid"

	"suited/pkg/types"
)

// LoadSuite loads every component of the named suite in dependency order
// under the memory budget. Loading an already-active suite is a no-op unless
// forceReload is set; a second load for the same name while one is in flight
// fails with a busy error. Any component failure (including cancellation of
// ctx) rolls the attempt back completely: components loaded so far are
// unloaded in reverse order, all reserved memory is released, and the usage
// counter returns to its pre-call value.
func (c *Coordinator) LoadSuite(ctx context.Context, name string, forceReload bool) error {
	cfg, ok := c.registry.Get(name)
	if !ok {
		return ErrSuiteNotFound(name)
	}

	c.mu.Lock()
	if _, busy := c.inflight[name]; busy {
		c.mu.Unlock()
		return ErrSuiteBusy(name)
	}
	if s, active := c.suites[name]; active {
		if !forceReload {
			s.lastUsed = timeNow()
			c.mu.Unlock()
			return nil
		}
	}
	c.inflight[name] = struct{}{}
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.inflight, name)
		c.mu.Unlock()
		c.syncGauges()
	}()

	if forceReload {
		// Drop the current incarnation before reloading.
		if c.removeSuite(ctx, name) {
			c.mu.Lock()
			c.stats.Unloads++
			c.mu.Unlock()
			unloadsTotal.Inc()
		}
	}

	c.publisher.Publish(Event{Name: "load_start", Suite: name})
	c.log.Info().Str("suite", name).Msg("suite load started")

	specs := PlanLoadOrder(cfg)
	estimates := make([]uint64, len(specs))
	var required uint64
	for i, s := range specs {
		estimates[i] = c.estimator.Estimate(s.Role, s)
		required += estimates[i]
	}

	if err := c.reserve(ctx, name, required); err != nil {
		c.publisher.Publish(Event{Name: "load_budget_fail", Suite: name, Fields: map[string]any{"required": required}})
		return err
	}

	loaded, err := c.loadComponents(ctx, name, specs, estimates, required)
	if err != nil {
		return err
	}

	if missing := integrityCheck(cfg, loaded); len(missing) > 0 {
		c.rollback(ctx, name, loaded, nil, 0)
		return ErrSuiteIntegrity(name, missing)
	}

	now := timeNow()
	ids := make([]string, len(loaded))
	for i, h := range loaded {
		ids[i] = h.ID
	}
	c.mu.Lock()
	c.suites[name] = &suite{name: name, handles: ids, lastUsed: now}
	c.stats.Loads++
	c.mu.Unlock()
	loadsTotal.Inc()
	c.publisher.Publish(Event{Name: "load_ready", Suite: name, Fields: map[string]any{"components": len(loaded)}})
	c.log.Info().Str("suite", name).Int("components", len(loaded)).Msg("suite loaded")

	return c.enforceCapacity(ctx, name, c.effectiveCapacity(cfg))
}

// reserve takes the two-phase reservation for a load, evicting LRU unpinned
// suites until the estimate fits. No state is mutated when it fails.
func (c *Coordinator) reserve(ctx context.Context, name string, required uint64) error {
	evict := func() bool {
		_, ok := c.evictOne(ctx, name)
		return ok
	}
	for !c.budget.Reserve(required) {
		if !c.budget.EnsureAvailable(required, evict) {
			return ErrInsufficientMemory(name, required, c.budget.Available())
		}
	}
	return nil
}

// loadComponents dispatches loader calls sequentially in load order,
// reconciling each actual size against its estimate. On any failure the
// attempt is rolled back and a component load error is returned.
func (c *Coordinator) loadComponents(ctx context.Context, name string, specs []types.ComponentSpec, estimates []uint64, required uint64) ([]*ComponentHandle, error) {
	loaded := make([]*ComponentHandle, 0, len(specs))
	remaining := required // reserved bytes not yet attributed to a loaded handle
	for i, spec := range specs {
		h := &ComponentHandle{
			ID:    uuid.NewString(),
			Spec:  spec,
			State: StateLoading,
			owner: name,
		}
		c.mu.Lock()
		c.pool[h.ID] = h
		c.mu.Unlock()

		start := timeNow()
		res, err := c.loader.Load(ctx, spec)
		if err != nil {
			c.mu.Lock()
			h.State = StateError
			c.mu.Unlock()
			c.rollback(ctx, name, loaded, h, remaining)
			return nil, ErrComponentLoad(spec.Name, err)
		}

		// Reconcile actual footprint against the reserved estimate.
		if !c.budget.Commit(int64(res.SizeBytes) - int64(estimates[i])) {
			// The backend did load it; hand the resource back before
			// rolling the attempt back. Its estimate is still reserved
			// and leaves with the remaining release.
			c.loader.Unload(ctx, spec, res.SizeBytes)
			c.mu.Lock()
			h.State = StateError
			c.mu.Unlock()
			c.rollback(ctx, name, loaded, h, remaining)
			return nil, ErrComponentLoad(spec.Name, ErrInsufficientMemory(name, res.SizeBytes, c.budget.Available()))
		}
		remaining -= estimates[i]

		c.mu.Lock()
		h.State = StateLoaded
		h.SizeBytes = res.SizeBytes
		h.LoadTime = timeNow().Sub(start)
		c.mu.Unlock()
		loaded = append(loaded, h)
		c.log.Debug().Str("suite", name).Str("component", spec.Name).Uint64("size_bytes", res.SizeBytes).Msg("component loaded")
	}
	return loaded, nil
}

// rollback undoes a partial load attempt: components loaded so far are
// unloaded in reverse order with their actual sizes released, the unconsumed
// reservation is returned, and every handle of the attempt leaves the pool.
// failed may be nil (integrity rollback after all components loaded).
func (c *Coordinator) rollback(ctx context.Context, name string, loaded []*ComponentHandle, failed *ComponentHandle, remaining uint64) {
	for i := len(loaded) - 1; i >= 0; i-- {
		h := loaded[i]
		c.mu.Lock()
		h.State = StateUnloading
		c.mu.Unlock()
		c.unloadHandle(ctx, h)
	}
	if remaining > 0 {
		c.budget.Release(remaining)
	}
	if failed != nil {
		c.mu.Lock()
		delete(c.pool, failed.ID)
		c.mu.Unlock()
	}
	c.mu.Lock()
	c.stats.Rollbacks++
	c.mu.Unlock()
	rollbacksTotal.Inc()
	c.publisher.Publish(Event{Name: "load_rollback", Suite: name, Fields: map[string]any{"loaded": len(loaded)}})
	c.log.Warn().Str("suite", name).Int("loaded", len(loaded)).Msg("suite load rolled back")
}

// integrityCheck verifies that every required role for the config ended up
// loaded. The membership of the attempt is the loaded slice itself, so this
// reduces to checking presence and state per expected component.
func integrityCheck(cfg types.SuiteConfig, loaded []*ComponentHandle) []types.Role {
	want := PlanLoadOrder(cfg)
	var missing []types.Role
	for i, spec := range want {
		if i >= len(loaded) || loaded[i].Spec.Name != spec.Name || loaded[i].State != StateLoaded {
			missing = append(missing, spec.Role)
		}
	}
	return missing
}

// enforceCapacity evicts LRU unpinned suites (never the one just loaded)
// until the active set fits capacity. When nothing is evictable the just
// loaded suite is unloaded again so the capacity invariant holds, and the
// load fails.
func (c *Coordinator) enforceCapacity(ctx context.Context, justLoaded string, capacity int) error {
	for {
		c.mu.Lock()
		over := len(c.suites) > capacity
		c.mu.Unlock()
		if !over {
			return nil
		}
		if _, ok := c.evictOne(ctx, justLoaded); !ok {
			if c.removeSuite(ctx, justLoaded) {
				c.mu.Lock()
				c.stats.Unloads++
				c.mu.Unlock()
				unloadsTotal.Inc()
			}
			return ErrCapacityExhausted(justLoaded)
		}
	}
}
