package coordinator

import (
	"context"

	"suited/pkg/types"
)

// UnloadSuite unloads every component the named suite owns, in reverse load
// order, and releases its memory. Unloading a suite that is not active is a
// no-op success; calling it twice has no additional effect.
func (c *Coordinator) UnloadSuite(ctx context.Context, name string) error {
	c.mu.Lock()
	if _, busy := c.inflight[name]; busy {
		c.mu.Unlock()
		return ErrSuiteBusy(name)
	}
	if _, ok := c.suites[name]; !ok {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	c.publisher.Publish(Event{Name: "unload_start", Suite: name})
	if !c.removeSuite(ctx, name) {
		return nil
	}
	c.mu.Lock()
	c.stats.Unloads++
	c.mu.Unlock()
	unloadsTotal.Inc()
	c.syncGauges()
	c.publisher.Publish(Event{Name: "unload_done", Suite: name})
	c.log.Info().Str("suite", name).Msg("suite unloaded")
	return nil
}

// Cleanup unloads every active suite, least recently used first. Pinned
// suites are unloaded too: cleanup is an explicit operator action, not an
// eviction.
func (c *Coordinator) Cleanup(ctx context.Context) (types.CleanupReport, error) {
	before := c.budget.Used()
	var report types.CleanupReport
	for _, name := range c.activeNamesLRU() {
		if c.removeSuite(ctx, name) {
			report.SuitesUnloaded++
			c.mu.Lock()
			c.stats.Unloads++
			c.mu.Unlock()
			unloadsTotal.Inc()
		}
	}
	after := c.budget.Used()
	if before > after {
		report.FreedBytes = before - after
	}
	c.syncGauges()
	c.publisher.Publish(Event{Name: "cleanup_done", Fields: map[string]any{"suites": report.SuitesUnloaded, "freed_bytes": report.FreedBytes}})
	return report, nil
}

// removeSuite drops the named suite from the active set and unloads its
// handles in reverse load order, ignoring checkouts: explicit unloads and
// cleanup override pins (eviction has its own atomic selection in evictOne).
// Returns whether a suite was actually removed.
func (c *Coordinator) removeSuite(ctx context.Context, name string) bool {
	c.mu.Lock()
	entry, ok := c.suites[name]
	if !ok {
		c.mu.Unlock()
		return false
	}
	delete(c.suites, name)
	handles := make([]*ComponentHandle, 0, len(entry.handles))
	for i := len(entry.handles) - 1; i >= 0; i-- {
		if h := c.pool[entry.handles[i]]; h != nil {
			h.State = StateUnloading
			handles = append(handles, h)
		}
	}
	c.mu.Unlock()

	for _, h := range handles {
		c.unloadHandle(ctx, h)
	}
	return true
}

// unloadHandle dispatches the loader unload for one handle, releases its
// recorded size, and removes it from the pool. The recorded size is the
// source of truth for accounting; a disagreeing loader is only logged.
func (c *Coordinator) unloadHandle(ctx context.Context, h *ComponentHandle) {
	freed := c.loader.Unload(ctx, h.Spec, h.SizeBytes)
	if freed != h.SizeBytes {
		c.log.Debug().Str("component", h.Spec.Name).Uint64("freed", freed).Uint64("recorded", h.SizeBytes).Msg("loader freed bytes differ from recorded size")
	}
	c.budget.Release(h.SizeBytes)
	c.mu.Lock()
	delete(c.pool, h.ID)
	c.mu.Unlock()
}

// activeNamesLRU returns the active suite names ordered least recently used
// first.
func (c *Coordinator) activeNamesLRU() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.suites))
	for name := range c.suites {
		out = append(out, name)
	}
	// insertion sort by lastUsed; active sets are small
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && c.suites[out[j]].lastUsed.Before(c.suites[out[j-1]].lastUsed); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
