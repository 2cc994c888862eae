package coordinator

import "context"

// evictOne unloads the least-recently-used active suite that is neither
// pinned by a checkout nor named by exclude. Victim selection and removal
// from the active set happen under one lock acquisition, so a checkout racing
// the eviction either pins the suite before it is selected or finds it
// already gone. It returns the evicted suite's name, or ok=false when nothing
// is evictable — the caller's operation then fails rather than violating the
// budget or capacity invariants.
func (c *Coordinator) evictOne(ctx context.Context, exclude string) (string, bool) {
	c.mu.Lock()
	var victim *suite
	for _, s := range c.suites {
		if s.name == exclude || s.inUse > 0 {
			continue
		}
		if victim == nil || s.lastUsed.Before(victim.lastUsed) {
			victim = s
		}
	}
	if victim == nil {
		c.mu.Unlock()
		return "", false
	}
	name := victim.name
	delete(c.suites, name)
	handles := make([]*ComponentHandle, 0, len(victim.handles))
	for i := len(victim.handles) - 1; i >= 0; i-- {
		if h := c.pool[victim.handles[i]]; h != nil {
			h.State = StateUnloading
			handles = append(handles, h)
		}
	}
	c.stats.Evictions++
	c.mu.Unlock()

	for _, h := range handles {
		c.unloadHandle(ctx, h)
	}
	evictionsTotal.Inc()
	c.publisher.Publish(Event{Name: "suite_evicted", Suite: name})
	c.log.Info().Str("suite", name).Msg("suite evicted")
	return name, true
}
