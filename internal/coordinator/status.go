package coordinator

import (
	"time"

	"suited/pkg/types"
)

// Status builds the global status view: active suites (most recently used
// last), budget utilization, cache occupancy, and lifetime statistics.
func (c *Coordinator) Status() types.StatusResponse {
	names := c.activeNamesLRU()
	resp := types.StatusResponse{
		Suites:        make([]types.SuiteStatus, 0, len(names)),
		Registered:    c.registry.Names(),
		BudgetBytes:   c.budget.Budget(),
		UsedBytes:     c.budget.Used(),
		CacheCapacity: c.capacity,
	}
	for _, name := range names {
		if st, err := c.SuiteStatus(name); err == nil {
			resp.Suites = append(resp.Suites, st)
		}
	}
	resp.ActiveCount = len(resp.Suites)
	if resp.BudgetBytes > 0 {
		resp.Utilization = float64(resp.UsedBytes) / float64(resp.BudgetBytes)
	}

	c.mu.Lock()
	resp.LoadsTotal = c.stats.Loads
	resp.UnloadsTotal = c.stats.Unloads
	resp.EvictionsTotal = c.stats.Evictions
	resp.RollbacksTotal = c.stats.Rollbacks
	start := c.startTime
	c.mu.Unlock()

	now := timeNow()
	resp.UptimeSeconds = int64(now.Sub(start) / time.Second)
	resp.ServerTimeUnix = now.Unix()
	return resp
}

// SuiteStatus returns the per-suite detail: owned components with states and
// sizes when active, or a registered-but-inactive shell. Unknown names fail
// with a not-found error.
func (c *Coordinator) SuiteStatus(name string) (types.SuiteStatus, error) {
	_, registered := c.registry.Get(name)
	compat := c.registry.Compatibility(name)

	c.mu.Lock()
	entry, active := c.suites[name]
	if !active {
		c.mu.Unlock()
		if !registered {
			return types.SuiteStatus{}, ErrSuiteNotFound(name)
		}
		return types.SuiteStatus{Name: name, Compatibility: compat}, nil
	}
	st := types.SuiteStatus{
		Name:          name,
		Active:        true,
		LastUsed:      entry.lastUsed.Unix(),
		InUse:         entry.inUse,
		Compatibility: compat,
		Components:    make([]types.ComponentStatus, 0, len(entry.handles)),
	}
	for _, id := range entry.handles {
		h := c.pool[id]
		if h == nil {
			continue
		}
		st.Components = append(st.Components, types.ComponentStatus{
			ID:         h.ID,
			Name:       h.Spec.Name,
			Role:       h.Spec.Role,
			State:      string(h.State),
			SizeBytes:  h.SizeBytes,
			LoadTimeMs: h.LoadTime.Milliseconds(),
			LastUsed:   entry.lastUsed.Unix(),
		})
		st.TotalBytes += h.SizeBytes
	}
	c.mu.Unlock()
	return st, nil
}
