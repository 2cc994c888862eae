package coordinator

import (
	"context"
	"fmt"
	"sort"

	"suited/pkg/types"
)

// OptimizeMemory brings the active set back within cache capacity, sweeps
// loaded components no active suite owns, and reports the memory saved and
// the resulting efficiency ratio (budget - used) / budget.
func (c *Coordinator) OptimizeMemory(ctx context.Context) (types.OptimizeReport, error) {
	var report types.OptimizeReport
	before := c.budget.Used()

	for {
		c.mu.Lock()
		over := len(c.suites) > c.capacity
		c.mu.Unlock()
		if !over {
			break
		}
		name, ok := c.evictOne(ctx, "")
		if !ok {
			break
		}
		report.Actions = append(report.Actions, fmt.Sprintf("evicted suite %q", name))
	}

	for _, h := range c.orphanHandles() {
		c.unloadHandle(ctx, h)
		report.Actions = append(report.Actions, fmt.Sprintf("unloaded redundant component %q", h.Spec.Name))
	}

	after := c.budget.Used()
	if before > after {
		report.FreedBytes = before - after
	}
	report.Efficiency = c.efficiency()
	c.syncGauges()
	c.publisher.Publish(Event{Name: "optimize_done", Fields: map[string]any{"freed_bytes": report.FreedBytes, "actions": len(report.Actions)}})
	return report, nil
}

// orphanHandles marks and returns loaded handles whose owning suite is
// neither active nor mid-load. These only exist after an accounting defect;
// the sweep is the recovery path.
func (c *Coordinator) orphanHandles() []*ComponentHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	var orphans []*ComponentHandle
	for _, h := range c.pool {
		if h.State != StateLoaded {
			continue
		}
		if _, active := c.suites[h.owner]; active {
			continue
		}
		if _, busy := c.inflight[h.owner]; busy {
			continue
		}
		h.State = StateUnloading
		orphans = append(orphans, h)
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i].Spec.Name < orphans[j].Spec.Name })
	return orphans
}

// efficiency returns (budget - used) / budget, or 1 for unlimited budgets.
func (c *Coordinator) efficiency() float64 {
	budget := c.budget.Budget()
	if budget == 0 {
		return 1
	}
	used := c.budget.Used()
	if used >= budget {
		return 0
	}
	return float64(budget-used) / float64(budget)
}
