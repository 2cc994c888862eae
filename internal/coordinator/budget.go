package coordinator

import "sync"

// BudgetTracker tracks bytes held by loaded components against a fixed
// ceiling. Reserve is the first phase of a two-phase scheme: a load reserves
// its estimated footprint up front, then commits the estimate/actual delta as
// each component finishes, so two concurrent loads can never jointly
// over-commit between the check and the allocation. A budget of 0 means
// unlimited.
type BudgetTracker struct {
	mu     sync.Mutex
	budget uint64
	used   uint64
}

// NewBudgetTracker returns a tracker with the given ceiling in bytes.
func NewBudgetTracker(budget uint64) *BudgetTracker {
	return &BudgetTracker{budget: budget}
}

// Reserve atomically reserves n bytes if they fit the budget.
func (t *BudgetTracker) Reserve(n uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.budget > 0 && t.used+n > t.budget {
		return false
	}
	t.used += n
	return true
}

// Commit reconciles a reservation with the actual size once a load completes.
// delta is actual minus estimated bytes; a positive delta grows usage only if
// it still fits, a negative delta shrinks it.
func (t *BudgetTracker) Commit(delta int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if delta >= 0 {
		if t.budget > 0 && t.used+uint64(delta) > t.budget {
			return false
		}
		t.used += uint64(delta)
		return true
	}
	d := uint64(-delta)
	if d > t.used {
		d = t.used
	}
	t.used -= d
	return true
}

// Release returns n bytes to the budget after an unload or rollback.
func (t *BudgetTracker) Release(n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n > t.used {
		n = t.used
	}
	t.used -= n
}

// Used returns the bytes currently held.
func (t *BudgetTracker) Used() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.used
}

// Budget returns the configured ceiling (0 = unlimited).
func (t *BudgetTracker) Budget() uint64 { return t.budget }

// Available returns the bytes still reservable. Unlimited budgets report the
// maximum value.
func (t *BudgetTracker) Available() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.budget == 0 {
		return ^uint64(0)
	}
	if t.used >= t.budget {
		return 0
	}
	return t.budget - t.used
}

// EnsureAvailable asks evict for help until required bytes are reservable or
// no evictable suite remains. evict returns false when nothing could be
// evicted; the shortfall then fails only the triggering operation.
func (t *BudgetTracker) EnsureAvailable(required uint64, evict func() bool) bool {
	for t.Available() < required {
		if evict == nil || !evict() {
			return false
		}
	}
	return true
}
