package coordinator

// Checkout pins an active suite against eviction and refreshes its recency.
// The suite stays pinned until every checkout has a matching Release.
func (c *Coordinator) Checkout(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.suites[name]
	if !ok {
		return ErrSuiteNotFound(name)
	}
	s.inUse++
	s.lastUsed = timeNow()
	return nil
}

// Release drops one checkout from an active suite. Releasing a suite that is
// not active or not checked out is a no-op success.
func (c *Coordinator) Release(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.suites[name]; ok && s.inUse > 0 {
		s.inUse--
	}
	return nil
}
