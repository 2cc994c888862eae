package coordinator

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	loadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "suited",
		Subsystem: "coordinator",
		Name:      "loads_total",
		Help:      "Total successful suite loads",
	})

	unloadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "suited",
		Subsystem: "coordinator",
		Name:      "unloads_total",
		Help:      "Total suite unloads, explicit and cascaded",
	})

	evictionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "suited",
		Subsystem: "coordinator",
		Name:      "evictions_total",
		Help:      "Total suites evicted to free budget or capacity",
	})

	rollbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "suited",
		Subsystem: "coordinator",
		Name:      "rollbacks_total",
		Help:      "Total suite load attempts rolled back after partial failure",
	})

	memoryUsedBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "suited",
		Subsystem: "coordinator",
		Name:      "memory_used_bytes",
		Help:      "Bytes currently held by loaded components",
	})

	activeSuites = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "suited",
		Subsystem: "coordinator",
		Name:      "active_suites",
		Help:      "Number of currently active suites",
	})
)

func init() {
	prometheus.MustRegister(loadsTotal, unloadsTotal, evictionsTotal, rollbacksTotal, memoryUsedBytes, activeSuites)
}

// syncGauges refreshes the usage gauges. Called after any mutation that
// changed the budget or active set; callers must not hold c.mu requirements
// beyond what the called getters take themselves.
func (c *Coordinator) syncGauges() {
	memoryUsedBytes.Set(float64(c.budget.Used()))
	c.mu.Lock()
	n := len(c.suites)
	c.mu.Unlock()
	activeSuites.Set(float64(n))
}
