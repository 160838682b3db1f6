package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics records retrieval cache behavior per operation.
type CacheMetrics struct {
	hits     *prometheus.CounterVec
	misses   *prometheus.CounterVec
	bypasses *prometheus.CounterVec
}

// NewCacheMetrics registers the cache metrics on the provided registerer.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	if reg == nil {
		return &CacheMetrics{}
	}
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_hits",
		Help: "Retrieval cache hits per operation.",
	}, []string{"op"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_misses",
		Help: "Retrieval cache misses per operation.",
	}, []string{"op"})
	bypasses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_bypasses",
		Help: "Reads that skipped the cache because inventory was requested.",
	}, []string{"op"})
	reg.MustRegister(hits, misses, bypasses)
	return &CacheMetrics{
		hits:     hits,
		misses:   misses,
		bypasses: bypasses,
	}
}

// IncHit increments the hit counter for the named operation.
func (c *CacheMetrics) IncHit(op string) {
	if c == nil || c.hits == nil {
		return
	}
	c.hits.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncMiss increments the miss counter for the named operation.
func (c *CacheMetrics) IncMiss(op string) {
	if c == nil || c.misses == nil {
		return
	}
	c.misses.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncBypass increments the bypass counter for the named operation.
func (c *CacheMetrics) IncBypass(op string) {
	if c == nil || c.bypasses == nil {
		return
	}
	c.bypasses.WithLabelValues(normalizeLabel(op)).Inc()
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
