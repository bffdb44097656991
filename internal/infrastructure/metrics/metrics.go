package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "product_reactions_total",
		Help:      "Product reaction toggles by kind and resulting state.",
	}, []string{"kind", "state"})

	productCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "product_cache_hits_total",
		Help:      "Product detail cache hits.",
	})

	productCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "product_cache_misses_total",
		Help:      "Product detail cache misses.",
	})

	cacheLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Name:      "product_cache_lookup_seconds",
		Help:      "Latency of product cache lookups.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"result"})
)

// IncReaction records a toggle. kind is "like" or "dislike", active reports
// whether the reaction is held after the toggle.
func IncReaction(kind string, active bool) {
	state := "removed"
	if active {
		state = "added"
	}
	reactionsTotal.WithLabelValues(kind, state).Inc()
}

func IncDetailHit()  { productCacheHits.Inc() }
func IncDetailMiss() { productCacheMisses.Inc() }

func AddHitDuration(seconds float64)  { cacheLookupSeconds.WithLabelValues("hit").Observe(seconds) }
func AddMissDuration(seconds float64) { cacheLookupSeconds.WithLabelValues("miss").Observe(seconds) }
