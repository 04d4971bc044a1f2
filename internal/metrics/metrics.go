package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns the Prometheus collectors for upstream fetches and
// cache reads. A nil Recorder is safe to call, so components can be
// constructed without metrics in tests.
type Recorder struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	cacheReads    *prometheus.CounterVec
}

// NewRecorder registers the collectors with the provided registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gametime",
			Name:      "scoreboard_fetches_total",
			Help:      "Scoreboard API requests by league and outcome.",
		}, []string{"league", "outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gametime",
			Name:      "scoreboard_fetch_duration_seconds",
			Help:      "Scoreboard API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"league"}),
		cacheReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gametime",
			Name:      "cache_reads_total",
			Help:      "Cache loads by the tier that served them.",
		}, []string{"tier"}),
	}
	if reg != nil {
		reg.MustRegister(r.fetchTotal, r.fetchDuration, r.cacheReads)
	}
	return r
}

// RecordFetch tracks one scoreboard request.
func (r *Recorder) RecordFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.fetchTotal.WithLabelValues(league, outcome).Inc()
	r.fetchDuration.WithLabelValues(league).Observe(duration.Seconds())
}

// RecordCacheRead tracks which tier satisfied a load. Tier "miss" means
// every tier came up empty.
func (r *Recorder) RecordCacheRead(tier string) {
	if r == nil {
		return
	}
	r.cacheReads.WithLabelValues(tier).Inc()
}
