package scheduler

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus collectors the scheduler exposes for
// observability of the commit pipeline. Callers register them against
// their own registry with Register; an unregistered Scheduler still
// updates them in memory, it just has no exporter attached.
type Metrics struct {
	commits        prometheus.Counter
	commitsDropped prometheus.Counter
	commitDuration prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fenestra_commits_total",
			Help: "Total number of component commits flushed by the scheduler.",
		}),
		commitsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fenestra_commits_dropped_total",
			Help: "Commits dropped because an instance exceeded its storm budget.",
		}),
		commitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fenestra_commit_duration_seconds",
			Help:    "Time spent rendering and patching a single component commit.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Register adds the scheduler's collectors to reg.
func (s *Scheduler) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{s.metrics.commits, s.metrics.commitsDropped, s.metrics.commitDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
