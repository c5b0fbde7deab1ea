package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	HTTPRequests Counter
	LogsDeleted  Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logviewer",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

// NewCounters registers the viewer counters on reg.
func NewCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		HTTPRequests: NewPrometheusCounter(reg,
			"viewer_requests_total",
			"Log viewer requests by operation and outcome",
			[]string{"operation", "status"},
		),
		LogsDeleted: NewPrometheusCounter(reg,
			"logs_deleted_total",
			"Daily log deletions by outcome",
			[]string{"status"},
		),
	}
}

// New registers the counters on the default registry.
func New() *Counters {
	return NewCounters(prometheus.DefaultRegisterer)
}

func NewTestCounters() *Counters {
	return NewCounters(prometheus.NewRegistry())
}
