package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// OutcomeSuccess labels successful calculations.
	OutcomeSuccess = "success"
	// OutcomeInvalid labels calculations rejected by goal validation.
	OutcomeInvalid = "invalid"
	// OutcomeError labels failed calculations (engine or upstream issues).
	OutcomeError = "error"
)

var (
	calculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plan_engine",
			Name:      "calculations_total",
			Help:      "Total number of reverse calculations handled, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	calculationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "plan_engine",
			Name:      "calculation_seconds",
			Help:      "Reverse calculation latency in seconds, including the upstream score fetch.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	scoreFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plan_engine",
			Name:      "score_fetches_total",
			Help:      "Upstream score snapshot fetches, partitioned by source (cache, upstream, inline).",
		},
		[]string{"source"},
	)
)

// Register attaches plan-engine collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		calculationsTotal,
		calculationDurationSeconds,
		scoreFetchesTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveCalculation records a calculation duration and outcome label.
func ObserveCalculation(duration time.Duration, outcome string) {
	switch outcome {
	case OutcomeSuccess, OutcomeInvalid, OutcomeError:
	default:
		outcome = OutcomeSuccess
	}
	calculationsTotal.WithLabelValues(outcome).Inc()
	if duration < 0 {
		duration = 0
	}
	calculationDurationSeconds.Observe(duration.Seconds())
}

// ObserveScoreFetch counts where a score snapshot came from.
func ObserveScoreFetch(source string) {
	scoreFetchesTotal.WithLabelValues(source).Inc()
}
