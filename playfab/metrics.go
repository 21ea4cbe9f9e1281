package playfab

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch outcomes reported as the "outcome" label.
const (
	OutcomeOK             = "ok"
	OutcomeAPIError       = "api_error"
	OutcomeLocalError     = "local_error"
	OutcomeTransportError = "transport_error"
)

// Outcome classifies the error returned by a dispatch.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case IsLocal(err):
		return OutcomeLocalError
	default:
		if _, ok := AsAPIError(err); ok {
			return OutcomeAPIError
		}
		return OutcomeTransportError
	}
}

// PrometheusObserver records request counts and latencies per endpoint.
type PrometheusObserver struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusObserver creates the collectors and registers them with reg.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	o := &PrometheusObserver{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fabforge",
			Subsystem: "playfab",
			Name:      "requests_total",
			Help:      "PlayFab API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fabforge",
			Subsystem: "playfab",
			Name:      "request_duration_seconds",
			Help:      "PlayFab API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	for _, c := range []prometheus.Collector{o.requests, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *PrometheusObserver) ObserveDispatch(_ context.Context, info DispatchInfo) {
	name := info.Endpoint.FullName()
	o.requests.WithLabelValues(name, Outcome(info.Err)).Inc()
	o.duration.WithLabelValues(name).Observe(info.Duration.Seconds())
}
