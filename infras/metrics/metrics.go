package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow and its backend calls.
type BookingMetrics struct {
	remoteCalls    *prometheus.CounterVec
	remoteLatency  *prometheus.HistogramVec
	verifications  *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	storeFallbacks *prometheus.CounterVec
}

// New registers the booking metrics on the default registry served at /metrics.
func New() *BookingMetrics {
	return NewBookingMetrics(prometheus.DefaultRegisterer)
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Total calls to the backend service by endpoint and outcome",
		}, []string{"endpoint", "status"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "backend",
			Name:      "call_latency_seconds",
			Help:      "Latency of backend calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "slot_verifications_total",
			Help:      "Slot re-verifications by call site and result",
		}, []string{"site", "result"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions by terminal outcome",
		}, []string{"outcome"}),
		storeFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "store",
			Name:      "fallbacks_total",
			Help:      "Session store operations served from memory after a persistence failure",
		}, []string{"op"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.remoteCalls, m.remoteLatency, m.verifications, m.submissions, m.storeFallbacks)

	return m
}

func (m *BookingMetrics) ObserveRemoteCall(endpoint, status string, seconds float64) {
	if m == nil {
		return
	}
	m.remoteCalls.WithLabelValues(endpoint, status).Inc()
	m.remoteLatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *BookingMetrics) ObserveVerification(site string, available bool) {
	if m == nil {
		return
	}
	result := "unavailable"
	if available {
		result = "available"
	}
	m.verifications.WithLabelValues(site, result).Inc()
}

func (m *BookingMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveStoreFallback(op string) {
	if m == nil {
		return
	}
	m.storeFallbacks.WithLabelValues(op).Inc()
}
