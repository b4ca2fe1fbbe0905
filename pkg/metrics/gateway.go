package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics records the health of calls made through the API gateway.
type GatewayMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewGatewayMetrics registers the gateway metrics on the provided registerer.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	if reg == nil {
		return &GatewayMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_call_duration_seconds",
		Help:    "Duration of calls through the API gateway in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_call_success",
		Help: "Gateway calls that returned a success envelope.",
	}, []string{"service"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_call_failure",
		Help: "Gateway calls that failed or returned a failure envelope.",
	}, []string{"service"})
	reg.MustRegister(duration, success, failure)
	return &GatewayMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration of a call to the named service.
func (g *GatewayMetrics) ObserveDuration(service string, duration time.Duration) {
	if g == nil || g.duration == nil {
		return
	}
	g.duration.WithLabelValues(normalizeLabel(service)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named service.
func (g *GatewayMetrics) IncSuccess(service string) {
	if g == nil || g.success == nil {
		return
	}
	g.success.WithLabelValues(normalizeLabel(service)).Inc()
}

// IncFailure increments the failure counter for the named service.
func (g *GatewayMetrics) IncFailure(service string) {
	if g == nil || g.failure == nil {
		return
	}
	g.failure.WithLabelValues(normalizeLabel(service)).Inc()
}

func normalizeLabel(service string) string {
	if service == "" {
		return "unknown"
	}
	return service
}
