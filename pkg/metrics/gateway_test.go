package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGatewayMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGatewayMetrics(reg)

	m.IncSuccess("order-service")
	m.IncSuccess("order-service")
	m.IncFailure("payment-service")
	m.ObserveDuration("order-service", 120*time.Millisecond)

	if got := testutil.ToFloat64(m.success.WithLabelValues("order-service")); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.failure.WithLabelValues("payment-service")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
}

func TestGatewayMetricsNilSafe(t *testing.T) {
	var m *GatewayMetrics
	m.IncSuccess("x")
	m.IncFailure("x")
	m.ObserveDuration("x", time.Second)

	empty := NewGatewayMetrics(nil)
	empty.IncSuccess("unlabeled")
}

func TestNormalizeLabel(t *testing.T) {
	if got := normalizeLabel(""); got != "unknown" {
		t.Fatalf("empty label should normalize to unknown, got %q", got)
	}
}
