package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/thep2p/go-staker-manager/internal/metrics"
)

func TestMetricsInc(t *testing.T) {
	m := metrics.NewMetrics()

	m.Inc(metrics.ApplyAttempts, "mainnet")
	m.Inc(metrics.ApplyAttempts, "mainnet")
	m.Inc(metrics.ApplyFailed, "gnosis", "submit")

	require.Equal(t, 2.0, testutil.ToFloat64(m.GetCounterVec(metrics.ApplyAttempts).WithLabelValues("mainnet")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.GetCounterVec(metrics.ApplyFailed).WithLabelValues("gnosis", "submit")))
	require.Nil(t, m.GetCounterVec("unknown"))
}

// TestMetricsIndependentRegistries verifies two instances can coexist.
func TestMetricsIndependentRegistries(t *testing.T) {
	a := metrics.NewMetrics()
	b := metrics.NewMetrics()

	a.Inc(metrics.StakerConfigWrites, "prater")
	require.Equal(t, 0.0, testutil.ToFloat64(b.GetCounterVec(metrics.StakerConfigWrites).WithLabelValues("prater")))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() { m.Inc(metrics.ApplyAttempts, "mainnet") })
}

func TestMetricsHandler(t *testing.T) {
	m := metrics.NewMetrics()
	m.Inc(metrics.StakerConfigReads, "mainnet")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `staker_api_config_reads{network="mainnet"} 1`)
}
