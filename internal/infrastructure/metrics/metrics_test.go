package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitos/crypto_scenario/internal/infrastructure/metrics"
)

func TestRegistry_Counters(t *testing.T) {
	r := metrics.NewRegistry()

	r.RecordResolution("bullish", "en")
	r.RecordResolution("bullish", "en")
	r.RecordResolution("warning", "he")
	r.RecordUnresolved("key")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Resolutions.WithLabelValues("bullish", "en")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Resolutions.WithLabelValues("warning", "he")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Unresolved.WithLabelValues("key")))
}

func TestRegistry_IndependentInstances(t *testing.T) {
	a := metrics.NewRegistry()
	b := metrics.NewRegistry()
	a.RecordUnresolved("locale")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Unresolved.WithLabelValues("locale")))
}

func TestRegistry_Handler(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordResolution("neutral", "en")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `scenario_resolutions_total{locale="en",type="neutral"} 1`))
}
