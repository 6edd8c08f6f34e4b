package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentClientCountsUpstreamCalls(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	collector := New()
	client := collector.InstrumentClient("chat", &http.Client{})

	resp, err := client.Get(upstream.URL)
	require.NoError(t, err)
	resp.Body.Close()

	count := testutil.ToFloat64(collector.upstreamRequests.WithLabelValues("chat", "429", "get"))
	require.Equal(t, 1.0, count)
}

func TestHandlerExposesInboundCounters(t *testing.T) {
	collector := New()
	collector.ObserveRequest("/api/poi", http.MethodPost, http.StatusOK, 0.2)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.True(t, strings.Contains(body, `travel_proxy_http_requests_total{method="POST",route="/api/poi",status="200"} 1`), body)
}
