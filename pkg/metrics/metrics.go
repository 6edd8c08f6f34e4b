package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the Prometheus registry for inbound and upstream traffic.
type Collector struct {
	registry         *prometheus.Registry
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New builds a collector backed by its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_proxy_upstream_requests_total",
			Help: "Outbound requests to upstream providers by status code.",
		}, []string{"provider", "code", "method"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_proxy_upstream_request_duration_seconds",
			Help:    "Latency of outbound requests to upstream providers.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider", "method"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_proxy_http_requests_total",
			Help: "Inbound API requests by route and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_proxy_http_request_duration_seconds",
			Help:    "Latency of inbound API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	c.registry.MustRegister(
		c.upstreamRequests,
		c.upstreamDuration,
		c.httpRequests,
		c.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry exposes the underlying registry, mostly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// InstrumentClient returns a copy of client whose transport records per-provider metrics.
func (c *Collector) InstrumentClient(provider string, client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{}
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	labels := prometheus.Labels{"provider": provider}
	transport := promhttp.InstrumentRoundTripperCounter(
		c.upstreamRequests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(c.upstreamDuration.MustCurryWith(labels), base),
	)
	instrumented := *client
	instrumented.Transport = transport
	return &instrumented
}

// ObserveRequest records one inbound request.
func (c *Collector) ObserveRequest(route, method string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(route, method).Observe(seconds)
}
