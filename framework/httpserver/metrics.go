package httpserver

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the page counters. Pass a private registry in tests.
type Metrics struct {
	registry *prometheus.Registry

	pagesRendered  *prometheus.CounterVec
	notFound       *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		pagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "besthair_pages_rendered_total",
			Help: "Pages rendered successfully, by route pattern.",
		}, []string{"route"}),
		notFound: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "besthair_not_found_total",
			Help: "Not found responses, by source.",
		}, []string{"source"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "besthair_page_render_seconds",
			Help:    "Time spent rendering a page, by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) observeRender(route string, started time.Time, err error) {
	if m == nil {
		return
	}

	m.renderDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
	if err == nil {
		m.pagesRendered.WithLabelValues(route).Inc()
	}
}

func (m *Metrics) observeNotFound(source string) {
	if m == nil {
		return
	}
	m.notFound.WithLabelValues(source).Inc()
}
