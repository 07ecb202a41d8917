// Package metrics holds the Prometheus collectors of the signing service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docsign"

// Metrics is the set of application collectors, registered on its own
// registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	tokenValidations *prometheus.CounterVec
	signatures       *prometheus.CounterVec
	notifications    *prometheus.CounterVec
	completions      prometheus.Counter
	expiredTokens    prometheus.Counter
	expiredRequests  prometheus.Counter
	httpDuration     *prometheus.HistogramVec
}

// New creates and registers all collectors, plus the Go runtime and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		tokenValidations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_validations_total",
			Help:      "Signer access token validations by result.",
		}, []string{"result"}),
		signatures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signatures_captured_total",
			Help:      "Signatures captured by signer role.",
		}, []string{"role"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Signer notifications by channel and delivery status.",
		}, []string{"channel", "status"}),
		completions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_completed_total",
			Help:      "Signature requests that reached completed.",
		}),
		expiredTokens: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_expired_total",
			Help:      "Signer tokens flagged expired by the cleanup sweep.",
		}),
		expiredRequests: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_expired_total",
			Help:      "Signature requests moved to expired by the sweep.",
		}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the registry for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

func (m *Metrics) TokenValidated(result string) { m.tokenValidations.WithLabelValues(result).Inc() }

func (m *Metrics) SignatureCaptured(role string) { m.signatures.WithLabelValues(role).Inc() }

func (m *Metrics) NotificationSent(channel, status string) {
	m.notifications.WithLabelValues(channel, status).Inc()
}

func (m *Metrics) RequestCompleted() { m.completions.Inc() }

func (m *Metrics) TokensExpired(n int) { m.expiredTokens.Add(float64(n)) }

func (m *Metrics) RequestsExpired(n int) { m.expiredRequests.Add(float64(n)) }

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Nop discards every observation. Used by commands and tests that do not
// expose metrics.
type Nop struct{}

func (Nop) TokenValidated(string)                          {}
func (Nop) SignatureCaptured(string)                       {}
func (Nop) NotificationSent(string, string)                {}
func (Nop) RequestCompleted()                              {}
func (Nop) TokensExpired(int)                              {}
func (Nop) RequestsExpired(int)                            {}
func (Nop) ObserveHTTP(string, string, int, time.Duration) {}
