package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes
const (
	LoginSuccess        = "success"
	LoginInvalid        = "invalid_credentials"
	LoginTenantNotFound = "tenant_not_found"
	LoginTenantInactive = "tenant_inactive"
	LoginUserInactive   = "user_inactive"
	LoginThrottled      = "throttled"
)

// Metrics holds the application's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	loginAttempts        *prometheus.CounterVec
	quotaRejections      *prometheus.CounterVec
	tenantsRegistered    prometheus.Counter
	tenantContextMissing prometheus.Counter
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry, prefix string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		loginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_login_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		quotaRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_quota_rejections_total",
				Help: "Creations rejected because a tenant quota was reached",
			},
			[]string{"resource"},
		),
		tenantsRegistered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_tenants_registered_total",
				Help: "Total number of tenants registered",
			},
		),
		tenantContextMissing: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_tenant_context_missing_total",
				Help: "Total number of requests without tenant context",
			},
		),
	}
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = errorStatus(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.httpRequestsTotal.WithLabelValues(labels...).Inc()
			m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func errorStatus(err error) int {
	var statusErr interface{ Status() int }
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Status()
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}

func (m *Metrics) RecordLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordQuotaRejection(resource string) {
	if m == nil {
		return
	}
	m.quotaRejections.WithLabelValues(resource).Inc()
}

func (m *Metrics) RecordTenantRegistered() {
	if m == nil {
		return
	}
	m.tenantsRegistered.Inc()
}

func (m *Metrics) RecordTenantContextMissing() {
	if m == nil {
		return
	}
	m.tenantContextMissing.Inc()
}
