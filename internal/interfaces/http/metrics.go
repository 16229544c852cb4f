package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "cobranca"

// httpRequestsTotal conta requisições por método, rota e status.
var httpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP atendidas.",
	},
	[]string{"method", "route", "status"},
)

// httpRequestDuration mede a latência por método e rota.
var httpRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP em segundos.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// Metrics instrumenta cada requisição com as métricas Prometheus.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
			httpRequestDuration.WithLabelValues(c.Method(), c.Route().Path).Observe(v)
		}))
		err := c.Next()
		timer.ObserveDuration()
		httpRequestsTotal.WithLabelValues(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}

// MetricsHandler expõe o endpoint /metrics no formato Prometheus.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
