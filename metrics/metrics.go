// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status_code"})

	BillPDFs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bill_pdfs_rendered_total",
		Help: "Bill PDFs rendered, by bill kind.",
	}, []string{"kind"})

	BillEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bill_emails_total",
		Help: "Bill emails attempted, by bill kind and result.",
	}, []string{"kind", "result"})
)

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
