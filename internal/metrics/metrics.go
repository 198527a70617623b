package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "workforce"

type Metrics struct {
	registry   *prometheus.Registry
	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   prometheus.Gauge
	events     *prometheus.CounterVec
}

func New() *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Buckets: prometheus.DefBuckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: "http_requests_inflight"})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "domain_events_total", Help: "Completed domain operations by name."}, []string{"event"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl, events)

	return &Metrics{
		registry:   r,
		httpReqCnt: httpReqCnt,
		httpDur:    httpDur,
		httpInfl:   httpInfl,
		events:     events,
	}
}

// Event counts a completed domain operation. Safe on a nil receiver.
func (m *Metrics) Event(name string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(name).Inc()
}

func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.httpInfl.Inc()
		defer m.httpInfl.Dec()
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		route := c.Route().Path
		code := strconv.Itoa(status)
		m.httpReqCnt.WithLabelValues(c.Method(), route, code).Inc()
		m.httpDur.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
