// Package metrics defines prometheus collectors for SQL statements and HTTP requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// collectors, registered on the default registry
var (
	Statements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "feedreader_sql_statements_total", Help: "SQL executions by mode and outcome"},
		[]string{"mode", "status"},
	)
	StatementLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "feedreader_sql_duration_seconds", Help: "SQL execution time by mode", Buckets: prometheus.DefBuckets},
		[]string{"mode"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "feedreader_http_requests_total", Help: "HTTP requests by route, method and status"},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "feedreader_http_request_duration_seconds", Help: "HTTP request time by route and method", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
)

func init() {
	prometheus.MustRegister(Statements, StatementLatency, HTTPRequests, HTTPLatency)
}

// ObserveStatement records one executor call
func ObserveStatement(mode string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	Statements.WithLabelValues(mode, status).Inc()
	StatementLatency.WithLabelValues(mode).Observe(time.Since(started).Seconds())
}

// Middleware counts requests and measures latency. Path label is the matched mux pattern
// so query strings and unknown paths don't blow up cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, r.Method, strconv.Itoa(sw.status)).Inc()
	})
}

// Handler returns the prometheus exposition handler
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
