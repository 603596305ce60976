package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStatement(t *testing.T) {
	okBefore := testutil.ToFloat64(Statements.WithLabelValues("test-mode", "ok"))
	errBefore := testutil.ToFloat64(Statements.WithLabelValues("test-mode", "error"))

	ObserveStatement("test-mode", time.Now(), nil)
	ObserveStatement("test-mode", time.Now(), nil)
	ObserveStatement("test-mode", time.Now(), errors.New("failed"))

	assert.InDelta(t, okBefore+2, testutil.ToFloat64(Statements.WithLabelValues("test-mode", "ok")), 0.001)
	assert.InDelta(t, errBefore+1, testutil.ToFloat64(Statements.WithLabelValues("test-mode", "error")), 0.001)
}

func TestMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Middleware(mux)

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("unmatched", http.MethodGet, "404"))

	req := httptest.NewRequest(http.MethodGet, "/nothing/here", http.NoBody)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues("unmatched", http.MethodGet, "404")), 0.001)

	req = httptest.NewRequest(http.MethodGet, "/items/1", http.NoBody)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestHandler(t *testing.T) {
	ObserveStatement("scrape", time.Now(), nil)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `feedreader_sql_statements_total{mode="scrape",status="ok"}`)
}
