package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsMiddleware_LabelsByRoutePattern(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry, "flight-booking")

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/api/bookings/{reference}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bookings/ABC123", nil))

	families, err := registry.Gather()
	require.NoError(t, err)

	var route, status string
	for _, mf := range families {
		if mf.GetName() != "flight_booking_http_requests_total" {
			continue
		}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			switch lp.GetName() {
			case "route":
				route = lp.GetValue()
			case "status":
				status = lp.GetValue()
			}
		}
	}

	assert.Equal(t, "/api/bookings/{reference}", route)
	assert.Equal(t, "418", status)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics

	metrics.ObserveGate(RouteAdmin, DecisionAllow)

	rec := httptest.NewRecorder()
	metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	})))

	t.Run("keeps incoming id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, r)

		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", seen)
	})

	t.Run("generates when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestRecover_ReturnsGenericError(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("database password leaked in panic")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal server error"}`, rec.Body.String())
}
