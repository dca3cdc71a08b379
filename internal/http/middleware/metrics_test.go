package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/siamsupply/shop-api/internal/http/middleware"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.Metrics(m))
	r.Get("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a", "b", "missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "/api/products/{id}")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorCount.WithLabelValues("GET", "/api/products/{id}", "4xx")))
}
