package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Instrument)
	r.Get("/api/groups/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/api/groups/1", "/api/groups/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/groups/{id}", "404"))
	assert.Equal(t, 2.0, got)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestExpenseRecorded(t *testing.T) {
	m := New()
	m.ExpenseRecorded("expense", 300)
	m.ExpenseRecorded("settlement", -100)
	m.ExpenseRecorded("settlement", -50)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.expenses.WithLabelValues("expense")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.expenses.WithLabelValues("settlement")))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.amounts.WithLabelValues("settlement")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ExpenseRecorded("expense", 10)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "split_app_ledger_expenses_recorded_total"))
}
