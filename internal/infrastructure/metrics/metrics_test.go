package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(InstrumentHandler)
	router.HandleFunc("/v1/listing/{kind}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/listing/{kind}", "404"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/listing/dragons", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/v1/listing/{kind}", "404"))
	assert.Equal(t, before+1, after)
}

func TestInstrumentHandler_UnmatchedRoute(t *testing.T) {
	handler := InstrumentHandler(http.NotFoundHandler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordGenerationAndShortage(t *testing.T) {
	beforeRuns := testutil.ToFloat64(generations.WithLabelValues(OutcomeShortage))
	beforeSteps := testutil.ToFloat64(shortages.WithLabelValues("items"))

	RecordGeneration(OutcomeShortage)
	RecordShortage("items")

	assert.Equal(t, beforeRuns+1, testutil.ToFloat64(generations.WithLabelValues(OutcomeShortage)))
	assert.Equal(t, beforeSteps+1, testutil.ToFloat64(shortages.WithLabelValues("items")))
}

func TestObserveStoreQuery(t *testing.T) {
	ObserveStoreQuery("random_items", 2*time.Millisecond, nil)
	ObserveStoreQuery("random_items", 0, errors.New("boom"))

	assert.GreaterOrEqual(t, testutil.CollectAndCount(storeQueries), 2)
}

func TestHandler_ServesRegistry(t *testing.T) {
	RecordGeneration(OutcomeGenerated)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chargen_generation_runs_total")
}
