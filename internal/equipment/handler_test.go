package equipment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RigSafe/internal/store"
)

func newTestRouter() (*mux.Router, *Tracker) {
	tr := NewTracker(store.NewMemoryStore())
	h := &Handler{Tracker: tr}

	r := mux.NewRouter()
	r.HandleFunc("/equipment", h.List).Methods("GET")
	r.HandleFunc("/equipment", h.Add).Methods("POST")
	r.HandleFunc("/equipment/summary", h.Summary).Methods("GET")
	r.HandleFunc("/equipment/export/csv", h.ExportCSV).Methods("GET")
	r.HandleFunc("/equipment/{id}", h.Update).Methods("PUT")
	r.HandleFunc("/equipment/{id}", h.Delete).Methods("DELETE")
	r.HandleFunc("/equipment/{id}/tests", h.RecordTest).Methods("POST")
	return r, tr
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func addBody(id string) string {
	yesterday := time.Now().AddDate(0, 0, -1).Format(DateLayout)
	return `{"id":"` + id + `","type":"chainSling","wll_tonnes":3.15,"last_test_date":"` + yesterday + `"}`
}

func TestHandler_AddListDelete(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, "POST", "/equipment", addBody("SL-001"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, "GET", "/equipment", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SL-001"`)
	assert.Contains(t, rec.Body.String(), `"status_info"`)

	rec = doJSON(t, r, "DELETE", "/equipment/SL-001", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, "DELETE", "/equipment/SL-001", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_AddValidationErrorsAsData(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, "POST", "/equipment", `{"id":"","type":"","wll_tonnes":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"errors"`)
	assert.Contains(t, rec.Body.String(), `"last_test_date"`)
}

func TestHandler_DuplicateIDConflict(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, "POST", "/equipment", addBody("SL-001"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, "POST", "/equipment", addBody("SL-001"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestHandler_RecordTestValidation(t *testing.T) {
	r, _ := newTestRouter()
	doJSON(t, r, "POST", "/equipment", addBody("SL-001"))

	rec := doJSON(t, r, "POST", "/equipment/SL-001/tests", `{"date":"2025-01-10","result":"maybe"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, "POST", "/equipment/SL-001/tests",
		`{"date":"2025-01-10","type":"quarterly","authority":"LiftCert","result":"pass"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"test_history"`)
}

func TestHandler_SummaryAndCSV(t *testing.T) {
	r, _ := newTestRouter()
	doJSON(t, r, "POST", "/equipment", addBody("SL-001"))

	rec := doJSON(t, r, "GET", "/equipment/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec = doJSON(t, r, "GET", "/equipment/export/csv", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), `"ID","Type"`))
}
