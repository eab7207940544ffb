package equipment

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Handler struct {
	Tracker *Tracker
}

// EntryView decorates a stored entry with its derived status for the list
// screens.
type EntryView struct {
	Entry
	StatusInfo StatusInfo `json:"status_info"`
}

func writeTrackerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDuplicateID):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "Storage error", http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Tracker.List(r.Context())
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	now := time.Now()
	q := r.URL.Query()
	if status := q.Get("status"); status != "" {
		list = FilterByStatus(list, status, now)
	}
	if typ := q.Get("type"); typ != "" {
		list = FilterByType(list, typ)
	}
	views := make([]EntryView, 0, len(list))
	for _, e := range list {
		views = append(views, EntryView{Entry: e, StatusInfo: Status(e, now)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var f Form
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if v := Validate(f, time.Now()); !v.IsValid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(v)
		return
	}
	entry, err := h.Tracker.Add(r.Context(), f)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	entry, err := h.Tracker.UpdateEntry(r.Context(), id, upd)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Tracker.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeTrackerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RecordTest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var rec TestRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if rec.Date == "" || (rec.Result != "pass" && rec.Result != "fail") {
		http.Error(w, "Test date and pass/fail result required", http.StatusBadRequest)
		return
	}
	entry, err := h.Tracker.RecordTest(r.Context(), id, rec)
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	list, err := h.Tracker.List(r.Context())
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Summarize(list, time.Now()))
}

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Types())
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	list, err := h.Tracker.List(r.Context())
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	now := time.Now()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+suggestedFilename("csv", now)+`"`)
	w.Write([]byte(ExportCSV(list, now)))
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	list, err := h.Tracker.List(r.Context())
	if err != nil {
		writeTrackerError(w, err)
		return
	}
	now := time.Now()
	f, err := ExportXLSX(list, now)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+suggestedFilename("xlsx", now)+`"`)
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
