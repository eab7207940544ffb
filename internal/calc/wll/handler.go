package wll

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Input struct {
	SlingTypeID   string `json:"sling_type_id"`
	Size          string `json:"size"`
	Configuration string `json:"configuration"`
}

type Output struct {
	SlingTypeID   string  `json:"sling_type_id"`
	Size          string  `json:"size"`
	Configuration string  `json:"configuration"`
	WLLTonnes     float64 `json:"wll_tonnes"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	v, ok := Lookup(input.SlingTypeID, input.Size, input.Configuration)
	if !ok {
		http.Error(w, "No WLL tabulated for that combination", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{
		SlingTypeID:   input.SlingTypeID,
		Size:          input.Size,
		Configuration: input.Configuration,
		WLLTonnes:     v,
	})
}

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Types())
}

func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("sling_type_id")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{
		"sizes":          AvailableSizes(id),
		"configurations": AvailableConfigurations(id),
	})
}
