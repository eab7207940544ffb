package geometry

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Input struct {
	WidthM     float64 `json:"width_m"`
	HeightM    float64 `json:"height_m"`
	LengthM    float64 `json:"length_m"`
	TotalLoadT float64 `json:"total_load_t"`
}

type Output struct {
	Dimensions Dimensions `json:"dimensions"`
	Result     *Result    `json:"result"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	dims := Dimensions{WidthM: input.WidthM, HeightM: input.HeightM, LengthM: input.LengthM}
	res := CalculateSlingAngles(dims, input.TotalLoadT)
	if res == nil {
		http.Error(w, "At least two positive dimensions required", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{Dimensions: CompleteDimensions(dims), Result: res})
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var dims Dimensions
	if err := json.NewDecoder(r.Body).Decode(&dims); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ValidateDimensions(dims))
}
