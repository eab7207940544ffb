package material

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Input struct {
	Dimensions   BoxDimensions `json:"dimensions"`
	MaterialID   string        `json:"material_id"`
	SafetyFactor float64       `json:"safety_factor"`
}

type Output struct {
	Result          *WeightResult `json:"result"`
	FormattedWeight string        `json:"formatted_weight"`
	FormattedVolume string        `json:"formatted_volume"`
	Capacity        Capacity      `json:"capacity"`
	Recommendations []string      `json:"recommendations"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := CalculateLoadWeight(input.Dimensions, input.MaterialID)
	if res == nil {
		http.Error(w, "Unknown material or invalid dimensions", http.StatusBadRequest)
		return
	}
	out := Output{
		Result:          res,
		FormattedWeight: FormatWeight(res.WeightKg),
		FormattedVolume: FormatVolume(res.VolumeM3),
		Capacity:        RequiredCapacity(res.WeightKg, input.SafetyFactor),
		Recommendations: SafetyRecommendations(res.Material, res.WeightKg),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	w.Header().Set("Content-Type", "application/json")
	if category != "" {
		json.NewEncoder(w).Encode(ByCategory(category))
		return
	}
	json.NewEncoder(w).Encode(All())
}
