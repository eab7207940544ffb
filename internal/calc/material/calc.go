package material

import (
	"fmt"
	"math"
	"strings"
)

// BoxDimensions are user-entered and unit-tagged; Unit is one of "m", "cm"
// or "mm" and defaults to metres.
type BoxDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Unit   string  `json:"unit"`
}

type WeightResult struct {
	VolumeM3     float64  `json:"volume_m3"`
	WeightKg     float64  `json:"weight_kg"`
	WeightTonnes float64  `json:"weight_tonnes"`
	Material     Material `json:"material"`
}

type Capacity struct {
	MinCapacityKg         float64 `json:"min_capacity_kg"`
	RecommendedCapacityKg float64 `json:"recommended_capacity_kg"`
	SafetyFactor          float64 `json:"safety_factor"`
}

// DefaultSafetyFactor is the rigging-plan policy constant, not a user knob.
const DefaultSafetyFactor = 2.0

func unitFactor(unit string) float64 {
	switch unit {
	case "cm":
		return 0.01
	case "mm":
		return 0.001
	default:
		return 1
	}
}

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// CalculateLoadWeight converts the box to metres and applies the material
// density. Returns nil for an unknown material or a non-positive dimension.
func CalculateLoadWeight(dims BoxDimensions, materialID string) *WeightResult {
	m := ByID(materialID)
	if m == nil {
		return nil
	}
	if dims.Width <= 0 || dims.Height <= 0 || dims.Length <= 0 {
		return nil
	}
	f := unitFactor(dims.Unit)
	volume := dims.Width * f * dims.Height * f * dims.Length * f
	weightKg := volume * m.DensityKgM3
	return &WeightResult{
		VolumeM3:     roundTo(volume, 3),
		WeightKg:     roundTo(weightKg, 2),
		WeightTonnes: roundTo(weightKg/1000, 3),
		Material:     *m,
	}
}

// FormatWeight switches to tonnes at 1000 kg. The threshold and decimal
// places are a display contract shared with the mobile client.
func FormatWeight(weightKg float64) string {
	if weightKg >= 1000 {
		return fmt.Sprintf("%.2f tonnes", weightKg/1000)
	}
	return fmt.Sprintf("%.1f kg", weightKg)
}

// FormatVolume picks cm³ below a litre, litres below a cubic metre.
func FormatVolume(volumeM3 float64) string {
	if volumeM3 < 0.001 {
		return fmt.Sprintf("%.0f cm³", volumeM3*1e6)
	}
	if volumeM3 < 1 {
		return fmt.Sprintf("%.1f litres", volumeM3*1000)
	}
	return fmt.Sprintf("%.3f m³", volumeM3)
}

// SafetyRecommendations builds the advisory list in fixed order: material
// note, weight tier, category hazard.
func SafetyRecommendations(m Material, weightKg float64) []string {
	var recs []string
	if m.SafetyNotes != "" {
		recs = append(recs, m.SafetyNotes)
	}
	switch {
	case weightKg > 5000:
		recs = append(recs,
			"Very heavy load: appoint a lift supervisor and use certified heavy-lift equipment.",
			"Verify ground bearing capacity at the crane position.")
	case weightKg > 1000:
		recs = append(recs,
			"Heavy load: confirm crane and sling capacity before lifting.")
	}
	switch m.Category {
	case CategoryMetals:
		recs = append(recs, "Metal loads can have sharp edges. Use sling protection sleeves.")
	case CategoryLiquids:
		recs = append(recs,
			"Check container integrity before lifting.",
			"Have spill containment ready; liquid loads shift in transit.")
	case CategoryAggregates:
		recs = append(recs, "Loose material: lift in a closed container to prevent spillage.")
	case CategoryConstruction:
		if strings.Contains(m.Name, "Concrete") {
			recs = append(recs, "Check cast-in lifting points and reinforcement before rigging.")
		}
	}
	return recs
}

// RequiredCapacity applies the safety factor to the load weight; a
// non-positive factor falls back to the default.
func RequiredCapacity(weightKg, safetyFactor float64) Capacity {
	if safetyFactor <= 0 {
		safetyFactor = DefaultSafetyFactor
	}
	return Capacity{
		MinCapacityKg:         math.Ceil(weightKg * safetyFactor),
		RecommendedCapacityKg: math.Ceil(weightKg * (safetyFactor + 0.5)),
		SafetyFactor:          safetyFactor,
	}
}
