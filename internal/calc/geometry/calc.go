package geometry

import "math"

// Dimensions of the symmetric two-leg lifting triangle. A zero value means
// the side was not supplied; the load hangs centered below the two legs, so
// length² = (width/2)² + height².
type Dimensions struct {
	WidthM  float64 `json:"width_m"`
	HeightM float64 `json:"height_m"`
	LengthM float64 `json:"length_m"`
}

type Result struct {
	IncludedAngleDeg     float64 `json:"included_angle_deg"`
	AngleFromVerticalDeg float64 `json:"angle_from_vertical_deg"`
	LoadFactor           float64 `json:"load_factor"`
	LoadPerLegT          float64 `json:"load_per_leg_t,omitempty"`
	SafetyLevel          string  `json:"safety_level"`
	SafetyMessage        string  `json:"safety_message"`
}

type Validation struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

const (
	LevelSafe    = "safe"
	LevelCaution = "caution"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

const (
	msgSafe    = "Safe angle range. Good rigging practice."
	msgCaution = "Caution: Moderate sling angle. Check load factor before lifting."
	msgWarning = "Warning: High sling angle. Use longer slings to reduce leg tension."
	msgDanger  = "Danger: Extreme sling angle. Do not lift!"
)

func round2(x float64) float64 { return math.Round(x*100) / 100.0 }

// CompleteDimensions fills in whichever one of the three sides is missing.
// If the two supplied sides cannot form the right triangle, the missing side
// stays zero and callers must treat the result as invalid input.
func CompleteDimensions(d Dimensions) Dimensions {
	switch {
	case d.LengthM <= 0 && d.WidthM > 0 && d.HeightM > 0:
		d.LengthM = math.Sqrt(math.Pow(d.WidthM/2, 2) + math.Pow(d.HeightM, 2))
	case d.HeightM <= 0 && d.WidthM > 0 && d.LengthM > 0:
		if d.LengthM > d.WidthM/2 {
			d.HeightM = math.Sqrt(math.Pow(d.LengthM, 2) - math.Pow(d.WidthM/2, 2))
		}
	case d.WidthM <= 0 && d.HeightM > 0 && d.LengthM > 0:
		if d.LengthM > d.HeightM {
			d.WidthM = 2 * math.Sqrt(math.Pow(d.LengthM, 2) - math.Pow(d.HeightM, 2))
		}
	}
	return d
}

// CalculateSlingAngles needs at least two positive sides and completes the
// third. Returns nil when fewer than two sides are supplied or the triangle
// is degenerate. totalLoadT <= 0 skips the per-leg load.
func CalculateSlingAngles(d Dimensions, totalLoadT float64) *Result {
	known := 0
	for _, v := range []float64{d.WidthM, d.HeightM, d.LengthM} {
		if v > 0 {
			known++
		}
	}
	if known < 2 {
		return nil
	}

	d = CompleteDimensions(d)
	if d.WidthM <= 0 || d.HeightM <= 0 {
		return nil
	}

	fromVertical := math.Atan((d.WidthM / 2) / d.HeightM) * 180 / math.Pi
	included := 2 * fromVertical
	loadFactor := 1 / math.Cos(fromVertical*math.Pi/180)

	level, message := Classify(included)
	res := &Result{
		IncludedAngleDeg:     round2(included),
		AngleFromVerticalDeg: round2(fromVertical),
		LoadFactor:           round2(loadFactor),
		SafetyLevel:          level,
		SafetyMessage:        message,
	}
	if totalLoadT > 0 {
		res.LoadPerLegT = round2(CalculateLoadPerLeg(totalLoadT, included))
	}
	return res
}

// Classify buckets an included angle; upper bounds are inclusive.
func Classify(includedAngleDeg float64) (level, message string) {
	switch {
	case includedAngleDeg <= 60:
		return LevelSafe, msgSafe
	case includedAngleDeg <= 90:
		return LevelCaution, msgCaution
	case includedAngleDeg <= 120:
		return LevelWarning, msgWarning
	default:
		return LevelDanger, msgDanger
	}
}

// CalculateLoadPerLeg returns the tension carried by each of the two legs.
// Degenerate angles (<= 0 or >= 180) return 0.
func CalculateLoadPerLeg(totalLoad, includedAngleDeg float64) float64 {
	if includedAngleDeg <= 0 || includedAngleDeg >= 180 {
		return 0
	}
	factor := 1 / math.Cos(includedAngleDeg/2*math.Pi/180)
	return totalLoad * factor / 2
}

// ValidateDimensions checks a fully specified triangle for consistency. The
// recomputed height must agree with the supplied one within 0.01 m.
func ValidateDimensions(d Dimensions) Validation {
	if d.WidthM <= 0 || d.HeightM <= 0 || d.LengthM <= 0 {
		return Validation{Error: "All dimensions must be positive"}
	}
	if d.LengthM <= d.WidthM/2 {
		return Validation{Error: "Sling length must be greater than half the width"}
	}
	if d.LengthM <= d.HeightM {
		return Validation{Error: "Sling length must be greater than the height"}
	}
	expected := math.Sqrt(math.Pow(d.LengthM, 2) - math.Pow(d.WidthM/2, 2))
	if math.Abs(expected-d.HeightM) > 0.01 {
		return Validation{Error: "Dimensions do not form a valid lifting triangle"}
	}
	return Validation{IsValid: true}
}
