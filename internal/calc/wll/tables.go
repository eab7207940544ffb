package wll

// Published working load limits in tonnes, per sling type, size and
// rig configuration. Chain and wire rope sizes are nominal diameters in
// millimetres; synthetic slings use the EN 1492 colour code. The values are
// manufacturer/standard tabulated constants and must be looked up exactly,
// never interpolated.

type SlingType struct {
	ID    string                        `json:"id"`
	Name  string                        `json:"name"`
	Sizes []string                      `json:"sizes"`
	WLL   map[string]map[string]float64 `json:"-"`
}

// Configurations is the fixed rig-configuration order shown to the user;
// angles are measured from vertical.
var Configurations = []string{
	"Straight Sling",
	"2-Leg @ 60°", "2-Leg @ 45°", "2-Leg @ 30°",
	"3-Leg @ 60°", "3-Leg @ 45°", "3-Leg @ 30°",
	"4-Leg @ 60°", "4-Leg @ 45°", "4-Leg @ 30°",
}

var slingTypes = []SlingType{
	{
		ID:    "chainGrade80",
		Name:  "Grade 80 Chain Sling",
		Sizes: []string{"6", "7", "8", "10", "13", "16", "20", "22", "26", "32"},
		WLL: map[string]map[string]float64{
			"6": {"Straight Sling": 1.12, "2-Leg @ 60°": 1.12, "2-Leg @ 45°": 1.57, "2-Leg @ 30°": 1.9, "3-Leg @ 60°": 1.68, "3-Leg @ 45°": 2.35, "3-Leg @ 30°": 2.8, "4-Leg @ 60°": 1.68, "4-Leg @ 45°": 2.35, "4-Leg @ 30°": 2.8},
			"7": {"Straight Sling": 1.5, "2-Leg @ 60°": 1.5, "2-Leg @ 45°": 2.1, "2-Leg @ 30°": 2.55, "3-Leg @ 60°": 2.25, "3-Leg @ 45°": 3.15, "3-Leg @ 30°": 3.75, "4-Leg @ 60°": 2.25, "4-Leg @ 45°": 3.15, "4-Leg @ 30°": 3.75},
			"8": {"Straight Sling": 2, "2-Leg @ 60°": 2, "2-Leg @ 45°": 2.8, "2-Leg @ 30°": 3.4, "3-Leg @ 60°": 3, "3-Leg @ 45°": 4.2, "3-Leg @ 30°": 5, "4-Leg @ 60°": 3, "4-Leg @ 45°": 4.2, "4-Leg @ 30°": 5},
			"10": {"Straight Sling": 3.15, "2-Leg @ 60°": 3.15, "2-Leg @ 45°": 4.41, "2-Leg @ 30°": 5.35, "3-Leg @ 60°": 4.72, "3-Leg @ 45°": 6.62, "3-Leg @ 30°": 7.88, "4-Leg @ 60°": 4.72, "4-Leg @ 45°": 6.62, "4-Leg @ 30°": 7.88},
			"13": {"Straight Sling": 5.3, "2-Leg @ 60°": 5.3, "2-Leg @ 45°": 7.42, "2-Leg @ 30°": 9.01, "3-Leg @ 60°": 7.95, "3-Leg @ 45°": 11.13, "3-Leg @ 30°": 13.25, "4-Leg @ 60°": 7.95, "4-Leg @ 45°": 11.13, "4-Leg @ 30°": 13.25},
			"16": {"Straight Sling": 8, "2-Leg @ 60°": 8, "2-Leg @ 45°": 11.2, "2-Leg @ 30°": 13.6, "3-Leg @ 60°": 12, "3-Leg @ 45°": 16.8, "3-Leg @ 30°": 20, "4-Leg @ 60°": 12, "4-Leg @ 45°": 16.8, "4-Leg @ 30°": 20},
			"20": {"Straight Sling": 12.5, "2-Leg @ 60°": 12.5, "2-Leg @ 45°": 17.5, "2-Leg @ 30°": 21.25, "3-Leg @ 60°": 18.75, "3-Leg @ 45°": 26.25, "3-Leg @ 30°": 31.25, "4-Leg @ 60°": 18.75, "4-Leg @ 45°": 26.25, "4-Leg @ 30°": 31.25},
			"22": {"Straight Sling": 15, "2-Leg @ 60°": 15, "2-Leg @ 45°": 21, "2-Leg @ 30°": 25.5, "3-Leg @ 60°": 22.5, "3-Leg @ 45°": 31.5, "3-Leg @ 30°": 37.5, "4-Leg @ 60°": 22.5, "4-Leg @ 45°": 31.5, "4-Leg @ 30°": 37.5},
			"26": {"Straight Sling": 21.2, "2-Leg @ 60°": 21.2, "2-Leg @ 45°": 29.68, "2-Leg @ 30°": 36.04, "3-Leg @ 60°": 31.8, "3-Leg @ 45°": 44.52, "3-Leg @ 30°": 53, "4-Leg @ 60°": 31.8, "4-Leg @ 45°": 44.52, "4-Leg @ 30°": 53},
			"32": {"Straight Sling": 31.5, "2-Leg @ 60°": 31.5, "2-Leg @ 45°": 44.1, "2-Leg @ 30°": 53.55, "3-Leg @ 60°": 47.25, "3-Leg @ 45°": 66.15, "3-Leg @ 30°": 78.75, "4-Leg @ 60°": 47.25, "4-Leg @ 45°": 66.15, "4-Leg @ 30°": 78.75},
		},
	},
	{
		ID:    "chainGrade100",
		Name:  "Grade 100 Chain Sling",
		Sizes: []string{"6", "7", "8", "10", "13", "16", "20", "22"},
		WLL: map[string]map[string]float64{
			"6": {"Straight Sling": 1.4, "2-Leg @ 60°": 1.4, "2-Leg @ 45°": 1.96, "2-Leg @ 30°": 2.38, "3-Leg @ 60°": 2.1, "3-Leg @ 45°": 2.94, "3-Leg @ 30°": 3.5, "4-Leg @ 60°": 2.1, "4-Leg @ 45°": 2.94, "4-Leg @ 30°": 3.5},
			"7": {"Straight Sling": 1.9, "2-Leg @ 60°": 1.9, "2-Leg @ 45°": 2.66, "2-Leg @ 30°": 3.23, "3-Leg @ 60°": 2.85, "3-Leg @ 45°": 3.99, "3-Leg @ 30°": 4.75, "4-Leg @ 60°": 2.85, "4-Leg @ 45°": 3.99, "4-Leg @ 30°": 4.75},
			"8": {"Straight Sling": 2.5, "2-Leg @ 60°": 2.5, "2-Leg @ 45°": 3.5, "2-Leg @ 30°": 4.25, "3-Leg @ 60°": 3.75, "3-Leg @ 45°": 5.25, "3-Leg @ 30°": 6.25, "4-Leg @ 60°": 3.75, "4-Leg @ 45°": 5.25, "4-Leg @ 30°": 6.25},
			"10": {"Straight Sling": 4, "2-Leg @ 60°": 4, "2-Leg @ 45°": 5.6, "2-Leg @ 30°": 6.8, "3-Leg @ 60°": 6, "3-Leg @ 45°": 8.4, "3-Leg @ 30°": 10, "4-Leg @ 60°": 6, "4-Leg @ 45°": 8.4, "4-Leg @ 30°": 10},
			"13": {"Straight Sling": 6.7, "2-Leg @ 60°": 6.7, "2-Leg @ 45°": 9.38, "2-Leg @ 30°": 11.39, "3-Leg @ 60°": 10.05, "3-Leg @ 45°": 14.07, "3-Leg @ 30°": 16.75, "4-Leg @ 60°": 10.05, "4-Leg @ 45°": 14.07, "4-Leg @ 30°": 16.75},
			"16": {"Straight Sling": 10, "2-Leg @ 60°": 10, "2-Leg @ 45°": 14, "2-Leg @ 30°": 17, "3-Leg @ 60°": 15, "3-Leg @ 45°": 21, "3-Leg @ 30°": 25, "4-Leg @ 60°": 15, "4-Leg @ 45°": 21, "4-Leg @ 30°": 25},
			"20": {"Straight Sling": 16, "2-Leg @ 60°": 16, "2-Leg @ 45°": 22.4, "2-Leg @ 30°": 27.2, "3-Leg @ 60°": 24, "3-Leg @ 45°": 33.6, "3-Leg @ 30°": 40, "4-Leg @ 60°": 24, "4-Leg @ 45°": 33.6, "4-Leg @ 30°": 40},
			"22": {"Straight Sling": 19, "2-Leg @ 60°": 19, "2-Leg @ 45°": 26.6, "2-Leg @ 30°": 32.3, "3-Leg @ 60°": 28.5, "3-Leg @ 45°": 39.9, "3-Leg @ 30°": 47.5, "4-Leg @ 60°": 28.5, "4-Leg @ 45°": 39.9, "4-Leg @ 30°": 47.5},
		},
	},
	{
		ID:    "wireRope",
		Name:  "Wire Rope Sling",
		Sizes: []string{"8", "10", "12", "14", "16", "18", "20", "22", "24", "26", "28", "32"},
		WLL: map[string]map[string]float64{
			"8": {"Straight Sling": 0.7, "2-Leg @ 60°": 0.7, "2-Leg @ 45°": 0.98, "2-Leg @ 30°": 1.19, "3-Leg @ 60°": 1.05, "3-Leg @ 45°": 1.47, "3-Leg @ 30°": 1.75, "4-Leg @ 60°": 1.05, "4-Leg @ 45°": 1.47, "4-Leg @ 30°": 1.75},
			"10": {"Straight Sling": 1.05, "2-Leg @ 60°": 1.05, "2-Leg @ 45°": 1.47, "2-Leg @ 30°": 1.78, "3-Leg @ 60°": 1.58, "3-Leg @ 45°": 2.21, "3-Leg @ 30°": 2.62, "4-Leg @ 60°": 1.58, "4-Leg @ 45°": 2.21, "4-Leg @ 30°": 2.62},
			"12": {"Straight Sling": 1.55, "2-Leg @ 60°": 1.55, "2-Leg @ 45°": 2.17, "2-Leg @ 30°": 2.63, "3-Leg @ 60°": 2.33, "3-Leg @ 45°": 3.26, "3-Leg @ 30°": 3.88, "4-Leg @ 60°": 2.33, "4-Leg @ 45°": 3.26, "4-Leg @ 30°": 3.88},
			"14": {"Straight Sling": 2.1, "2-Leg @ 60°": 2.1, "2-Leg @ 45°": 2.94, "2-Leg @ 30°": 3.57, "3-Leg @ 60°": 3.15, "3-Leg @ 45°": 4.41, "3-Leg @ 30°": 5.25, "4-Leg @ 60°": 3.15, "4-Leg @ 45°": 4.41, "4-Leg @ 30°": 5.25},
			"16": {"Straight Sling": 2.7, "2-Leg @ 60°": 2.7, "2-Leg @ 45°": 3.78, "2-Leg @ 30°": 4.59, "3-Leg @ 60°": 4.05, "3-Leg @ 45°": 5.67, "3-Leg @ 30°": 6.75, "4-Leg @ 60°": 4.05, "4-Leg @ 45°": 5.67, "4-Leg @ 30°": 6.75},
			"18": {"Straight Sling": 3.4, "2-Leg @ 60°": 3.4, "2-Leg @ 45°": 4.76, "2-Leg @ 30°": 5.78, "3-Leg @ 60°": 5.1, "3-Leg @ 45°": 7.14, "3-Leg @ 30°": 8.5, "4-Leg @ 60°": 5.1, "4-Leg @ 45°": 7.14, "4-Leg @ 30°": 8.5},
			"20": {"Straight Sling": 4.2, "2-Leg @ 60°": 4.2, "2-Leg @ 45°": 5.88, "2-Leg @ 30°": 7.14, "3-Leg @ 60°": 6.3, "3-Leg @ 45°": 8.82, "3-Leg @ 30°": 10.5, "4-Leg @ 60°": 6.3, "4-Leg @ 45°": 8.82, "4-Leg @ 30°": 10.5},
			"22": {"Straight Sling": 5.1, "2-Leg @ 60°": 5.1, "2-Leg @ 45°": 7.14, "2-Leg @ 30°": 8.67, "3-Leg @ 60°": 7.65, "3-Leg @ 45°": 10.71, "3-Leg @ 30°": 12.75, "4-Leg @ 60°": 7.65, "4-Leg @ 45°": 10.71, "4-Leg @ 30°": 12.75},
			"24": {"Straight Sling": 6.1, "2-Leg @ 60°": 6.1, "2-Leg @ 45°": 8.54, "2-Leg @ 30°": 10.37, "3-Leg @ 60°": 9.15, "3-Leg @ 45°": 12.81, "3-Leg @ 30°": 15.25, "4-Leg @ 60°": 9.15, "4-Leg @ 45°": 12.81, "4-Leg @ 30°": 15.25},
			"26": {"Straight Sling": 7.1, "2-Leg @ 60°": 7.1, "2-Leg @ 45°": 9.94, "2-Leg @ 30°": 12.07, "3-Leg @ 60°": 10.65, "3-Leg @ 45°": 14.91, "3-Leg @ 30°": 17.75, "4-Leg @ 60°": 10.65, "4-Leg @ 45°": 14.91, "4-Leg @ 30°": 17.75},
			"28": {"Straight Sling": 8.2, "2-Leg @ 60°": 8.2, "2-Leg @ 45°": 11.48, "2-Leg @ 30°": 13.94, "3-Leg @ 60°": 12.3, "3-Leg @ 45°": 17.22, "3-Leg @ 30°": 20.5, "4-Leg @ 60°": 12.3, "4-Leg @ 45°": 17.22, "4-Leg @ 30°": 20.5},
			"32": {"Straight Sling": 10.7, "2-Leg @ 60°": 10.7, "2-Leg @ 45°": 14.98, "2-Leg @ 30°": 18.19, "3-Leg @ 60°": 16.05, "3-Leg @ 45°": 22.47, "3-Leg @ 30°": 26.75, "4-Leg @ 60°": 16.05, "4-Leg @ 45°": 22.47, "4-Leg @ 30°": 26.75},
		},
	},
	{
		ID:    "roundSling",
		Name:  "Round Sling",
		Sizes: []string{"Violet", "Green", "Yellow", "Grey", "Red", "Brown", "Blue", "Orange"},
		WLL: map[string]map[string]float64{
			"Violet": {"Straight Sling": 1, "2-Leg @ 60°": 1, "2-Leg @ 45°": 1.4, "2-Leg @ 30°": 1.7, "3-Leg @ 60°": 1.5, "3-Leg @ 45°": 2.1, "3-Leg @ 30°": 2.5, "4-Leg @ 60°": 1.5, "4-Leg @ 45°": 2.1, "4-Leg @ 30°": 2.5},
			"Green": {"Straight Sling": 2, "2-Leg @ 60°": 2, "2-Leg @ 45°": 2.8, "2-Leg @ 30°": 3.4, "3-Leg @ 60°": 3, "3-Leg @ 45°": 4.2, "3-Leg @ 30°": 5, "4-Leg @ 60°": 3, "4-Leg @ 45°": 4.2, "4-Leg @ 30°": 5},
			"Yellow": {"Straight Sling": 3, "2-Leg @ 60°": 3, "2-Leg @ 45°": 4.2, "2-Leg @ 30°": 5.1, "3-Leg @ 60°": 4.5, "3-Leg @ 45°": 6.3, "3-Leg @ 30°": 7.5, "4-Leg @ 60°": 4.5, "4-Leg @ 45°": 6.3, "4-Leg @ 30°": 7.5},
			"Grey": {"Straight Sling": 4, "2-Leg @ 60°": 4, "2-Leg @ 45°": 5.6, "2-Leg @ 30°": 6.8, "3-Leg @ 60°": 6, "3-Leg @ 45°": 8.4, "3-Leg @ 30°": 10, "4-Leg @ 60°": 6, "4-Leg @ 45°": 8.4, "4-Leg @ 30°": 10},
			"Red": {"Straight Sling": 5, "2-Leg @ 60°": 5, "2-Leg @ 45°": 7, "2-Leg @ 30°": 8.5, "3-Leg @ 60°": 7.5, "3-Leg @ 45°": 10.5, "3-Leg @ 30°": 12.5, "4-Leg @ 60°": 7.5, "4-Leg @ 45°": 10.5, "4-Leg @ 30°": 12.5},
			"Brown": {"Straight Sling": 6, "2-Leg @ 60°": 6, "2-Leg @ 45°": 8.4, "2-Leg @ 30°": 10.2, "3-Leg @ 60°": 9, "3-Leg @ 45°": 12.6, "3-Leg @ 30°": 15, "4-Leg @ 60°": 9, "4-Leg @ 45°": 12.6, "4-Leg @ 30°": 15},
			"Blue": {"Straight Sling": 8, "2-Leg @ 60°": 8, "2-Leg @ 45°": 11.2, "2-Leg @ 30°": 13.6, "3-Leg @ 60°": 12, "3-Leg @ 45°": 16.8, "3-Leg @ 30°": 20, "4-Leg @ 60°": 12, "4-Leg @ 45°": 16.8, "4-Leg @ 30°": 20},
			"Orange": {"Straight Sling": 10, "2-Leg @ 60°": 10, "2-Leg @ 45°": 14, "2-Leg @ 30°": 17, "3-Leg @ 60°": 15, "3-Leg @ 45°": 21, "3-Leg @ 30°": 25, "4-Leg @ 60°": 15, "4-Leg @ 45°": 21, "4-Leg @ 30°": 25},
		},
	},
	{
		ID:    "webbingSling",
		Name:  "Webbing Sling",
		Sizes: []string{"Violet", "Green", "Yellow", "Grey", "Red", "Brown", "Blue", "Orange"},
		WLL: map[string]map[string]float64{
			"Violet": {"Straight Sling": 1, "2-Leg @ 60°": 1, "2-Leg @ 45°": 1.4, "2-Leg @ 30°": 1.7, "3-Leg @ 60°": 1.5, "3-Leg @ 45°": 2.1, "3-Leg @ 30°": 2.5, "4-Leg @ 60°": 1.5, "4-Leg @ 45°": 2.1, "4-Leg @ 30°": 2.5},
			"Green": {"Straight Sling": 2, "2-Leg @ 60°": 2, "2-Leg @ 45°": 2.8, "2-Leg @ 30°": 3.4, "3-Leg @ 60°": 3, "3-Leg @ 45°": 4.2, "3-Leg @ 30°": 5, "4-Leg @ 60°": 3, "4-Leg @ 45°": 4.2, "4-Leg @ 30°": 5},
			"Yellow": {"Straight Sling": 3, "2-Leg @ 60°": 3, "2-Leg @ 45°": 4.2, "2-Leg @ 30°": 5.1, "3-Leg @ 60°": 4.5, "3-Leg @ 45°": 6.3, "3-Leg @ 30°": 7.5, "4-Leg @ 60°": 4.5, "4-Leg @ 45°": 6.3, "4-Leg @ 30°": 7.5},
			"Grey": {"Straight Sling": 4, "2-Leg @ 60°": 4, "2-Leg @ 45°": 5.6, "2-Leg @ 30°": 6.8, "3-Leg @ 60°": 6, "3-Leg @ 45°": 8.4, "3-Leg @ 30°": 10, "4-Leg @ 60°": 6, "4-Leg @ 45°": 8.4, "4-Leg @ 30°": 10},
			"Red": {"Straight Sling": 5, "2-Leg @ 60°": 5, "2-Leg @ 45°": 7, "2-Leg @ 30°": 8.5, "3-Leg @ 60°": 7.5, "3-Leg @ 45°": 10.5, "3-Leg @ 30°": 12.5, "4-Leg @ 60°": 7.5, "4-Leg @ 45°": 10.5, "4-Leg @ 30°": 12.5},
			"Brown": {"Straight Sling": 6, "2-Leg @ 60°": 6, "2-Leg @ 45°": 8.4, "2-Leg @ 30°": 10.2, "3-Leg @ 60°": 9, "3-Leg @ 45°": 12.6, "3-Leg @ 30°": 15, "4-Leg @ 60°": 9, "4-Leg @ 45°": 12.6, "4-Leg @ 30°": 15},
			"Blue": {"Straight Sling": 8, "2-Leg @ 60°": 8, "2-Leg @ 45°": 11.2, "2-Leg @ 30°": 13.6, "3-Leg @ 60°": 12, "3-Leg @ 45°": 16.8, "3-Leg @ 30°": 20, "4-Leg @ 60°": 12, "4-Leg @ 45°": 16.8, "4-Leg @ 30°": 20},
			"Orange": {"Straight Sling": 10, "2-Leg @ 60°": 10, "2-Leg @ 45°": 14, "2-Leg @ 30°": 17, "3-Leg @ 60°": 15, "3-Leg @ 45°": 21, "3-Leg @ 30°": 25, "4-Leg @ 60°": 15, "4-Leg @ 45°": 21, "4-Leg @ 30°": 25},
		},
	},
}
