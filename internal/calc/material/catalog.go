package material

// Material is immutable reference data; densities in kg/m³.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DensityKgM3 float64 `json:"density_kg_m3"`
	Category    string  `json:"category"`
	Notes       string  `json:"notes,omitempty"`
	SafetyNotes string  `json:"safety_notes,omitempty"`
}

const (
	CategoryMetals       = "Metals"
	CategoryConstruction = "Construction"
	CategoryTimber       = "Timber"
	CategoryLiquids      = "Liquids"
	CategoryAggregates   = "Aggregates"
	CategoryOther        = "Other"
)

var catalog = []Material{
	{ID: "steel_mild", Name: "Mild Steel", DensityKgM3: 7850, Category: CategoryMetals},
	{ID: "steel_stainless", Name: "Stainless Steel", DensityKgM3: 8000, Category: CategoryMetals},
	{ID: "aluminium", Name: "Aluminium", DensityKgM3: 2700, Category: CategoryMetals},
	{ID: "copper", Name: "Copper", DensityKgM3: 8960, Category: CategoryMetals},
	{ID: "brass", Name: "Brass", DensityKgM3: 8500, Category: CategoryMetals},
	{ID: "cast_iron", Name: "Cast Iron", DensityKgM3: 7200, Category: CategoryMetals},
	{ID: "lead", Name: "Lead", DensityKgM3: 11340, Category: CategoryMetals,
		SafetyNotes: "Toxic material. Wear gloves and wash hands after handling."},
	{ID: "concrete", Name: "Concrete (unreinforced)", DensityKgM3: 2400, Category: CategoryConstruction},
	{ID: "concrete_reinforced", Name: "Concrete (reinforced)", DensityKgM3: 2500, Category: CategoryConstruction,
		Notes: "Density varies with reinforcement ratio."},
	{ID: "brick", Name: "Brick (common)", DensityKgM3: 1920, Category: CategoryConstruction},
	{ID: "glass", Name: "Glass", DensityKgM3: 2500, Category: CategoryConstruction,
		SafetyNotes: "Fragile. Use edge protection and never stand under the load."},
	{ID: "asphalt", Name: "Asphalt", DensityKgM3: 2300, Category: CategoryConstruction},
	{ID: "plasterboard", Name: "Plasterboard", DensityKgM3: 800, Category: CategoryConstruction},
	{ID: "timber_pine", Name: "Pine (softwood)", DensityKgM3: 500, Category: CategoryTimber,
		Notes: "Seasoned. Green timber can weigh up to twice as much."},
	{ID: "timber_oak", Name: "Oak (hardwood)", DensityKgM3: 750, Category: CategoryTimber},
	{ID: "timber_hardwood", Name: "Dense Hardwood", DensityKgM3: 900, Category: CategoryTimber},
	{ID: "plywood", Name: "Plywood", DensityKgM3: 600, Category: CategoryTimber},
	{ID: "water", Name: "Water", DensityKgM3: 1000, Category: CategoryLiquids},
	{ID: "diesel", Name: "Diesel Fuel", DensityKgM3: 850, Category: CategoryLiquids,
		SafetyNotes: "Flammable. Keep ignition sources clear of the lift area."},
	{ID: "oil_hydraulic", Name: "Hydraulic Oil", DensityKgM3: 900, Category: CategoryLiquids},
	{ID: "sand_dry", Name: "Sand (dry)", DensityKgM3: 1600, Category: CategoryAggregates,
		Notes: "Wet sand is roughly 20% heavier."},
	{ID: "gravel", Name: "Gravel", DensityKgM3: 1680, Category: CategoryAggregates},
	{ID: "crushed_rock", Name: "Crushed Rock", DensityKgM3: 1600, Category: CategoryAggregates},
	{ID: "topsoil", Name: "Topsoil", DensityKgM3: 1500, Category: CategoryAggregates},
	{ID: "plastic_hdpe", Name: "Plastic (HDPE)", DensityKgM3: 950, Category: CategoryOther},
	{ID: "rubber", Name: "Rubber", DensityKgM3: 1200, Category: CategoryOther},
	{ID: "ice", Name: "Ice", DensityKgM3: 920, Category: CategoryOther,
		SafetyNotes: "Melts. Weight and balance change during the lift."},
}

// All returns the full catalog in display order.
func All() []Material {
	out := make([]Material, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns nil for an unknown id.
func ByID(id string) *Material {
	for i := range catalog {
		if catalog[i].ID == id {
			m := catalog[i]
			return &m
		}
	}
	return nil
}

// ByCategory returns all materials in a category, empty for unknown ones.
func ByCategory(category string) []Material {
	var out []Material
	for _, m := range catalog {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Categories returns the fixed category order used by the catalog.
func Categories() []string {
	return []string{
		CategoryMetals,
		CategoryConstruction,
		CategoryTimber,
		CategoryLiquids,
		CategoryAggregates,
		CategoryOther,
	}
}
