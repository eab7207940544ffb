package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLoadWeight_SteelCube(t *testing.T) {
	res := CalculateLoadWeight(BoxDimensions{Width: 1, Height: 1, Length: 1, Unit: "m"}, "steel_mild")
	require.NotNil(t, res)
	assert.Equal(t, 1.0, res.VolumeM3)
	assert.Equal(t, 7850.00, res.WeightKg)
	assert.Equal(t, 7.85, res.WeightTonnes)
	assert.Equal(t, "Mild Steel", res.Material.Name)
}

func TestCalculateLoadWeight_UnitConversion(t *testing.T) {
	// 100 cm cube == 1 m cube.
	cm := CalculateLoadWeight(BoxDimensions{Width: 100, Height: 100, Length: 100, Unit: "cm"}, "water")
	require.NotNil(t, cm)
	assert.Equal(t, 1.0, cm.VolumeM3)
	assert.Equal(t, 1000.00, cm.WeightKg)

	mm := CalculateLoadWeight(BoxDimensions{Width: 500, Height: 500, Length: 500, Unit: "mm"}, "water")
	require.NotNil(t, mm)
	assert.Equal(t, 0.125, mm.VolumeM3)
	assert.Equal(t, 125.00, mm.WeightKg)
}

func TestCalculateLoadWeight_Invalid(t *testing.T) {
	assert.Nil(t, CalculateLoadWeight(BoxDimensions{Width: 1, Height: 1, Length: 1}, "unobtainium"))
	assert.Nil(t, CalculateLoadWeight(BoxDimensions{Width: 0, Height: 1, Length: 1}, "steel_mild"))
	assert.Nil(t, CalculateLoadWeight(BoxDimensions{Width: 1, Height: -2, Length: 1}, "steel_mild"))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "7.85 tonnes", FormatWeight(7850))
	assert.Equal(t, "500.0 kg", FormatWeight(500))
	assert.Equal(t, "1.00 tonnes", FormatWeight(1000))
	assert.Equal(t, "999.9 kg", FormatWeight(999.9))
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "500 cm³", FormatVolume(0.0005))
	assert.Equal(t, "250.0 litres", FormatVolume(0.25))
	assert.Equal(t, "2.500 m³", FormatVolume(2.5))
}

func TestSafetyRecommendations_Order(t *testing.T) {
	lead := ByID("lead")
	require.NotNil(t, lead)
	recs := SafetyRecommendations(*lead, 6000)
	require.GreaterOrEqual(t, len(recs), 4)
	// Material note first, then weight tier, then category hazard.
	assert.Contains(t, recs[0], "Toxic")
	assert.Contains(t, recs[1], "Very heavy")
	assert.Contains(t, recs[len(recs)-1], "sharp edges")
}

func TestSafetyRecommendations_HeavyTier(t *testing.T) {
	water := ByID("water")
	require.NotNil(t, water)
	recs := SafetyRecommendations(*water, 2000)
	require.Len(t, recs, 3)
	assert.Contains(t, recs[0], "Heavy load")
	assert.Contains(t, recs[1], "container integrity")
	assert.Contains(t, recs[2], "spill containment")
}

func TestSafetyRecommendations_Concrete(t *testing.T) {
	c := ByID("concrete_reinforced")
	require.NotNil(t, c)
	recs := SafetyRecommendations(*c, 500)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "reinforcement")
}

func TestSafetyRecommendations_NoneForLightOther(t *testing.T) {
	p := ByID("plastic_hdpe")
	require.NotNil(t, p)
	assert.Empty(t, SafetyRecommendations(*p, 100))
}

func TestRequiredCapacity(t *testing.T) {
	c := RequiredCapacity(1000, 0)
	assert.Equal(t, 2000.0, c.MinCapacityKg)
	assert.Equal(t, 2500.0, c.RecommendedCapacityKg)
	assert.Equal(t, DefaultSafetyFactor, c.SafetyFactor)

	c = RequiredCapacity(333.3, 3)
	assert.Equal(t, 1000.0, c.MinCapacityKg)
	assert.Equal(t, 1167.0, c.RecommendedCapacityKg)
}

func TestCatalogLookups(t *testing.T) {
	assert.Nil(t, ByID("nope"))
	assert.NotEmpty(t, ByCategory(CategoryTimber))
	assert.Empty(t, ByCategory("Gases"))
	assert.Len(t, Categories(), 6)

	for _, m := range All() {
		assert.Positive(t, m.DensityKgM3, "material %s", m.ID)
		assert.NotEmpty(t, m.Name)
	}
}
