package wll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_ExactMatch(t *testing.T) {
	v, ok := Lookup("chainGrade80", "10", "Straight Sling")
	require.True(t, ok)
	assert.Equal(t, 3.15, v)
}

func TestLookup_ColourSizedSlings(t *testing.T) {
	v, ok := Lookup("roundSling", "Red", "Straight Sling")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	v, ok = Lookup("webbingSling", "Green", "2-Leg @ 45°")
	require.True(t, ok)
	assert.Equal(t, 2.8, v)
}

func TestLookup_NoInterpolation(t *testing.T) {
	// "9" sits between tabulated 8 and 10; it must miss, never approximate.
	_, ok := Lookup("chainGrade80", "9", "Straight Sling")
	assert.False(t, ok)

	_, ok = Lookup("chainGrade80", "6.5", "Straight Sling")
	assert.False(t, ok)
}

func TestLookup_UnknownKeys(t *testing.T) {
	_, ok := Lookup("chainGrade50", "10", "Straight Sling")
	assert.False(t, ok)

	_, ok = Lookup("chainGrade80", "10", "5-Leg @ 45°")
	assert.False(t, ok)
}

func TestAvailableSizes(t *testing.T) {
	sizes := AvailableSizes("chainGrade80")
	require.NotEmpty(t, sizes)
	assert.Equal(t, "6", sizes[0])
	assert.Equal(t, "32", sizes[len(sizes)-1])

	assert.Empty(t, AvailableSizes("nope"))
}

func TestAvailableConfigurations(t *testing.T) {
	configs := AvailableConfigurations("wireRope")
	require.Len(t, configs, 10)
	assert.Equal(t, "Straight Sling", configs[0])
	assert.Equal(t, "4-Leg @ 30°", configs[9])

	assert.Empty(t, AvailableConfigurations("nope"))
}

func TestTables_EverySizeFullyPopulated(t *testing.T) {
	for _, st := range Types() {
		for _, size := range st.Sizes {
			row, ok := st.WLL[size]
			require.True(t, ok, "%s size %s missing", st.ID, size)
			assert.Len(t, row, 10, "%s size %s", st.ID, size)
			for cfg, v := range row {
				assert.Positive(t, v, "%s %s %s", st.ID, size, cfg)
			}
		}
	}
}
