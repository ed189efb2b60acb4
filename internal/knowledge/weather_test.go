package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeatherRuleForMaterialSpecific(t *testing.T) {
	clay, ok := WeatherRuleFor("earthworks", "clay")
	require.True(t, ok)
	require.Equal(t, 5.0, clay.MaxRainfall24h)

	sand, ok := WeatherRuleFor("Earthworks", "Sand")
	require.True(t, ok)
	require.Equal(t, 15.0, sand.MaxRainfall24h)

	// gravel has no dedicated entry, falls back to the generic earthworks rule
	generic, ok := WeatherRuleFor("earthworks", "gravel")
	require.True(t, ok)
	require.Equal(t, 10.0, generic.MaxRainfall24h)

	_, ok = WeatherRuleFor("demolition", "")
	require.False(t, ok)
}

func TestWeatherRuleBounds(t *testing.T) {
	concrete, ok := WeatherRuleFor("concrete", "")
	require.True(t, ok)
	require.Equal(t, 5.0, concrete.MinTempC)
	require.Equal(t, 35.0, concrete.MaxTempC)

	crane, ok := WeatherRuleFor("crane", "")
	require.True(t, ok)
	require.Equal(t, 38.0, crane.MaxWindKmh)
}

func TestRequiredDryingDays(t *testing.T) {
	cases := []struct {
		material string
		rainfall float64
		want     int
	}{
		{"clay", 45, 21},
		{"clay", 40, 21},
		{"clay", 30, 14},
		{"clay", 12, 7},
		{"clay", 5, 3},
		{"clay", 4, 0},
		{"silt", 30, 10},
		{"sand", 45, 3},
		{"sand", 5, 0},
		// unknown materials use the clay table
		{"gravel", 45, 21},
		{"", 12, 7},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, RequiredDryingDays(tc.material, tc.rainfall),
			"material=%q rainfall=%.0f", tc.material, tc.rainfall)
	}
}
