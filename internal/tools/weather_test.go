package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeatherDryingTimeViolation(t *testing.T) {
	// 45mm on clay requires 21 drying days; only 5 have elapsed.
	out, err := checkWeatherRestrictions(map[string]interface{}{
		"work_type":       "earthworks",
		"material":        "clay",
		"rainfall_mm":     45.0,
		"days_since_rain": 5,
	})
	require.NoError(t, err)
	require.Equal(t, false, out["compliant"])
	require.Equal(t, 21, out["required_drying_days"])

	findings, ok := out["findings"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, findings, 1)
	require.Equal(t, "drying time", findings[0]["type"])
	require.Contains(t, findings[0]["detail"], "21 drying days")
}

func TestWeatherDryingTimeElapsed(t *testing.T) {
	out, err := checkWeatherRestrictions(map[string]interface{}{
		"work_type":       "earthworks",
		"material":        "clay",
		"rainfall_mm":     45.0,
		"days_since_rain": 21,
	})
	require.NoError(t, err)
	require.Equal(t, true, out["compliant"])

	findings := out["findings"].([]map[string]interface{})
	require.Empty(t, findings)
}

func TestWeatherRecentRainfallLimit(t *testing.T) {
	// No days_since_rain supplied: the 24h rainfall limit applies instead.
	out, err := checkWeatherRestrictions(map[string]interface{}{
		"work_type":   "earthworks",
		"material":    "sand",
		"rainfall_mm": 20.0,
	})
	require.NoError(t, err)
	require.Equal(t, false, out["compliant"])

	findings := out["findings"].([]map[string]interface{})
	require.Len(t, findings, 1)
	require.Equal(t, "rainfall", findings[0]["type"])
}

func TestWeatherTemperatureBounds(t *testing.T) {
	out, err := checkWeatherRestrictions(map[string]interface{}{
		"work_type":     "concrete",
		"temperature_c": 38.0,
	})
	require.NoError(t, err)
	require.Equal(t, false, out["compliant"])

	out, err = checkWeatherRestrictions(map[string]interface{}{
		"work_type":     "concrete",
		"temperature_c": 3.0,
	})
	require.NoError(t, err)
	require.Equal(t, false, out["compliant"])

	out, err = checkWeatherRestrictions(map[string]interface{}{
		"work_type":     "concrete",
		"temperature_c": 22.0,
	})
	require.NoError(t, err)
	require.Equal(t, true, out["compliant"])
}

func TestWeatherWindLimitForCranes(t *testing.T) {
	out, err := checkWeatherRestrictions(map[string]interface{}{
		"work_type": "crane",
		"wind_kmh":  45.0,
	})
	require.NoError(t, err)
	require.Equal(t, false, out["compliant"])

	findings := out["findings"].([]map[string]interface{})
	require.Equal(t, "wind", findings[0]["type"])
}

func TestWeatherUnknownWorkType(t *testing.T) {
	_, err := checkWeatherRestrictions(map[string]interface{}{
		"work_type": "demolition",
	})
	require.Error(t, err)
}
