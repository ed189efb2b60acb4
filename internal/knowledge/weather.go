package knowledge

import "strings"

// WeatherRule declares the working bounds for a work type / material pair.
// A zero Max bound means the dimension is unconstrained for that pair.
type WeatherRule struct {
	WorkType       string
	Material       string
	MaxRainfall24h float64 // mm of rain in the last 24h before work must stop
	MinTempC       float64
	MaxTempC       float64
	MaxWindKmh     float64
}

var weatherRules = []WeatherRule{
	{WorkType: "earthworks", Material: "clay", MaxRainfall24h: 5, MinTempC: 2, MaxTempC: 45, MaxWindKmh: 0},
	{WorkType: "earthworks", Material: "sand", MaxRainfall24h: 15, MinTempC: 2, MaxTempC: 45, MaxWindKmh: 0},
	{WorkType: "earthworks", Material: "", MaxRainfall24h: 10, MinTempC: 2, MaxTempC: 45, MaxWindKmh: 0},
	{WorkType: "concrete", Material: "", MaxRainfall24h: 2, MinTempC: 5, MaxTempC: 35, MaxWindKmh: 0},
	{WorkType: "asphalt", Material: "", MaxRainfall24h: 0, MinTempC: 10, MaxTempC: 40, MaxWindKmh: 0},
	{WorkType: "crane", Material: "", MaxRainfall24h: 0, MinTempC: 0, MaxTempC: 0, MaxWindKmh: 38},
	{WorkType: "roofing", Material: "", MaxRainfall24h: 1, MinTempC: 5, MaxTempC: 40, MaxWindKmh: 30},
}

// WeatherRuleFor finds the rule for a work type and material. Falls back to
// the work type's generic rule when the material has no dedicated entry.
func WeatherRuleFor(workType, material string) (WeatherRule, bool) {
	wt := strings.ToLower(strings.TrimSpace(workType))
	mat := strings.ToLower(strings.TrimSpace(material))

	var generic *WeatherRule
	for i := range weatherRules {
		r := &weatherRules[i]
		if r.WorkType != wt {
			continue
		}
		if r.Material == mat {
			return *r, true
		}
		if r.Material == "" {
			generic = r
		}
	}
	if generic != nil {
		return *generic, true
	}
	return WeatherRule{}, false
}

// dryingBand maps a rainfall band to the days the material must dry before
// earthworks may resume. Bands are evaluated highest first.
type dryingBand struct {
	MinRainfallMM float64
	DryingDays    int
}

var dryingBands = map[string][]dryingBand{
	"clay": {
		{MinRainfallMM: 40, DryingDays: 21},
		{MinRainfallMM: 25, DryingDays: 14},
		{MinRainfallMM: 10, DryingDays: 7},
		{MinRainfallMM: 5, DryingDays: 3},
	},
	"silt": {
		{MinRainfallMM: 40, DryingDays: 14},
		{MinRainfallMM: 25, DryingDays: 10},
		{MinRainfallMM: 10, DryingDays: 5},
	},
	"sand": {
		{MinRainfallMM: 40, DryingDays: 3},
		{MinRainfallMM: 25, DryingDays: 2},
		{MinRainfallMM: 10, DryingDays: 1},
	},
}

// RequiredDryingDays returns how many dry days the material needs after the
// given rainfall. Unknown materials use the clay table (worst case).
func RequiredDryingDays(material string, rainfallMM float64) int {
	mat := strings.ToLower(strings.TrimSpace(material))
	bands, ok := dryingBands[mat]
	if !ok {
		bands = dryingBands["clay"]
	}
	for _, b := range bands {
		if rainfallMM >= b.MinRainfallMM {
			return b.DryingDays
		}
	}
	return 0
}
