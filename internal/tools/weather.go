package tools

import (
	"fmt"

	"github.com/juggajay/siteproof-v2-sub000/internal/knowledge"
)

// checkWeatherRestrictions evaluates the supplied observations against the
// declared bounds for the work type/material pair. Each breached bound
// becomes one finding; any finding makes the check non-compliant.
func checkWeatherRestrictions(args map[string]interface{}) (map[string]interface{}, error) {
	workType, ok := stringArg(args, "work_type")
	if !ok || workType == "" {
		return nil, fmt.Errorf("work_type must be a non-empty string")
	}
	material, _ := stringArg(args, "material")

	rule, ok := knowledge.WeatherRuleFor(workType, material)
	if !ok {
		return nil, fmt.Errorf("no weather restrictions defined for work type %q", workType)
	}

	var findings []map[string]interface{}
	requiredDrying := 0

	if rainfall, ok := floatArg(args, "rainfall_mm"); ok {
		requiredDrying = knowledge.RequiredDryingDays(material, rainfall)
		daysSince, haveDays := intArg(args, "days_since_rain")
		switch {
		case requiredDrying > 0 && haveDays && daysSince < requiredDrying:
			findings = append(findings, map[string]interface{}{
				"type": "drying time",
				"detail": fmt.Sprintf("%.0fmm rainfall requires %d drying days; only %d elapsed",
					rainfall, requiredDrying, daysSince),
			})
		case !haveDays && rule.MaxRainfall24h > 0 && rainfall > rule.MaxRainfall24h:
			findings = append(findings, map[string]interface{}{
				"type": "rainfall",
				"detail": fmt.Sprintf("%.0fmm rainfall exceeds the %.0fmm limit for %s",
					rainfall, rule.MaxRainfall24h, workType),
			})
		}
	}

	if temp, ok := floatArg(args, "temperature_c"); ok {
		if rule.MaxTempC > 0 && temp > rule.MaxTempC {
			findings = append(findings, map[string]interface{}{
				"type":   "temperature",
				"detail": fmt.Sprintf("%.1fC exceeds the %.0fC maximum for %s", temp, rule.MaxTempC, workType),
			})
		}
		if temp < rule.MinTempC {
			findings = append(findings, map[string]interface{}{
				"type":   "temperature",
				"detail": fmt.Sprintf("%.1fC is below the %.0fC minimum for %s", temp, rule.MinTempC, workType),
			})
		}
	}

	if wind, ok := floatArg(args, "wind_kmh"); ok && rule.MaxWindKmh > 0 && wind > rule.MaxWindKmh {
		findings = append(findings, map[string]interface{}{
			"type":   "wind",
			"detail": fmt.Sprintf("%.0fkm/h wind exceeds the %.0fkm/h limit for %s", wind, rule.MaxWindKmh, workType),
		})
	}

	if findings == nil {
		findings = []map[string]interface{}{}
	}

	return map[string]interface{}{
		"work_type":            workType,
		"material":             material,
		"compliant":            len(findings) == 0,
		"findings":             findings,
		"required_drying_days": requiredDrying,
	}, nil
}
