package shape

import "strings"

// ComplianceResult is the shaped outcome of a compliance analysis.
type ComplianceResult struct {
	Status          string   `json:"status"`
	Compliant       bool     `json:"compliant"`
	RiskLevel       string   `json:"risk_level"`
	Score           float64  `json:"score"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// DefaultCompliance returns the documented defaults for ComplianceResult.
func DefaultCompliance() ComplianceResult {
	return ComplianceResult{
		Status:          "UNKNOWN",
		RiskLevel:       "MEDIUM",
		Findings:        []string{},
		Recommendations: []string{},
	}
}

// ShapeCompliance parses the model's final text into a ComplianceResult,
// falling back to defaults with the raw text preserved in Summary.
func ShapeCompliance(text string) ComplianceResult {
	out := DefaultCompliance()
	raw, _ := ExtractJSON(text)
	if !decodeOrNil(raw, &out) {
		out = DefaultCompliance()
		out.Summary = strings.TrimSpace(text)
		return out
	}
	if out.Findings == nil {
		out.Findings = []string{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	if out.Status == "" {
		out.Status = "UNKNOWN"
	}
	if out.RiskLevel == "" {
		out.RiskLevel = "MEDIUM"
	}
	return out
}

// WeatherDecision is the shaped outcome of a weather-risk assessment.
type WeatherDecision struct {
	Proceed            bool     `json:"proceed"`
	RiskLevel          string   `json:"risk_level"`
	Restrictions       []string `json:"restrictions"`
	RequiredDryingDays int      `json:"required_drying_days"`
	Analysis           string   `json:"analysis"`
}

// DefaultWeather returns the documented defaults for WeatherDecision.
func DefaultWeather() WeatherDecision {
	return WeatherDecision{
		RiskLevel:    "MEDIUM",
		Restrictions: []string{},
	}
}

// ShapeWeather parses the model's final text into a WeatherDecision,
// falling back to defaults with the raw text preserved in Analysis.
func ShapeWeather(text string) WeatherDecision {
	out := DefaultWeather()
	raw, _ := ExtractJSON(text)
	if !decodeOrNil(raw, &out) {
		out = DefaultWeather()
		out.Analysis = strings.TrimSpace(text)
		return out
	}
	if out.Restrictions == nil {
		out.Restrictions = []string{}
	}
	if out.RiskLevel == "" {
		out.RiskLevel = "MEDIUM"
	}
	return out
}

// ScheduleEstimate is the shaped outcome of an approval/schedule prediction.
type ScheduleEstimate struct {
	EstimatedDays int      `json:"estimated_days"`
	RiskLevel     string   `json:"risk_level"`
	CriticalPath  []string `json:"critical_path"`
	Adjustments   []string `json:"adjustments"`
	Summary       string   `json:"summary"`
}

// DefaultSchedule returns the documented defaults for ScheduleEstimate.
func DefaultSchedule() ScheduleEstimate {
	return ScheduleEstimate{
		RiskLevel:    "MEDIUM",
		CriticalPath: []string{},
		Adjustments:  []string{},
	}
}

// ShapeSchedule parses the model's final text into a ScheduleEstimate,
// falling back to defaults with the raw text preserved in Summary.
func ShapeSchedule(text string) ScheduleEstimate {
	out := DefaultSchedule()
	raw, _ := ExtractJSON(text)
	if !decodeOrNil(raw, &out) {
		out = DefaultSchedule()
		out.Summary = strings.TrimSpace(text)
		return out
	}
	if out.CriticalPath == nil {
		out.CriticalPath = []string{}
	}
	if out.Adjustments == nil {
		out.Adjustments = []string{}
	}
	if out.RiskLevel == "" {
		out.RiskLevel = "MEDIUM"
	}
	return out
}
