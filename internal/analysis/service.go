package analysis

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/juggajay/siteproof-v2-sub000/internal/agent"
	"github.com/juggajay/siteproof-v2-sub000/internal/shape"
	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

// Service exposes the typed analysis entry points. It is constructed once at
// application start and passed to request handlers; there is no implicit
// first-use caching.
type Service struct {
	driver *agent.Driver
	logger *zap.Logger
}

// NewService creates the analysis service.
func NewService(driver *agent.Driver, logger *zap.Logger) *Service {
	return &Service{driver: driver, logger: logger}
}

// InspectionInput is the structured payload for a compliance analysis.
type InspectionInput struct {
	ProjectID          string  `json:"project_id,omitempty"`
	LotID              string  `json:"lot_id,omitempty"`
	WorkType           string  `json:"work_type"`
	Material           string  `json:"material,omitempty"`
	DryDensity         float64 `json:"dry_density,omitempty"`
	MaxDryDensity      float64 `json:"max_dry_density,omitempty"`
	RequiredPercentage float64 `json:"required_percentage,omitempty"`
	SupervisionLevel   int     `json:"supervision_level,omitempty"`
	RainfallMM         float64 `json:"rainfall_mm,omitempty"`
	DaysSinceRain      int     `json:"days_since_rain,omitempty"`
	Notes              string  `json:"notes,omitempty"`
}

// WeatherInput is the structured payload for a weather-risk assessment.
type WeatherInput struct {
	WorkType      string  `json:"work_type"`
	Material      string  `json:"material,omitempty"`
	RainfallMM    float64 `json:"rainfall_mm,omitempty"`
	DaysSinceRain int     `json:"days_since_rain,omitempty"`
	TemperatureC  float64 `json:"temperature_c,omitempty"`
	WindKmh       float64 `json:"wind_kmh,omitempty"`
	ForecastNotes string  `json:"forecast_notes,omitempty"`
}

// ScheduleInput is the structured payload for an approval-timeline prediction.
type ScheduleInput struct {
	Council         string `json:"council"`
	ProjectType     string `json:"project_type,omitempty"`
	TargetStartDays int    `json:"target_start_days,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Query runs a free-form analysis and returns the raw driver result.
func (s *Service) Query(ctx context.Context, query string, fields map[string]string, model string) (agent.Result, error) {
	return s.driver.Run(ctx, agent.Request{Query: query, Context: fields, Model: model})
}

// AnalyzeCompliance assesses an inspection payload against Australian
// standards and shapes the answer into a ComplianceResult.
func (s *Service) AnalyzeCompliance(ctx context.Context, in InspectionInput) (shape.ComplianceResult, []tools.ExecutionResult, error) {
	if in.WorkType == "" {
		return shape.ComplianceResult{}, nil, fmt.Errorf("work_type is required")
	}

	fields := map[string]string{"work type": in.WorkType}
	setIfNotEmpty(fields, "project", in.ProjectID)
	setIfNotEmpty(fields, "lot", in.LotID)
	setIfNotEmpty(fields, "material", in.Material)
	setIfNotEmpty(fields, "notes", in.Notes)
	setFloat(fields, "dry density (kN/m3)", in.DryDensity)
	setFloat(fields, "maximum dry density (kN/m3)", in.MaxDryDensity)
	setFloat(fields, "required compaction (%)", in.RequiredPercentage)
	setInt(fields, "supervision level", in.SupervisionLevel)
	setFloat(fields, "recent rainfall (mm)", in.RainfallMM)
	setInt(fields, "days since rain", in.DaysSinceRain)

	res, err := s.driver.Run(ctx, agent.Request{
		Query:   "Check this inspection for compaction compliance against Australian construction standards.",
		Context: fields,
	})
	if err != nil {
		return shape.ComplianceResult{}, res.Executions, err
	}
	return shape.ShapeCompliance(res.Text), res.Executions, nil
}

// AssessWeather evaluates weather risk for the given work and shapes the
// answer into a WeatherDecision.
func (s *Service) AssessWeather(ctx context.Context, in WeatherInput) (shape.WeatherDecision, []tools.ExecutionResult, error) {
	if in.WorkType == "" {
		return shape.WeatherDecision{}, nil, fmt.Errorf("work_type is required")
	}

	fields := map[string]string{"work type": in.WorkType}
	setIfNotEmpty(fields, "material", in.Material)
	setIfNotEmpty(fields, "forecast", in.ForecastNotes)
	setFloat(fields, "recent rainfall (mm)", in.RainfallMM)
	setInt(fields, "days since rain", in.DaysSinceRain)
	setFloat(fields, "temperature (C)", in.TemperatureC)
	setFloat(fields, "wind (km/h)", in.WindKmh)

	res, err := s.driver.Run(ctx, agent.Request{
		Query:   "Assess the weather risk for proceeding with this work and state any restrictions.",
		Context: fields,
	})
	if err != nil {
		return shape.WeatherDecision{}, res.Executions, err
	}
	return shape.ShapeWeather(res.Text), res.Executions, nil
}

// PredictSchedule predicts the council approval timeline for a project and
// shapes the answer into a ScheduleEstimate.
func (s *Service) PredictSchedule(ctx context.Context, in ScheduleInput) (shape.ScheduleEstimate, []tools.ExecutionResult, error) {
	if in.Council == "" {
		return shape.ScheduleEstimate{}, nil, fmt.Errorf("council is required")
	}

	fields := map[string]string{"council": in.Council}
	setIfNotEmpty(fields, "project type", in.ProjectType)
	setIfNotEmpty(fields, "notes", in.Notes)
	setInt(fields, "target start (days)", in.TargetStartDays)

	res, err := s.driver.Run(ctx, agent.Request{
		Query:   "Predict the council approval timeline for this development application and flag schedule risk.",
		Context: fields,
	})
	if err != nil {
		return shape.ScheduleEstimate{}, res.Executions, err
	}
	return shape.ShapeSchedule(res.Text), res.Executions, nil
}

func setIfNotEmpty(fields map[string]string, key, val string) {
	if val != "" {
		fields[key] = val
	}
}

func setFloat(fields map[string]string, key string, val float64) {
	if val != 0 {
		fields[key] = strconv.FormatFloat(val, 'f', -1, 64)
	}
}

func setInt(fields map[string]string, key string, val int) {
	if val != 0 {
		fields[key] = strconv.Itoa(val)
	}
}
