package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/juggajay/siteproof-v2-sub000/internal/agent"
	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm/mock"
	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

func newTestService(t *testing.T, chatFn func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error)) *Service {
	t.Helper()
	registry := llm.NewRegistry()
	registry.RegisterProvider("mock", &mock.Provider{ChatFn: chatFn})
	registry.RegisterModel("test-model", llm.ModelRoute{Provider: "mock", Model: "mock-1"}, true)
	driver := agent.NewDriver(registry, tools.NewRegistry(), config.AnalysisConfig{MaxToolRounds: 10}, zap.NewNop(), nil)
	return NewService(driver, zap.NewNop())
}

func answer(text string) func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
	return func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		return llm.ChatResponse{
			Message:      llm.ChatMessage{Role: llm.RoleAssistant, Content: text},
			FinishReason: "stop",
		}, nil
	}
}

func TestAnalyzeComplianceShapesResult(t *testing.T) {
	var prompt string
	svc := newTestService(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		prompt = req.Messages[len(req.Messages)-1].Content
		return answer(`{"status":"PASS","compliant":true,"risk_level":"LOW","score":98.0}`)(ctx, req)
	})

	result, execs, err := svc.AnalyzeCompliance(context.Background(), InspectionInput{
		WorkType:      "earthworks",
		Material:      "clay",
		DryDensity:    19.8,
		MaxDryDensity: 20.2,
	})
	require.NoError(t, err)
	require.Equal(t, "PASS", result.Status)
	require.True(t, result.Compliant)
	require.Equal(t, 98.0, result.Score)
	require.Empty(t, execs)

	// structured inputs arrive as context lines in the user prompt
	require.True(t, strings.Contains(prompt, "work type: earthworks"))
	require.True(t, strings.Contains(prompt, "dry density (kN/m3): 19.8"))
}

func TestAnalyzeComplianceRequiresWorkType(t *testing.T) {
	svc := newTestService(t, answer("ignored"))
	_, _, err := svc.AnalyzeCompliance(context.Background(), InspectionInput{})
	require.Error(t, err)
}

func TestAnalyzeComplianceFallsBackToDefaults(t *testing.T) {
	svc := newTestService(t, answer("lot looks acceptable, no JSON for you"))
	result, _, err := svc.AnalyzeCompliance(context.Background(), InspectionInput{WorkType: "earthworks"})
	require.NoError(t, err)
	require.Equal(t, "UNKNOWN", result.Status)
	require.Equal(t, "MEDIUM", result.RiskLevel)
	require.Equal(t, "lot looks acceptable, no JSON for you", result.Summary)
}

func TestAssessWeatherShapesResult(t *testing.T) {
	svc := newTestService(t, answer(`{"proceed":false,"risk_level":"HIGH","restrictions":["wait 21 days"],"required_drying_days":21}`))
	result, _, err := svc.AssessWeather(context.Background(), WeatherInput{
		WorkType:   "earthworks",
		Material:   "clay",
		RainfallMM: 45,
	})
	require.NoError(t, err)
	require.False(t, result.Proceed)
	require.Equal(t, "HIGH", result.RiskLevel)
	require.Equal(t, 21, result.RequiredDryingDays)
}

func TestPredictScheduleShapesResult(t *testing.T) {
	svc := newTestService(t, answer(`{"estimated_days":259,"risk_level":"EXTREME"}`))
	result, _, err := svc.PredictSchedule(context.Background(), ScheduleInput{Council: "Georges River"})
	require.NoError(t, err)
	require.Equal(t, 259, result.EstimatedDays)
	require.Equal(t, "EXTREME", result.RiskLevel)

	_, _, err = svc.PredictSchedule(context.Background(), ScheduleInput{})
	require.Error(t, err)
}
