package rpc

import (
	"github.com/juggajay/siteproof-v2-sub000/internal/shape"
	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

// QueryRequest starts a free-form analysis run.
type QueryRequest struct {
	Query   string            `json:"query"`
	Context map[string]string `json:"context,omitempty"`
	Model   string            `json:"model,omitempty"`
}

// QueryResponse carries the final text plus the run's tool execution log.
type QueryResponse struct {
	Text       string                  `json:"text"`
	Persona    string                  `json:"persona,omitempty"`
	Model      string                  `json:"model,omitempty"`
	Rounds     int                     `json:"rounds"`
	Executions []tools.ExecutionResult `json:"executions,omitempty"`
}

// ComplianceResponse wraps a shaped compliance result with its tool log.
type ComplianceResponse struct {
	Result     shape.ComplianceResult  `json:"result"`
	Executions []tools.ExecutionResult `json:"executions,omitempty"`
}

// WeatherResponse wraps a shaped weather decision with its tool log.
type WeatherResponse struct {
	Result     shape.WeatherDecision   `json:"result"`
	Executions []tools.ExecutionResult `json:"executions,omitempty"`
}

// ScheduleResponse wraps a shaped schedule estimate with its tool log.
type ScheduleResponse struct {
	Result     shape.ScheduleEstimate  `json:"result"`
	Executions []tools.ExecutionResult `json:"executions,omitempty"`
}

// ErrorResponse is the JSON error envelope for analysis endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
