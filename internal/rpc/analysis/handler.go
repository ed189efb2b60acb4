package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/juggajay/siteproof-v2-sub000/internal/agent"
	"github.com/juggajay/siteproof-v2-sub000/internal/analysis"
	"github.com/juggajay/siteproof-v2-sub000/internal/observability"
	"github.com/juggajay/siteproof-v2-sub000/internal/rpc"
)

// Handler serves the JSON analysis endpoints.
type Handler struct {
	svc     *analysis.Service
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewHandler constructs a handler instance.
func NewHandler(svc *analysis.Service, metrics *observability.Metrics, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, metrics: metrics, logger: logger}
}

// Query handles POST /v1/analysis/query.
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req rpc.QueryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Query == "" {
		h.badRequest(w, "query is required")
		return
	}

	start := time.Now()
	res, err := h.svc.Query(r.Context(), req.Query, req.Context, req.Model)
	if err != nil {
		h.fail(w, "query", err, start)
		return
	}
	h.metrics.RecordAnalysis("query", "ok", time.Since(start))
	h.respond(w, rpc.QueryResponse{
		Text:       res.Text,
		Persona:    res.Persona,
		Model:      res.Model,
		Rounds:     res.Rounds,
		Executions: res.Executions,
	})
}

// Compliance handles POST /v1/analysis/compliance.
func (h *Handler) Compliance(w http.ResponseWriter, r *http.Request) {
	var req analysis.InspectionInput
	if !h.decode(w, r, &req) {
		return
	}

	start := time.Now()
	result, execs, err := h.svc.AnalyzeCompliance(r.Context(), req)
	if err != nil {
		h.fail(w, "compliance", err, start)
		return
	}
	h.metrics.RecordAnalysis("compliance", "ok", time.Since(start))
	h.respond(w, rpc.ComplianceResponse{Result: result, Executions: execs})
}

// Weather handles POST /v1/analysis/weather.
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	var req analysis.WeatherInput
	if !h.decode(w, r, &req) {
		return
	}

	start := time.Now()
	result, execs, err := h.svc.AssessWeather(r.Context(), req)
	if err != nil {
		h.fail(w, "weather", err, start)
		return
	}
	h.metrics.RecordAnalysis("weather", "ok", time.Since(start))
	h.respond(w, rpc.WeatherResponse{Result: result, Executions: execs})
}

// Schedule handles POST /v1/analysis/schedule.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req analysis.ScheduleInput
	if !h.decode(w, r, &req) {
		return
	}

	start := time.Now()
	result, execs, err := h.svc.PredictSchedule(r.Context(), req)
	if err != nil {
		h.fail(w, "schedule", err, start)
		return
	}
	h.metrics.RecordAnalysis("schedule", "ok", time.Since(start))
	h.respond(w, rpc.ScheduleResponse{Result: result, Executions: execs})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Method != http.MethodPost {
		h.metrics.RecordTransportError("json", "method_not_allowed")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.metrics.RecordTransportError("json", "decode")
		h.badRequest(w, "invalid request: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.metrics.RecordTransportError("json", "encode")
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rpc.ErrorResponse{Error: msg})
}

// fail reports a run failure. The iteration-cap error gets its own outcome
// label so stalled conversations are distinguishable from upstream failures.
func (h *Handler) fail(w http.ResponseWriter, endpoint string, err error, start time.Time) {
	outcome := "error"
	if errors.Is(err, agent.ErrMaxIterations) {
		outcome = "max_iterations"
	}
	h.metrics.RecordAnalysis(endpoint, outcome, time.Since(start))
	if h.logger != nil {
		h.logger.Error("analysis failed", zap.String("endpoint", endpoint), zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(rpc.ErrorResponse{Error: err.Error()})
}
