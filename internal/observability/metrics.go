package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the analysis daemon.
type Metrics struct {
	registry         *prometheus.Registry
	AnalysisRequests *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	ToolExecutions   *prometheus.CounterVec
	ModelFailures    *prometheus.CounterVec
	ActiveSession    *prometheus.GaugeVec
	TransportErrs    *prometheus.CounterVec
}

// NewMetrics constructs a metrics registry with analysis collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siteproof_analysis_requests_total",
		Help: "Total analysis requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "siteproof_analysis_duration_seconds",
		Help:    "Analysis run duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	toolExecs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siteproof_tool_executions_total",
		Help: "Tool executions by tool name and status",
	}, []string{"tool", "status"})

	modelFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siteproof_model_failures_total",
		Help: "Upstream model call failures by model",
	}, []string{"model"})

	active := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "siteproof_transport_active_sessions",
		Help: "In-flight analysis requests by transport",
	}, []string{"transport"})

	trErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "siteproof_transport_errors_total",
		Help: "Transport-level errors by transport and reason",
	}, []string{"transport", "reason"})

	reg.MustRegister(reqs, durs, toolExecs, modelFailures, active, trErrors)

	return &Metrics{
		registry:         reg,
		AnalysisRequests: reqs,
		AnalysisDuration: durs,
		ToolExecutions:   toolExecs,
		ModelFailures:    modelFailures,
		ActiveSession:    active,
		TransportErrs:    trErrors,
	}
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordAnalysis records one analysis request outcome and duration.
func (m *Metrics) RecordAnalysis(endpoint, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	m.AnalysisRequests.WithLabelValues(endpoint, outcome).Inc()
	m.AnalysisDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordToolExecution counts a tool dispatch by status.
func (m *Metrics) RecordToolExecution(tool string, success bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !success {
		status = "error"
	}
	m.ToolExecutions.WithLabelValues(tool, status).Inc()
}

// RecordModelFailure counts an upstream model call failure.
func (m *Metrics) RecordModelFailure(model string) {
	if m == nil {
		return
	}
	if model == "" {
		model = "unknown"
	}
	m.ModelFailures.WithLabelValues(model).Inc()
}

// IncActiveSessions increments the active session gauge.
func (m *Metrics) IncActiveSessions(transport string) {
	if m == nil {
		return
	}
	m.ActiveSession.WithLabelValues(transport).Inc()
}

// DecActiveSessions decrements the active session gauge.
func (m *Metrics) DecActiveSessions(transport string) {
	if m == nil {
		return
	}
	m.ActiveSession.WithLabelValues(transport).Dec()
}

// RecordTransportError records a transport-level error.
func (m *Metrics) RecordTransportError(transport, reason string) {
	if m == nil {
		return
	}
	if transport == "" {
		transport = "unknown"
	}
	if reason == "" {
		reason = "unknown"
	}
	m.TransportErrs.WithLabelValues(transport, reason).Inc()
}
