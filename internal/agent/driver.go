package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm"
	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

// ErrMaxIterations marks an analysis run aborted at the tool-round ceiling.
var ErrMaxIterations = errors.New("tool round limit exceeded")

// Request is a single analysis invocation.
type Request struct {
	Query   string
	Context map[string]string
	Model   string
}

// Result wraps the model's final text plus the run's execution log.
type Result struct {
	Text         string
	Persona      string
	Model        string
	FinishReason string
	Rounds       int
	Executions   []tools.ExecutionResult
}

// Metrics is the subset of observability the driver reports into.
type Metrics interface {
	RecordToolExecution(tool string, success bool)
	RecordModelFailure(model string)
}

// Driver runs one bounded tool-calling exchange with the LLM. All run state
// is local to Run, so a single Driver serves concurrent analyses.
type Driver struct {
	registry *llm.Registry
	tools    *tools.Registry
	cfg      config.AnalysisConfig
	logger   *zap.Logger
	metrics  Metrics
}

// NewDriver creates a conversation driver.
func NewDriver(registry *llm.Registry, toolReg *tools.Registry, cfg config.AnalysisConfig, logger *zap.Logger, metrics Metrics) *Driver {
	return &Driver{
		registry: registry,
		tools:    toolReg,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
	}
}

// MaxToolRounds returns the configured tool-round ceiling (>0).
func (d *Driver) MaxToolRounds() int {
	if d.cfg.MaxToolRounds > 0 {
		return d.cfg.MaxToolRounds
	}
	return 10
}

// Run executes the conversation loop: call the model, execute any requested
// tool, feed the result back, repeat until the model answers in plain text
// or the round ceiling is hit. Every tool-invocation message is immediately
// followed by exactly one tool-result message before the next model call.
func (d *Driver) Run(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Query) == "" {
		return Result{}, fmt.Errorf("query is required")
	}

	provider, route, err := d.registry.Resolve(req.Model)
	if err != nil {
		return Result{}, err
	}

	persona := ClassifyPersona(req.Query)
	messages := []llm.ChatMessage{
		{Role: llm.RoleSystem, Content: persona.Prompt},
		{Role: llm.RoleUser, Content: buildUserPrompt(req.Query, req.Context)},
	}
	schemas := toToolSchemas(d.tools.Schemas())

	maxRounds := d.MaxToolRounds()
	result := Result{Persona: persona.Name, Model: route.Name}

	for {
		chatReq := llm.ChatRequest{
			Model:       route.Model,
			Messages:    messages,
			Tools:       schemas,
			MaxTokens:   pickMaxTokens(d.cfg.MaxTokens, route.MaxTokens),
			Temperature: pickTemperature(d.cfg.Temperature, route.Temperature),
		}

		resp, err := d.chatWithRetry(ctx, provider, chatReq, route.Name)
		if err != nil {
			return result, err
		}

		if len(resp.Message.ToolCalls) == 0 {
			result.Text = resp.Message.Content
			result.FinishReason = resp.FinishReason
			return result, nil
		}

		if result.Rounds >= maxRounds {
			return result, fmt.Errorf("%w after %d rounds", ErrMaxIterations, result.Rounds)
		}

		messages = append(messages, resp.Message)
		for _, call := range resp.Message.ToolCalls {
			exec := d.executeTool(call)
			result.Executions = append(result.Executions, exec)
			if d.metrics != nil {
				d.metrics.RecordToolExecution(exec.Tool, exec.Success)
			}

			payload, err := json.Marshal(exec.Output)
			if err != nil {
				payload = []byte(fmt.Sprintf(`{"error":%q}`, err.Error()))
			}
			messages = append(messages, llm.ChatMessage{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    string(payload),
			})
		}
		result.Rounds++
	}
}

// executeTool dispatches one call. Unknown-tool and invalid-input errors are
// folded into a structured error result fed back into the conversation so
// the model can self-correct; they never abort the run.
func (d *Driver) executeTool(call llm.ToolCall) tools.ExecutionResult {
	res, err := d.tools.Execute(call.Name, call.Args)
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("tool call rejected", zap.String("tool", call.Name), zap.Error(err))
		}
		return tools.ExecutionResult{
			Tool:   call.Name,
			Input:  call.Args,
			Output: map[string]interface{}{"error": err.Error()},
		}
	}
	return res
}

// chatWithRetry wraps the upstream call in the configured bounded retry.
// With retry_attempts 0 (the default) a failure propagates immediately.
func (d *Driver) chatWithRetry(ctx context.Context, provider llm.Provider, req llm.ChatRequest, modelName string) (llm.ChatResponse, error) {
	backoff := d.cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}

	var lastErr error
	for attempt := 0; attempt <= d.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return llm.ChatResponse{}, ctx.Err()
			case <-time.After(backoff << (attempt - 1)):
			}
		}

		resp, err := provider.Chat(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if d.metrics != nil {
			d.metrics.RecordModelFailure(modelName)
		}
		if d.logger != nil {
			d.logger.Warn("model call failed",
				zap.String("model", modelName),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
		}
	}
	return llm.ChatResponse{}, lastErr
}

// buildUserPrompt appends caller-supplied context fields as "key: value"
// lines, sorted for deterministic prompts.
func buildUserPrompt(query string, fields map[string]string) string {
	if len(fields) == 0 {
		return query
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(query)
	b.WriteString("\n\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, fields[k])
	}
	return b.String()
}

func toToolSchemas(schemas []tools.Schema) []llm.ToolSchema {
	out := make([]llm.ToolSchema, 0, len(schemas))
	for _, s := range schemas {
		ts := llm.ToolSchema{Name: s.Name, Description: s.Description}
		for _, f := range s.Parameters {
			ts.Parameters = append(ts.Parameters, llm.ToolParam{
				Name:        f.Name,
				Type:        f.Type,
				Description: f.Description,
				Required:    f.Required,
				Enum:        f.Enum,
			})
		}
		out = append(out, ts)
	}
	return out
}

func pickTemperature(analysisTemp, routeTemp float64) float64 {
	if analysisTemp > 0 {
		return analysisTemp
	}
	if routeTemp > 0 {
		return routeTemp
	}
	return 0.2
}

func pickMaxTokens(analysisMax, routeMax int) int {
	if analysisMax > 0 {
		return analysisMax
	}
	if routeMax > 0 {
		return routeMax
	}
	return 0
}
