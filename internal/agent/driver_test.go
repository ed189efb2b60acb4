package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/juggajay/siteproof-v2-sub000/internal/config"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm"
	"github.com/juggajay/siteproof-v2-sub000/internal/llm/mock"
	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

func newTestDriver(t *testing.T, chatFn func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error), cfg config.AnalysisConfig) *Driver {
	t.Helper()
	registry := llm.NewRegistry()
	registry.RegisterProvider("mock", &mock.Provider{ChatFn: chatFn})
	registry.RegisterModel("test-model", llm.ModelRoute{Provider: "mock", Model: "mock-1"}, true)
	return NewDriver(registry, tools.NewRegistry(), cfg, zap.NewNop(), nil)
}

func textResponse(text string) llm.ChatResponse {
	return llm.ChatResponse{
		Message:      llm.ChatMessage{Role: llm.RoleAssistant, Content: text},
		FinishReason: "stop",
	}
}

func toolResponse(calls ...llm.ToolCall) llm.ChatResponse {
	return llm.ChatResponse{
		Message:      llm.ChatMessage{Role: llm.RoleAssistant, ToolCalls: calls},
		FinishReason: "tool_calls",
	}
}

func TestRunPlainTextAnswer(t *testing.T) {
	d := newTestDriver(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		return textResponse("all clear"), nil
	}, config.AnalysisConfig{MaxToolRounds: 10})

	res, err := d.Run(context.Background(), Request{Query: "status of the compaction lot?"})
	require.NoError(t, err)
	require.Equal(t, "all clear", res.Text)
	require.Equal(t, "compliance", res.Persona)
	require.Equal(t, 0, res.Rounds)
	require.Empty(t, res.Executions)
}

func TestRunExecutesToolAndFeedsResultBack(t *testing.T) {
	var toolMessage llm.ChatMessage
	calls := 0
	d := newTestDriver(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		calls++
		if calls == 1 {
			return toolResponse(llm.ToolCall{
				ID:   "call-1",
				Name: "lookup_standard",
				Args: map[string]interface{}{"code": "AS 3798"},
			}), nil
		}
		// second request must carry the assistant tool call and its result
		toolMessage = req.Messages[len(req.Messages)-1]
		return textResponse("done"), nil
	}, config.AnalysisConfig{MaxToolRounds: 10})

	res, err := d.Run(context.Background(), Request{Query: "what does as 3798 require?"})
	require.NoError(t, err)
	require.Equal(t, "done", res.Text)
	require.Equal(t, 1, res.Rounds)
	require.Len(t, res.Executions, 1)
	require.True(t, res.Executions[0].Success)

	require.Equal(t, llm.RoleTool, toolMessage.Role)
	require.Equal(t, "call-1", toolMessage.ToolCallID)
	require.Contains(t, toolMessage.Content, "AS_3798")
}

func TestRunStopsAtToolRoundCeiling(t *testing.T) {
	calls := 0
	d := newTestDriver(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		calls++
		return toolResponse(llm.ToolCall{
			ID:   fmt.Sprintf("call-%d", calls),
			Name: "lookup_standard",
			Args: map[string]interface{}{"code": "AS 3798"},
		}), nil
	}, config.AnalysisConfig{MaxToolRounds: 2})

	res, err := d.Run(context.Background(), Request{Query: "inspection check"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMaxIterations))
	// exactly maxRounds tool rounds execute before the run aborts
	require.Len(t, res.Executions, 2)
	require.Equal(t, 2, res.Rounds)
}

func TestRunFeedsUnknownToolErrorBack(t *testing.T) {
	calls := 0
	d := newTestDriver(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		calls++
		if calls == 1 {
			return toolResponse(llm.ToolCall{ID: "call-1", Name: "launch_rockets", Args: nil}), nil
		}
		last := req.Messages[len(req.Messages)-1]
		if last.Role != llm.RoleTool {
			return llm.ChatResponse{}, fmt.Errorf("expected a tool result, got role %s", last.Role)
		}
		return textResponse("recovered: " + last.Content), nil
	}, config.AnalysisConfig{MaxToolRounds: 10})

	res, err := d.Run(context.Background(), Request{Query: "inspection check"})
	require.NoError(t, err)
	require.Contains(t, res.Text, "unknown tool")
	require.Len(t, res.Executions, 1)
	require.False(t, res.Executions[0].Success)
}

func TestRunRetriesUpstreamFailures(t *testing.T) {
	calls := 0
	d := newTestDriver(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		calls++
		if calls == 1 {
			return llm.ChatResponse{}, errors.New("upstream 529")
		}
		return textResponse("ok"), nil
	}, config.AnalysisConfig{MaxToolRounds: 10, RetryAttempts: 1, RetryBackoff: time.Millisecond})

	res, err := d.Run(context.Background(), Request{Query: "inspection check"})
	require.NoError(t, err)
	require.Equal(t, "ok", res.Text)
	require.Equal(t, 2, calls)
}

func TestRunPropagatesUpstreamFailureWithoutRetries(t *testing.T) {
	calls := 0
	d := newTestDriver(t, func(ctx context.Context, req llm.ChatRequest) (llm.ChatResponse, error) {
		calls++
		return llm.ChatResponse{}, errors.New("upstream down")
	}, config.AnalysisConfig{MaxToolRounds: 10})

	_, err := d.Run(context.Background(), Request{Query: "inspection check"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream down")
	require.Equal(t, 1, calls)
}

func TestRunRequiresQuery(t *testing.T) {
	d := newTestDriver(t, nil, config.AnalysisConfig{MaxToolRounds: 10})
	_, err := d.Run(context.Background(), Request{Query: "   "})
	require.Error(t, err)
}

func TestBuildUserPromptSortsContextFields(t *testing.T) {
	prompt := buildUserPrompt("check it", map[string]string{
		"material":  "clay",
		"council":   "Blacktown",
		"work type": "earthworks",
	})
	require.Equal(t, "check it\n\ncouncil: Blacktown\nmaterial: clay\nwork type: earthworks\n", prompt)
}
