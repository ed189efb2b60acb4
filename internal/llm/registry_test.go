package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticProvider struct{ name string }

func (p *staticProvider) Name() string { return p.name }
func (p *staticProvider) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	return ChatResponse{}, nil
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	r.RegisterProvider("anthropic", &staticProvider{name: "anthropic"})
	r.RegisterModel("claude-sonnet", ModelRoute{Provider: "anthropic", Model: "claude-sonnet-4"}, true)
	r.RegisterModel("claude-fast", ModelRoute{Provider: "anthropic", Model: "claude-haiku"}, false)

	p, route, err := r.Resolve("claude-fast")
	require.NoError(t, err)
	require.Equal(t, "anthropic", p.Name())
	require.Equal(t, "claude-haiku", route.Model)
	require.Equal(t, "claude-fast", route.Name)
}

func TestRegistryResolveDefault(t *testing.T) {
	r := NewRegistry()
	r.RegisterProvider("anthropic", &staticProvider{name: "anthropic"})
	r.RegisterModel("claude-sonnet", ModelRoute{Provider: "anthropic", Model: "claude-sonnet-4"}, true)

	_, route, err := r.Resolve("")
	require.NoError(t, err)
	require.Equal(t, "claude-sonnet", route.Name)
}

func TestRegistryResolveErrors(t *testing.T) {
	r := NewRegistry()
	_, _, err := r.Resolve("missing")
	require.Error(t, err)

	r.RegisterModel("orphan", ModelRoute{Provider: "nowhere", Model: "x"}, true)
	_, _, err = r.Resolve("orphan")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nowhere")
}

func TestToolSchemaJSONSchema(t *testing.T) {
	s := ToolSchema{
		Name: "check_weather_restrictions",
		Parameters: []ToolParam{
			{Name: "work_type", Type: "string", Required: true, Enum: []string{"earthworks", "concrete"}},
			{Name: "rainfall_mm", Type: "number"},
		},
	}

	schema := s.JSONSchema()
	require.Equal(t, "object", schema["type"])
	require.Equal(t, []string{"work_type"}, schema["required"])

	props := schema["properties"].(map[string]interface{})
	wt := props["work_type"].(map[string]interface{})
	require.Equal(t, "string", wt["type"])
	require.Equal(t, []string{"earthworks", "concrete"}, wt["enum"])
	require.NotContains(t, props["rainfall_mm"], "enum")
}
