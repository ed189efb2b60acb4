package tools

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownTool is returned when a call names a tool not in the registry.
var ErrUnknownTool = errors.New("unknown tool")

// InvalidInputError reports the required fields a call left out.
type InvalidInputError struct {
	Tool    string
	Missing []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: missing required fields %v", e.Tool, e.Missing)
}

// ExecutionResult is the record of one tool invocation.
type ExecutionResult struct {
	ID      string                 `json:"id"`
	Tool    string                 `json:"tool"`
	Input   map[string]interface{} `json:"input"`
	Output  map[string]interface{} `json:"output"`
	Success bool                   `json:"success"`
	Elapsed time.Duration          `json:"elapsed_ns"`
}

type toolFunc func(args map[string]interface{}) (map[string]interface{}, error)

// Registry holds the fixed set of analysis tools. Tools are pure functions
// over their arguments and the static knowledge tables; the registry is
// read-only after construction and safe for concurrent use.
type Registry struct {
	schemas []Schema
	impls   map[string]toolFunc
}

// NewRegistry builds the registry with all tools registered.
func NewRegistry() *Registry {
	r := &Registry{impls: make(map[string]toolFunc)}
	r.register(compactionSchema(), checkCompactionCompliance)
	r.register(councilSchema(), getCouncilApprovalTimeline)
	r.register(weatherSchema(), checkWeatherRestrictions)
	r.register(standardSchema(), lookupStandard)
	r.register(testFrequencySchema(), getTestFrequency)
	return r
}

func (r *Registry) register(s Schema, fn toolFunc) {
	r.schemas = append(r.schemas, s)
	r.impls[s.Name] = fn
}

// Schemas returns descriptors for all registered tools.
func (r *Registry) Schemas() []Schema {
	out := make([]Schema, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// Schema returns the schema for a given tool name if present.
func (r *Registry) Schema(name string) (Schema, bool) {
	for _, s := range r.schemas {
		if s.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}

// Execute dispatches a named invocation. Unknown names and missing required
// fields are Go errors; failures inside a tool body are swallowed into an
// {"error": message} output so the conversation can continue.
func (r *Registry) Execute(name string, args map[string]interface{}) (ExecutionResult, error) {
	impl, ok := r.impls[name]
	if !ok {
		return ExecutionResult{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	schema, _ := r.Schema(name)
	if missing := missingFields(schema, args); len(missing) > 0 {
		return ExecutionResult{}, &InvalidInputError{Tool: name, Missing: missing}
	}

	start := time.Now()
	output, err := safeInvoke(impl, args)
	res := ExecutionResult{
		ID:      uuid.NewString(),
		Tool:    name,
		Input:   args,
		Elapsed: time.Since(start),
	}
	if err != nil {
		res.Output = map[string]interface{}{"error": err.Error()}
		return res, nil
	}
	res.Output = output
	res.Success = true
	return res, nil
}

// safeInvoke shields the dispatch boundary from panicking tool bodies.
func safeInvoke(fn toolFunc, args map[string]interface{}) (out map[string]interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()
	return fn(args)
}
