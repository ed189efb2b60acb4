package tools

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteUnknownTool(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Execute("launch_rockets", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownTool))
}

func TestExecuteMissingRequiredFields(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Execute("check_compaction_compliance", map[string]interface{}{
		"dry_density": 19.8,
	})
	require.Error(t, err)

	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "check_compaction_compliance", invalid.Tool)
	require.Equal(t, []string{"max_dry_density"}, invalid.Missing)
}

func TestExecuteBodyErrorBecomesStructuredResult(t *testing.T) {
	reg := NewRegistry()
	res, err := reg.Execute("check_compaction_compliance", map[string]interface{}{
		"dry_density":     -1.0,
		"max_dry_density": 20.2,
	})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Contains(t, res.Output["error"], "dry_density")
}

func TestExecuteRecordsExecution(t *testing.T) {
	reg := NewRegistry()
	res, err := reg.Execute("lookup_standard", map[string]interface{}{"code": "AS 3798"})
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotEmpty(t, res.ID)
	require.Equal(t, "lookup_standard", res.Tool)
	require.Equal(t, "AS 3798", res.Input["code"])
}

func TestRegistrySchemas(t *testing.T) {
	reg := NewRegistry()
	schemas := reg.Schemas()
	require.Len(t, schemas, 5)

	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.Name)
	}
	require.Contains(t, names, "check_compaction_compliance")
	require.Contains(t, names, "get_council_approval_timeline")
	require.Contains(t, names, "check_weather_restrictions")
	require.Contains(t, names, "lookup_standard")
	require.Contains(t, names, "get_test_frequency")
}

func TestExecutionResultJSON(t *testing.T) {
	reg := NewRegistry()
	res, err := reg.Execute("get_council_approval_timeline", map[string]interface{}{"council": "Blacktown"})
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "get_council_approval_timeline", decoded["tool"])
	require.Equal(t, true, decoded["success"])
	require.Contains(t, decoded, "elapsed_ns")
}
