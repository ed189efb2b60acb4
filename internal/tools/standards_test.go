package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupStandardTool(t *testing.T) {
	out, err := lookupStandard(map[string]interface{}{"code": "as 3600"})
	require.NoError(t, err)
	require.Equal(t, "AS_3600", out["code"])

	clauses, ok := out["clauses"].([]map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, clauses)
}

func TestLookupStandardUnknownListsKnownCodes(t *testing.T) {
	_, err := lookupStandard(map[string]interface{}{"code": "AS_9999"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "AS_2870, AS_3600, AS_3798, AS_4678")
}
