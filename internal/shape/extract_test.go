package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONObjectSpan(t *testing.T) {
	raw, ok := ExtractJSON(`Here is the assessment: {"status":"PASS","score":98} as requested.`)
	require.True(t, ok)
	require.JSONEq(t, `{"status":"PASS","score":98}`, string(raw))
}

func TestExtractJSONFromFencedBlock(t *testing.T) {
	text := "Result below.\n```json\n{\"status\": \"FAIL\"}\n```\nDone."
	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	require.JSONEq(t, `{"status":"FAIL"}`, string(raw))
}

func TestExtractJSONArray(t *testing.T) {
	raw, ok := ExtractJSON(`The findings are ["one", "two"].`)
	require.True(t, ok)
	require.JSONEq(t, `["one","two"]`, string(raw))
}

func TestExtractJSONNoSpan(t *testing.T) {
	_, ok := ExtractJSON("The lot looks fine, proceed with caution.")
	require.False(t, ok)
}

func TestExtractJSONInvalidSpan(t *testing.T) {
	// Braces present but the greedy span is not valid JSON.
	_, ok := ExtractJSON(`{"status": "PASS" ... and then some trailing prose}`)
	require.False(t, ok)
}
