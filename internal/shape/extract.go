// Package shape coerces free-text model answers into well-formed result
// structures. Extraction is deliberately best-effort and lossy: model output
// is unreliable, so every shape has hardcoded defaults and parsing can only
// overlay fields onto them, never fail the caller.
package shape

import (
	"encoding/json"
	"strings"
)

// ExtractJSON locates the first greedy {...} or [...] span in text and
// returns it if it parses as JSON. Fenced code blocks are unwrapped first.
func ExtractJSON(text string) (json.RawMessage, bool) {
	text = stripFences(text)

	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		start := strings.Index(text, pair[0])
		if start == -1 {
			continue
		}
		end := strings.LastIndex(text, pair[1])
		if end <= start {
			continue
		}
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return json.RawMessage(candidate), true
		}
	}
	return nil, false
}

func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	start := strings.Index(text, "```json")
	if start == -1 {
		start = strings.Index(text, "```")
	}
	if start == -1 {
		return text
	}
	rest := text[start+3:]
	if end := strings.Index(rest, "```"); end != -1 {
		inner := strings.TrimPrefix(rest[:end], "json")
		return strings.TrimSpace(inner)
	}
	return text
}

// decodeOrNil parses raw JSON into dst; dst keeps its pre-set defaults for
// any field the payload omits.
func decodeOrNil(raw json.RawMessage, dst interface{}) bool {
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
