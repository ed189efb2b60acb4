package tools

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

func TestSchemaHandler(t *testing.T) {
	reg := tools.NewRegistry()
	h := SchemaHandler{Registry: reg}
	req := httptest.NewRequest(http.MethodGet, "/tools/schemas", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Count int            `json:"count"`
		Tools []tools.Schema `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, 5, body.Count)
	require.Len(t, body.Tools, 5)
}

func TestSchemaHandlerRejectsPost(t *testing.T) {
	h := SchemaHandler{Registry: tools.NewRegistry()}
	req := httptest.NewRequest(http.MethodPost, "/tools/schemas", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
