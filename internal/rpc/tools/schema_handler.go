// Package tools exposes the analysis tool catalogue over HTTP so clients can
// inspect what the conversation driver advertises to the model.
package tools

import (
	"encoding/json"
	"net/http"

	"github.com/juggajay/siteproof-v2-sub000/internal/tools"
)

// SchemaHandler serves the registered tool schemas as JSON.
type SchemaHandler struct {
	Registry *tools.Registry
}

func (h SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	schemas := h.Registry.Schemas()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"count": len(schemas),
		"tools": schemas,
	})
}
