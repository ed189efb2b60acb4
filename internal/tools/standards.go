package tools

import (
	"fmt"
	"strings"

	"github.com/juggajay/siteproof-v2-sub000/internal/knowledge"
)

// lookupStandard returns clause summaries for an enumerated standard code.
func lookupStandard(args map[string]interface{}) (map[string]interface{}, error) {
	code, ok := stringArg(args, "code")
	if !ok || code == "" {
		return nil, fmt.Errorf("code must be a non-empty string")
	}

	std, ok := knowledge.LookupStandard(code)
	if !ok {
		return nil, fmt.Errorf("standard %q not in knowledge base (known: %s)",
			code, strings.Join(knowledge.StandardCodes(), ", "))
	}

	clauses := make([]map[string]interface{}, 0, len(std.Clauses))
	for _, c := range std.Clauses {
		clauses = append(clauses, map[string]interface{}{
			"clause":      c.Clause,
			"title":       c.Title,
			"requirement": c.Requirement,
		})
	}

	return map[string]interface{}{
		"code":    std.Code,
		"title":   std.Title,
		"summary": std.Summary,
		"clauses": clauses,
	}, nil
}
