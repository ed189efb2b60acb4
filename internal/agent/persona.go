package agent

import "strings"

// Persona is a fixed system prompt biasing the model toward one domain.
type Persona struct {
	Name   string
	Prompt string
}

// personaRule pairs a keyword predicate with a persona. Rules are evaluated
// in order; first match wins, with a generic fallback.
type personaRule struct {
	keywords []string
	persona  Persona
}

var compliancePersona = Persona{
	Name: "compliance",
	Prompt: strings.TrimSpace(`
You are a SiteProof compliance engineer specialising in Australian construction standards (AS 3798, AS 2870, AS 3600, AS 4678).
Use the provided tools to verify compaction results, test frequencies and standard clauses before concluding.
Finish with a JSON object: {"status":"PASS|FAIL|UNKNOWN","compliant":true|false,"risk_level":"LOW|MEDIUM|HIGH|EXTREME","score":0-100,"findings":["..."],"recommendations":["..."],"summary":"..."}`),
}

var weatherPersona = Persona{
	Name: "weather",
	Prompt: strings.TrimSpace(`
You are a SiteProof weather-risk assessor for construction sites.
Use the provided tools to evaluate rainfall, drying time, temperature and wind restrictions for the work in question.
Finish with a JSON object: {"proceed":true|false,"risk_level":"LOW|MEDIUM|HIGH|EXTREME","restrictions":["..."],"required_drying_days":0,"analysis":"..."}`),
}

var planningPersona = Persona{
	Name: "planning",
	Prompt: strings.TrimSpace(`
You are a SiteProof planning analyst predicting council approval timelines for NSW development applications.
Use the provided tools to look up council performance before estimating.
Finish with a JSON object: {"estimated_days":0,"risk_level":"LOW|MEDIUM|HIGH|EXTREME","critical_path":["..."],"adjustments":["..."],"summary":"..."}`),
}

var defaultPersona = Persona{
	Name: "general",
	Prompt: strings.TrimSpace(`
You are SiteProof, an assistant for construction project management in Australia.
Use the provided tools when they can answer part of the question. Be concise and factual.`),
}

var personaRules = []personaRule{
	{
		keywords: []string{"compaction", "proctor", "density", "compliance", "as 3798", "as_3798", "inspection", "supervision level"},
		persona:  compliancePersona,
	},
	{
		keywords: []string{"rain", "forecast", "weather", "drying", "wind", "temperature"},
		persona:  weatherPersona,
	},
	{
		keywords: []string{"council", "approval", "schedule", "timeline", "development application", " da "},
		persona:  planningPersona,
	},
}

// ClassifyPersona picks the system persona for a user query. Stateless
// keyword matching, not a model.
func ClassifyPersona(query string) Persona {
	q := strings.ToLower(query)
	for _, rule := range personaRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.persona
			}
		}
	}
	return defaultPersona
}
