package knowledge

import (
	"sort"
	"strings"
)

// SupervisionRequirement captures AS 3798 inspection-intensity tiers.
type SupervisionRequirement struct {
	Level              int
	RequiredCompaction float64 // percent of maximum dry density
	TestFrequencyM3    int     // one density test per this many cubic metres
	MinTests           int
	Description        string
}

var supervisionLevels = map[int]SupervisionRequirement{
	1: {
		Level:              1,
		RequiredCompaction: 98,
		TestFrequencyM3:    500,
		MinTests:           3,
		Description:        "Full-time supervision by geotechnical inspector (structural fill)",
	},
	2: {
		Level:              2,
		RequiredCompaction: 95,
		TestFrequencyM3:    1000,
		MinTests:           3,
		Description:        "Part-time supervision with hold points (general fill)",
	},
	3: {
		Level:              3,
		RequiredCompaction: 92,
		TestFrequencyM3:    2500,
		MinTests:           2,
		Description:        "Occasional visits only (non-structural fill)",
	},
}

// SupervisionLevel returns the AS 3798 requirement tier, if defined.
func SupervisionLevel(level int) (SupervisionRequirement, bool) {
	req, ok := supervisionLevels[level]
	return req, ok
}

// StandardClause is a single clause summary inside a standard.
type StandardClause struct {
	Clause      string `json:"clause"`
	Title       string `json:"title"`
	Requirement string `json:"requirement"`
}

// Standard is a summarized Australian Standard entry.
type Standard struct {
	Code    string           `json:"code"`
	Title   string           `json:"title"`
	Summary string           `json:"summary"`
	Clauses []StandardClause `json:"clauses"`
}

var standards = map[string]Standard{
	"AS_3798": {
		Code:    "AS_3798",
		Title:   "Guidelines on earthworks for commercial and residential developments",
		Summary: "Covers supervision levels, compaction requirements and density testing frequency for filled ground.",
		Clauses: []StandardClause{
			{Clause: "5.4", Title: "Level of geotechnical supervision", Requirement: "Level 1 requires full-time supervision; Level 2 part-time with hold points; Level 3 occasional visits."},
			{Clause: "6.2", Title: "Compaction standard", Requirement: "Structural fill to be compacted to not less than 98% standard maximum dry density under Level 1 supervision, 95% under Level 2."},
			{Clause: "8.1", Title: "Density testing", Requirement: "Field density tests at the nominated frequency per layer; a minimum of three tests per lot."},
		},
	},
	"AS_2870": {
		Code:    "AS_2870",
		Title:   "Residential slabs and footings",
		Summary: "Site classification and design of slabs and footings for residential construction.",
		Clauses: []StandardClause{
			{Clause: "2.2", Title: "Site classification", Requirement: "Sites classified A, S, M, H1, H2, E or P based on expected ground movement."},
			{Clause: "5.3", Title: "Footing excavation", Requirement: "Footings founded on natural ground or controlled fill; loose or wet material removed before pouring."},
		},
	},
	"AS_3600": {
		Code:    "AS_3600",
		Title:   "Concrete structures",
		Summary: "Design and construction requirements for structural concrete, including curing and hot-weather limits.",
		Clauses: []StandardClause{
			{Clause: "17.1.5", Title: "Curing", Requirement: "Concrete cured continuously for at least 3 days (7 days for B2/C exposure)."},
			{Clause: "17.1.3", Title: "Hot and cold weather", Requirement: "Concrete not placed when ambient temperature is below 5 degrees C or above 35 degrees C without approved measures."},
		},
	},
	"AS_4678": {
		Code:    "AS_4678",
		Title:   "Earth-retaining structures",
		Summary: "Design of structures retaining soil and rock, including drainage and backfill compaction.",
		Clauses: []StandardClause{
			{Clause: "5.2", Title: "Backfill", Requirement: "Backfill placed in layers and compacted; free-draining material within the drainage zone."},
		},
	},
}

// LookupStandard returns a standard by enumerated code (e.g. "AS_3798").
// Lookup is tolerant of case and of "AS 3798" spacing.
func LookupStandard(code string) (Standard, bool) {
	key := strings.ToUpper(strings.TrimSpace(code))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	std, ok := standards[key]
	return std, ok
}

// StandardCodes lists the enumerated standard codes in the table.
func StandardCodes() []string {
	codes := make([]string, 0, len(standards))
	for code := range standards {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
