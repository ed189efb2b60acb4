package tools

// Schema describes a tool for JSON schema/tool-calling.
type Schema struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Parameters  []SchemaField `json:"parameters"`
}

// SchemaField describes a single parameter.
type SchemaField struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

func compactionSchema() Schema {
	return Schema{
		Name:        "check_compaction_compliance",
		Description: "Check field compaction against AS 3798 requirements from dry density and maximum dry density",
		Parameters: []SchemaField{
			{Name: "dry_density", Type: "number", Description: "Achieved field dry density (kN/m3)", Required: true},
			{Name: "max_dry_density", Type: "number", Description: "Laboratory maximum dry density (kN/m3)", Required: true},
			{Name: "required_percentage", Type: "number", Description: "Required compaction percentage; derived from supervision level when omitted", Required: false},
			{Name: "supervision_level", Type: "integer", Description: "AS 3798 supervision level (1-3)", Required: false},
		},
	}
}

func councilSchema() Schema {
	return Schema{
		Name:        "get_council_approval_timeline",
		Description: "Look up development-application approval statistics and delay risk for a NSW council",
		Parameters: []SchemaField{
			{Name: "council", Type: "string", Description: "Council name, e.g. Georges River", Required: true},
		},
	}
}

func weatherSchema() Schema {
	return Schema{
		Name:        "check_weather_restrictions",
		Description: "Evaluate weather-threshold breaches and drying-time requirements for a work type and material",
		Parameters: []SchemaField{
			{Name: "work_type", Type: "string", Description: "Type of work", Required: true,
				Enum: []string{"earthworks", "concrete", "asphalt", "crane", "roofing"}},
			{Name: "material", Type: "string", Description: "Material being worked, e.g. clay", Required: false},
			{Name: "rainfall_mm", Type: "number", Description: "Rainfall of the most recent rain event (mm)", Required: false},
			{Name: "days_since_rain", Type: "integer", Description: "Days elapsed since that rain event", Required: false},
			{Name: "temperature_c", Type: "number", Description: "Current ambient temperature (deg C)", Required: false},
			{Name: "wind_kmh", Type: "number", Description: "Current wind speed (km/h)", Required: false},
		},
	}
}

func standardSchema() Schema {
	return Schema{
		Name:        "lookup_standard",
		Description: "Retrieve clause summaries for an Australian Standard by enumerated code",
		Parameters: []SchemaField{
			{Name: "code", Type: "string", Description: "Standard code, e.g. AS_3798", Required: true},
		},
	}
}

func testFrequencySchema() Schema {
	return Schema{
		Name:        "get_test_frequency",
		Description: "Required density-test count for an AS 3798 supervision level and fill volume",
		Parameters: []SchemaField{
			{Name: "supervision_level", Type: "integer", Description: "AS 3798 supervision level (1-3)", Required: true},
			{Name: "volume_m3", Type: "number", Description: "Fill volume in cubic metres", Required: false},
		},
	}
}
