package export

// BuildInstrumentsJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. The JSON writer validates its own output against it
// before handing the file to the import side.
func BuildInstrumentsJSONSchema() map[string]any {
	measurement := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"services":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"processTolerance":    map[string]any{"type": "string"},
			"symmetricTolerance":  map[string]any{"type": "boolean"},
			"unit":                map[string]any{"type": "string"},
			"resolution":          map[string]any{"type": "string"},
			"acceptanceCriterion": map[string]any{"type": "string"},
			"decisionRuleId":      map[string]any{"type": "integer", "minimum": 1},
			"nominalRange":        map[string]any{"type": "string"},
			"normClass":           map[string]any{"type": "string"},
			"classification":      map[string]any{"type": "string"},
			"usageRange":          map[string]any{"type": "string"},
		},
		"required": []string{"services", "processTolerance", "symmetricTolerance", "decisionRuleId"},
	}

	instrument := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"identification":          map[string]any{"type": "string", "minLength": 1},
			"name":                    map[string]any{"type": "string"},
			"manufacturer":            map[string]any{"type": "string"},
			"model":                   map[string]any{"type": "string"},
			"serialNumber":            map[string]any{"type": "string"},
			"description":             map[string]any{"type": "string"},
			"calibrationPeriodMonths": map[string]any{"type": "integer", "minimum": 1},
			"status":                  map[string]any{"type": "string"},
			"quantity":                map[string]any{"type": "integer", "minimum": 1},
			"calibrationDate":         map[string]any{"type": "string"},
			"issueDate":               map[string]any{"type": "string"},
			"measurements":            map[string]any{"type": "array", "items": measurement},
			"sourceFiles":             map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
		},
		"required": []string{"identification", "measurements", "sourceFiles"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"extractedAt":      map[string]any{"type": "string"},
			"totalInstruments": map[string]any{"type": "integer", "minimum": 0},
			"instruments":      map[string]any{"type": "array", "items": instrument},
		},
		"required": []string{"extractedAt", "totalInstruments", "instruments"},
	}
}
