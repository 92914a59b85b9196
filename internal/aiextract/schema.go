package aiextract

// BuildFieldsJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// the backend response must satisfy after sanitization. Every field is
// optional on the wire; absent fields get documented defaults when the
// record is assembled.
func BuildFieldsJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"merchant_name":  map[string]any{"type": "string"},
			"gstin":          map[string]any{"type": "string"},
			"invoice_number": map[string]any{"type": "string"},
			"date":           map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"total_amount":   map[string]any{"type": "number", "minimum": 0},
			"tax_amount":     map[string]any{"type": "number", "minimum": 0},
		},
	}
}
