package content

// CatalogSchema defines the JSON schema for external catalog files.
var CatalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"categories": map[string]any{
			"type":  "array",
			"items": map[string]any{"$ref": "#/$defs/category"},
		},
	},
	"required":             []any{"categories"},
	"additionalProperties": false,
	"$defs": map[string]any{
		"category": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"name": map[string]any{"type": "string", "minLength": 1},
				"specializations": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/specialization"},
				},
			},
			"required":             []any{"id", "name", "specializations"},
			"additionalProperties": false,
		},
		"specialization": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"name": map[string]any{"type": "string", "minLength": 1},
				"levels": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/level"},
				},
				"children": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/specialization"},
				},
			},
			"required":             []any{"id", "name"},
			"additionalProperties": false,
		},
		"level": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":     map[string]any{"type": "integer"},
				"number": map[string]any{"type": "integer", "minimum": 1},
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/question"},
				},
			},
			"required":             []any{"id", "number"},
			"additionalProperties": false,
		},
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "integer"},
				"text": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
				},
				"correctIndex": map[string]any{"type": "integer", "minimum": 0},
			},
			"required":             []any{"id", "text", "options", "correctIndex"},
			"additionalProperties": false,
		},
	},
}
