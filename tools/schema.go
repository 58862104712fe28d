package tools

// Object builds an object input schema. Required names are emitted in the
// order given; a schema with no properties still carries an empty map so
// clients see a well-formed object.
func Object(properties map[string]any, required ...string) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		req := make([]any, len(required))
		for i, r := range required {
			req[i] = r
		}
		schema["required"] = req
	}
	return schema
}

// String is a string property.
func String(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// Enum is a string property restricted to values, with a default.
func Enum(description, def string, values ...string) map[string]any {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return map[string]any{
		"type":        "string",
		"description": description,
		"enum":        vals,
		"default":     def,
	}
}

// Number is a numeric property with a default.
func Number(description string, def int) map[string]any {
	return map[string]any{"type": "number", "description": description, "default": def}
}

// ObjectProp is a free-form object property.
func ObjectProp(description string) map[string]any {
	return map[string]any{"type": "object", "description": description}
}

// StringArray is an array-of-strings property.
func StringArray(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// Required returns the required property names declared by an object schema.
func Required(schema any) []string {
	m, ok := schema.(map[string]any)
	if !ok {
		return nil
	}
	var out []string
	switch req := m["required"].(type) {
	case []any:
		for _, r := range req {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, req...)
	}
	return out
}
