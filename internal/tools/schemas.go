package tools

// Common JSON Schema building blocks

// StringSchema creates a JSON schema for a string field
func StringSchema(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

// IntegerSchema creates a JSON schema for an integer field with a default
func IntegerSchema(description string, def int) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": description,
		"default":     def,
	}
}

// BooleanSchema creates a JSON schema for a boolean field with a default
func BooleanSchema(description string, def bool) map[string]any {
	return map[string]any{
		"type":        "boolean",
		"description": description,
		"default":     def,
	}
}

// ObjectSchema creates a JSON schema for an object with arbitrary properties
func ObjectSchema(description string) map[string]any {
	return map[string]any{
		"type":        "object",
		"description": description,
	}
}

// BuildSchema creates a complete JSON schema object with properties and required fields
func BuildSchema(properties map[string]any, required []string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// DatabaseSchema returns the schema for the database name parameter
func DatabaseSchema() map[string]any {
	return StringSchema("Name of the database")
}

// CollectionSchema returns the schema for the collection name parameter
func CollectionSchema() map[string]any {
	return StringSchema("Name of the collection")
}
