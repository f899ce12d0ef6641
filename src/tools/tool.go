package tools

import (
	"context"
	"fmt"
)

// ToolInputOutputSchema mirrors the JSON schema advertised for a tool.
type ToolInputOutputSchema struct {
	Type        string                 `json:"type"`                 // e.g. "object"
	Properties  map[string]interface{} `json:"properties,omitempty"` // field schemas
	Required    []string               `json:"required,omitempty"`
	Description string                 `json:"description,omitempty"`
	Title       string                 `json:"title,omitempty"`
}

// Tool holds the metadata and handler for a single callable tool.
type Tool struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Inputs      ToolInputOutputSchema `json:"inputs"`
	Handler     ToolHandler           `json:"-"`
}

// ToolHandler receives the raw call arguments and returns a JSON-encodable
// payload. A non-nil error is reported to the caller by the transport.
type ToolHandler func(ctx context.Context, inputs map[string]interface{}) (any, error)

// Property builds one schema property entry.
func Property(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

// WithDefault returns prop with a "default" value set.
func WithDefault(prop map[string]interface{}, value any) map[string]interface{} {
	prop["default"] = value
	return prop
}

// WithEnum returns prop restricted to the given values.
func WithEnum(prop map[string]interface{}, values []string) map[string]interface{} {
	enum := make([]interface{}, len(values))
	for i, v := range values {
		enum[i] = v
	}
	prop["enum"] = enum
	return prop
}

// ObjectSchema builds an object schema from properties and required names.
func ObjectSchema(properties map[string]interface{}, required ...string) ToolInputOutputSchema {
	if properties == nil {
		properties = map[string]interface{}{}
	}
	return ToolInputOutputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Validate checks that every tool in the list is callable and uniquely named.
func Validate(list []Tool) error {
	seen := make(map[string]struct{}, len(list))
	for i, t := range list {
		if t.Name == "" {
			return fmt.Errorf("tool %d has no name", i)
		}
		if t.Handler == nil {
			return fmt.Errorf("tool %q has no handler", t.Name)
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("duplicate tool name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
		for _, req := range t.Inputs.Required {
			if _, ok := t.Inputs.Properties[req]; !ok {
				return fmt.Errorf("tool %q requires undeclared input %q", t.Name, req)
			}
		}
	}
	return nil
}
