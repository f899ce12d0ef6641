package tools

import (
	"context"
	"testing"
)

func noop(ctx context.Context, in map[string]interface{}) (any, error) { return in, nil }

// TestValidateAcceptsWellFormedList verifies a normal tool list passes.
func TestValidateAcceptsWellFormedList(t *testing.T) {
	list := []Tool{
		{Name: "a", Handler: noop, Inputs: ObjectSchema(map[string]interface{}{"keyword": Property("string", "kw")}, "keyword")},
		{Name: "b", Handler: noop, Inputs: ObjectSchema(nil)},
	}
	if err := Validate(list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBrokenLists(t *testing.T) {
	cases := map[string][]Tool{
		"unnamed":    {{Handler: noop}},
		"no handler": {{Name: "a"}},
		"duplicate":  {{Name: "a", Handler: noop}, {Name: "a", Handler: noop}},
		"required":   {{Name: "a", Handler: noop, Inputs: ObjectSchema(nil, "keyword")}},
	}
	for name, list := range cases {
		if err := Validate(list); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestSchemaHelpers(t *testing.T) {
	p := WithEnum(WithDefault(Property("string", "order"), "RECOMMEND"), []string{"RECOMMEND", "SELL"})
	if p["default"] != "RECOMMEND" {
		t.Fatalf("default not set: %+v", p)
	}
	enum, ok := p["enum"].([]interface{})
	if !ok || len(enum) != 2 || enum[1] != "SELL" {
		t.Fatalf("unexpected enum: %+v", p["enum"])
	}
	s := ObjectSchema(nil)
	if s.Type != "object" || s.Properties == nil {
		t.Fatalf("unexpected schema: %+v", s)
	}
}
