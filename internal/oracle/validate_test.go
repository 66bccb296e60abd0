package oracle

import (
	"encoding/json"
	"errors"
	"testing"
)

func probeSchema() *Schema {
	return &Schema{
		Name:        "probe",
		Description: "exercises the validator",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":  map[string]any{"type": "string"},
				"depth": map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"correct", "partial", "incorrect"}},
			},
			"required": []any{"text", "depth"},
		},
	}
}

func TestSchemaValidate(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields", `{"text":"What stops the calls?","depth":0,"grade":"correct"}`, false},
		{"optional omitted", `{"text":"And for an empty list?","depth":1}`, false},
		{"missing required", `{"text":"incomplete"}`, true},
		{"wrong type", `{"text":"q","depth":"deep"}`, true},
		{"enum violation", `{"text":"q","depth":0,"grade":"brilliant"}`, true},
		{"negative depth", `{"text":"q","depth":-1}`, true},
		{"not json", `{not json}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := probeSchema().Validate(json.RawMessage(tc.raw))
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				var invErr *InvalidResponseError
				if !errors.As(err, &invErr) {
					t.Fatalf("expected InvalidResponseError, got %T", err)
				}
				if string(invErr.Content) != tc.raw {
					t.Errorf("error should carry the offending content")
				}
			}
		})
	}
}

func TestSchemaCompiledOnce(t *testing.T) {
	s := probeSchema()
	for range 3 {
		if err := s.Validate(json.RawMessage(`{"text":"q","depth":2}`)); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	}
	if s.compiled == nil {
		t.Fatal("schema never compiled")
	}
}

func TestQuestionSchemaShape(t *testing.T) {
	valid := json.RawMessage(`{"kind":"question","text":"What does factorial(0) return?","example":"factorial(0)"}`)
	if err := QuestionSchema.Validate(valid); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	badKind := json.RawMessage(`{"kind":"lecture","text":"Recursion is...","example":""}`)
	if err := QuestionSchema.Validate(badKind); err == nil {
		t.Fatal("expected error for invalid kind")
	}
}

func TestVerdictSchemaShape(t *testing.T) {
	valid := json.RawMessage(`{"grade":"partial","applies_transfer":false,"probe":"What about the last call?"}`)
	if err := VerdictSchema.Validate(valid); err != nil {
		t.Fatalf("valid verdict rejected: %v", err)
	}

	missing := json.RawMessage(`{"grade":"correct"}`)
	if err := VerdictSchema.Validate(missing); err == nil {
		t.Fatal("expected error for missing fields")
	}
}
