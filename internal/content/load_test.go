package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalCatalogJSON = `{
	"categories": [
		{
			"id": "cat",
			"name": "Category",
			"specializations": [
				{
					"id": "spec",
					"name": "Spec",
					"levels": [
						{
							"id": 1,
							"number": 1,
							"questions": [
								{"id": 1, "text": "q?", "options": ["a", "b"], "correctIndex": 1}
							]
						}
					]
				}
			]
		}
	]
}`

func TestParseValid(t *testing.T) {
	cat, err := Parse([]byte(minimalCatalogJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cat.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(cat.Categories))
	}
	spec := FindSpecialization(cat.Categories[0].Specializations, "spec")
	if spec == nil {
		t.Fatal("expected spec to be decoded")
	}
	if got := spec.Levels[0].Questions[0].CorrectIndex; got != 1 {
		t.Errorf("correctIndex = %d, want 1", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantSub string
	}{
		{
			name:    "malformed JSON",
			raw:     `{"categories": [`,
			wantSub: "invalid JSON",
		},
		{
			name:    "missing categories",
			raw:     `{}`,
			wantSub: "schema validation failed",
		},
		{
			name:    "unknown field",
			raw:     `{"categories": [], "extra": true}`,
			wantSub: "schema validation failed",
		},
		{
			name: "question without options",
			raw: `{"categories": [{"id": "c", "name": "C", "specializations": [
				{"id": "s", "name": "S", "levels": [
					{"id": 1, "number": 1, "questions": [{"id": 1, "text": "q", "correctIndex": 0}]}
				]}
			]}]}`,
			wantSub: "schema validation failed",
		},
		{
			name: "structurally invalid after schema pass",
			raw: `{"categories": [{"id": "c", "name": "C", "specializations": [
				{"id": "s", "name": "S", "levels": [
					{"id": 1, "number": 1, "questions": [{"id": 1, "text": "q", "options": ["a", "b"], "correctIndex": 9}]}
				]}
			]}]}`,
			wantSub: "correctIndex 9 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(minimalCatalogJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cat.CategoryByID("cat") == nil {
		t.Error("expected category 'cat'")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
