package answers

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoad_Valid(t *testing.T) {
	rec, err := Load(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Record{
		ProjectName:      "myproject",
		MainPackage:      "myapp",
		AuthorName:       "my name",
		AuthorEmail:      "my.email@example.com",
		ShortDescription: "description stuff",
		IncludeTemplates: true,
	}
	if *rec != want {
		t.Errorf("Load() = %+v, want %+v", *rec, want)
	}
}

func TestLoad_IncludeTemplatesDefaultsFalse(t *testing.T) {
	rec, err := Load(testPath("valid-no-templates.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if rec.IncludeTemplates {
		t.Error("IncludeTemplates should default to false")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-project-name.yaml", "/project_name"},
		{"invalid-project-dotdot.yaml", "/project_name"},
		{"invalid-package-traversal.yaml", "/main_package"},
		{"invalid-blank-description.yaml", "/short_description"},
		{"invalid-email.yaml", "/author_email"},
		{"invalid-missing-author.yaml", ""},
		{"invalid-templates-token.yaml", "/include_templates"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(testPath(tt.file))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got: %v", err)
			}

			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidError, got %T", err)
			}
			if len(invalid.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range invalid.Issues {
				if issue.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at path %q, got %v", tt.path, invalid.Issues)
			}
		})
	}
}

func TestLoad_NotYAML(t *testing.T) {
	_, err := Load(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if errors.Is(err, ErrInvalidRecord) {
		t.Error("parse failures should not be reported as schema violations")
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	rec := &Record{
		ProjectName:      "demo",
		MainPackage:      "demo_pkg",
		AuthorName:       "Ada Lovelace",
		AuthorEmail:      "ada@example.org",
		ShortDescription: "A demo package",
		IncludeTemplates: true,
	}
	if err := Save(path, rec); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *rec {
		t.Errorf("Load() = %+v, want %+v", *got, *rec)
	}
}

func TestValidateRecord(t *testing.T) {
	rec := &Record{
		ProjectName:      "demo",
		MainPackage:      "demo pkg",
		AuthorName:       "Ada",
		AuthorEmail:      "ada@example.org",
		ShortDescription: "d",
	}
	result, err := ValidateRecord(rec)
	if err != nil {
		t.Fatalf("ValidateRecord() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid record for main_package with whitespace")
	}
	if !strings.Contains(result.Issues[0].String(), "/main_package") {
		t.Errorf("issue should point at /main_package, got %q", result.Issues[0].String())
	}
}
