package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestValidatePreset_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "classic.json", `{"name":"classic","description":"7x6","dimensions":[7,6]}`)

	result := validatePreset(path)
	if !result.Valid {
		t.Fatalf("Expected valid preset, got errors: %v", result.Errors)
	}
	if result.Name != "classic" {
		t.Errorf("Expected name classic, got %s", result.Name)
	}
}

func TestValidatePreset_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "bad.json", `{`},
		{"missing name", "noname.json", `{"dimensions":[7,6]}`},
		{"one dimension", "flat.json", `{"name":"flat","dimensions":[7]}`},
		{"zero size", "zero.json", `{"name":"zero","dimensions":[7,0]}`},
		{"negative size", "neg.json", `{"name":"neg","dimensions":[7,-2]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFile(t, dir, test.file, test.content)
			result := validatePreset(path)
			if result.Valid {
				t.Errorf("Expected %s to be invalid", test.file)
			}
			if len(result.Errors) == 0 {
				t.Error("Expected validation errors to be reported")
			}
		})
	}
}

func TestValidatePreset_MissingFile(t *testing.T) {
	result := validatePreset(filepath.Join(t.TempDir(), "absent.json"))
	if result.Valid {
		t.Error("Expected missing file to be invalid")
	}
}
