package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePreset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write preset file: %v", err)
	}
}

func TestManager_BuiltinPresets(t *testing.T) {
	manager := NewManager("")

	tests := []struct {
		name string
		dims []int
	}{
		{"classic", []int{7, 6}},
		{"cube", []int{4, 4, 4}},
		{"hyper", []int{6, 7, 4, 4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			preset, err := manager.Load(test.name)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", test.name, err)
			}
			if len(preset.Dimensions) != len(test.dims) {
				t.Fatalf("Expected %d dimensions, got %d", len(test.dims), len(preset.Dimensions))
			}
			for i, size := range test.dims {
				if preset.Dimensions[i] != size {
					t.Errorf("Dimension %d: expected %d, got %d", i, size, preset.Dimensions[i])
				}
			}
		})
	}
}

func TestManager_Default(t *testing.T) {
	manager := NewManager("")
	preset := manager.Default()
	if preset == nil {
		t.Fatal("Expected a default preset")
	}
	if preset.Name != "classic" {
		t.Errorf("Expected default preset classic, got %s", preset.Name)
	}
}

func TestManager_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "tower.json", `{"name":"tower","description":"Tall and narrow","dimensions":[5,12]}`)

	manager := NewManager(dir)
	preset, err := manager.Load("tower")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if preset.Name != "tower" {
		t.Errorf("Expected name tower, got %s", preset.Name)
	}
	if len(preset.Dimensions) != 2 || preset.Dimensions[1] != 12 {
		t.Errorf("Unexpected dimensions: %v", preset.Dimensions)
	}
}

func TestManager_LoadMissing(t *testing.T) {
	manager := NewManager(t.TempDir())
	if _, err := manager.Load("nope"); !errors.Is(err, ErrPresetNotFound) {
		t.Errorf("Expected ErrPresetNotFound, got %v", err)
	}
}

func TestManager_LoadInvalid(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "flat.json", `{"name":"flat","dimensions":[9]}`)
	writePreset(t, dir, "broken.json", `{`)

	manager := NewManager(dir)
	if _, err := manager.Load("flat"); !errors.Is(err, ErrInvalidPreset) {
		t.Errorf("One-dimensional preset: expected ErrInvalidPreset, got %v", err)
	}
	if _, err := manager.Load("broken"); !errors.Is(err, ErrInvalidPreset) {
		t.Errorf("Malformed JSON: expected ErrInvalidPreset, got %v", err)
	}
}

func TestManager_List(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "tower.json", `{"name":"tower","description":"Tall","dimensions":[5,12]}`)
	writePreset(t, dir, "junk.json", `not json`)

	manager := NewManager(dir)
	presets, err := manager.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Three built-ins plus the one valid file; broken files are skipped.
	if len(presets) != 4 {
		t.Fatalf("Expected 4 presets, got %d", len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1].Name >= presets[i].Name {
			t.Errorf("Presets not sorted: %s before %s", presets[i-1].Name, presets[i].Name)
		}
	}
}

func TestPreset_Validate(t *testing.T) {
	tests := []struct {
		name    string
		preset  Preset
		wantErr bool
	}{
		{"valid 2d", Preset{Name: "a", Dimensions: []int{7, 6}}, false},
		{"valid 5d", Preset{Name: "b", Dimensions: []int{2, 2, 2, 2, 2}}, false},
		{"missing name", Preset{Dimensions: []int{7, 6}}, true},
		{"one dimension", Preset{Name: "c", Dimensions: []int{7}}, true},
		{"zero size", Preset{Name: "d", Dimensions: []int{7, 0}}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.preset.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate: expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}
