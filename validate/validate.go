// Command validate provides a small CLI that validates board preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Dimension count (at least two axes)
//   - Dimension sizes (all positive)
//   - Name collisions between preset files
//
// It prints a concise report and exits with non-zero status if any preset
// is invalid.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Preset mirrors the JSON schema for a board preset.
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Dimensions  []int  `json:"dimensions"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Name   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}
	result.Name = preset.Name

	if preset.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}

	if len(preset.Dimensions) < 2 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Must have at least 2 dimensions, got %d", len(preset.Dimensions)))
	}

	capacity := 1
	for i, size := range preset.Dimensions {
		if size < 1 {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Dimension %d must be positive, got %d", i, size))
			capacity = 0
		} else if capacity > 0 {
			capacity *= size
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Dimensions: %v (%dD)", preset.Dimensions, len(preset.Dimensions)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Capacity: %d cells", capacity))
	}

	return result
}

// main scans the configs directory for *.json files and validates each one.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding preset files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	seenNames := map[string]string{}
	for _, file := range files {
		result := validatePreset(file)

		if result.Valid && result.Name != "" {
			if other, dup := seenNames[result.Name]; dup {
				result.Valid = false
				result.Errors = []string{fmt.Sprintf("Name %q already used by %s", result.Name, other)}
			} else {
				seenNames[result.Name] = result.File
			}
		}

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
		os.Exit(1)
	}
}
