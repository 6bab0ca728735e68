package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Result file names written by WriteFiles
const (
	ErrorsFileName   = "errors.json"
	WarningsFileName = "warnings.json"
	ValuesFileName   = "values.json"
)

// WriteFiles serializes the result maps into three JSON documents
// (errors.json, warnings.json, values.json) under dir, creating the
// directory if needed. Empty maps produce "{}" documents so consumers
// can always rely on all three files being present.
func (r *ValidationResult) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("validator: failed to create output directory: %w", err)
	}

	files := []struct {
		name string
		data any
	}{
		{ErrorsFileName, orEmpty(r.Errors)},
		{WarningsFileName, orEmpty(r.Warnings)},
		{ValuesFileName, orEmptyAny(r.Values)},
	}
	for _, f := range files {
		encoded, err := json.MarshalIndent(f.data, "", "    ")
		if err != nil {
			return fmt.Errorf("validator: failed to encode %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("validator: failed to write %s: %w", f.name, err)
		}
	}
	return nil
}

// orEmpty keeps nil maps from serializing as JSON null
func orEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

func orEmptyAny(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
