package puzzle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadObjectiveJSON reads an Objective from a JSON file, rejecting unknown
// fields so a typo in hand-edited puzzle files fails loudly.
func LoadObjectiveJSON(filePath string) (*Objective, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var obj Objective
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return &obj, nil
}

// SaveObjectiveJSON writes obj as indented JSON, via a temp file renamed
// into place so a crash mid-write never leaves a truncated puzzle file.
func SaveObjectiveJSON(filePath string, obj *Objective) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filePath, err)
	}
	return writeAtomic(filePath, data)
}

// LoadObjectiveYAML reads an Objective from a YAML file.
func LoadObjectiveYAML(filePath string) (*Objective, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var obj Objective
	if err := decoder.Decode(&obj); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return &obj, nil
}

// SaveObjectiveYAML writes obj as YAML.
func SaveObjectiveYAML(filePath string, obj *Objective) error {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filePath, err)
	}
	return writeAtomic(filePath, data)
}

// SaveErrorReportJSON writes a validation report as indented JSON.
func SaveErrorReportJSON(filePath string, report *ErrorReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filePath, err)
	}
	return writeAtomic(filePath, data)
}

func writeAtomic(filePath string, data []byte) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpFile := filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
