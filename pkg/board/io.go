package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stellargrid/tentai-show/pkg/geom"
)

// record is the serializable form of a Board: dimensions plus the flat list
// of drawn walls.
type record struct {
	Width  int                 `json:"width" yaml:"width"`
	Height int                 `json:"height" yaml:"height"`
	Walls  []geom.BorderRecord `json:"walls" yaml:"walls"`
}

func (b *Board) toRecord() record {
	r := record{Width: b.width, Height: b.height}
	for _, border := range b.Borders() {
		r.Walls = append(r.Walls, border.Record())
	}
	return r
}

func fromRecord(r record) *Board {
	b := New(r.Width, r.Height)
	for _, wr := range r.Walls {
		b.AddWall(wr.Border())
	}
	return b
}

// LoadJSON reads a Board from a JSON file, rejecting unknown fields.
func LoadJSON(filePath string) (*Board, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	var r record
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return fromRecord(r), nil
}

// SaveJSON writes a Board as indented JSON, via an atomic rename.
func SaveJSON(filePath string, b *Board) error {
	data, err := json.MarshalIndent(b.toRecord(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filePath, err)
	}
	return writeAtomic(filePath, data)
}

// LoadYAML reads a Board from a YAML file.
func LoadYAML(filePath string) (*Board, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var r record
	if err := decoder.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return fromRecord(r), nil
}

// SaveYAML writes a Board as YAML.
func SaveYAML(filePath string, b *Board) error {
	data, err := yaml.Marshal(b.toRecord())
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
