package plan

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// FormatVersion is the current plan file format version
const FormatVersion = 1

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load reads and validates a plan file
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}

	if p.Version == 0 {
		p.Version = FormatVersion
	}
	if p.Version > FormatVersion {
		return nil, fmt.Errorf("plan file %s uses unsupported format version %d", path, p.Version)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan file %s: %w", path, err)
	}

	return &p, nil
}

// Save writes the plan to a file, creating or replacing it
func Save(p *Plan, path string) error {
	p.Version = FormatVersion

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// Validate checks the structural invariants of the plan
func (p *Plan) Validate() error {
	if p.Room.Width <= 0 || p.Room.Height <= 0 {
		return fmt.Errorf("room dimensions must be positive, got %gx%g", p.Room.Width, p.Room.Height)
	}

	seen := make(map[string]bool, len(p.Items))
	for _, it := range p.Items {
		if it.ID == "" {
			return fmt.Errorf("item %q has no ID", it.Label)
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate item ID %s", it.ID)
		}
		seen[it.ID] = true

		if !it.Kind.Valid() {
			return fmt.Errorf("item %s has unknown kind %q", it.ID, it.Kind)
		}
		if it.Width <= 0 || it.Height <= 0 {
			return fmt.Errorf("item %s has non-positive size %gx%g", it.ID, it.Width, it.Height)
		}
		if int(it.Rotation)%90 != 0 {
			return fmt.Errorf("item %s has rotation %d, must be a multiple of 90", it.ID, it.Rotation)
		}
	}

	for _, m := range p.Measurements {
		if m.ID == "" {
			return fmt.Errorf("measurement without ID")
		}
	}

	return nil
}
