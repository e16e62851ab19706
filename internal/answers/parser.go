package answers

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads an answers file, validates it against the schema, and returns
// the record. Schema violations are returned as *InvalidError.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating answers file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: path, Issues: result.Issues}
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	return &rec, nil
}

// Save writes rec to path as YAML.
func Save(path string, rec *Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing answers file %s: %w", path, err)
	}
	return nil
}
