package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a home spec from a YAML file.
func Load(path string) (*Specification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var s Specification
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &s, nil
}

// LoadProject loads a home spec from a project directory.
// It looks for home.yaml in the given directory.
func LoadProject(projectDir string) (*Specification, error) {
	specPath := filepath.Join(projectDir, "home.yaml")
	return Load(specPath)
}
