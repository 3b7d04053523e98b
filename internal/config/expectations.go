package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/trebuchet-org/tokencheck/internal/domain"
	"gopkg.in/yaml.v3"
)

type expectationsFile struct {
	Checks []domain.ExpectedMetadata `yaml:"checks"`
}

// LoadExpectations reads a YAML expectations file:
//
//	checks:
//	  - accessor: name
//	    expected: BobCoin
func LoadExpectations(path string) ([]domain.ExpectedMetadata, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read expectations file: %w", err)
	}

	var file expectationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse expectations file %s: %w", path, err)
	}

	if len(file.Checks) == 0 {
		return nil, fmt.Errorf("expectations file %s has no checks", path)
	}
	for i, check := range file.Checks {
		if strings.TrimSpace(check.Accessor) == "" {
			return nil, fmt.Errorf("expectations file %s: check %d has no accessor", path, i)
		}
	}

	return file.Checks, nil
}
