package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CuratedModel is an operator-pinned catalog entry merged into GET /models
// in addition to the fixed OpenAI descriptors and the OpenRouter free list.
type CuratedModel struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type catalogFileDocument struct {
	Models []CuratedModel `yaml:"models"`
}

// LoadModelCatalogFile parses the yaml file at the provided path.
func LoadModelCatalogFile(path string) ([]CuratedModel, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model catalog path is empty")
	}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read model catalog %q: %w", cleanPath, err)
	}

	var doc catalogFileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model catalog %q: %w", cleanPath, err)
	}

	curated := make([]CuratedModel, 0, len(doc.Models))
	for _, entry := range doc.Models {
		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" {
			continue
		}
		if strings.TrimSpace(entry.Name) == "" {
			entry.Name = entry.ID
		}
		curated = append(curated, entry)
	}
	return curated, nil
}
