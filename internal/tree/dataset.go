package tree

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDataset is returned when a dataset file lists nothing.
var ErrEmptyDataset = errors.New("dataset has no entries")

// datasetFile is the on-disk layout. Either section may be omitted; when
// both are present the explicit paths win over the ones derived from files.
type datasetFile struct {
	Paths map[string][]Entry `yaml:"paths"`
	Files []string           `yaml:"files"`
}

// LoadFile reads a YAML dataset into a mapping.
func LoadFile(path string) (Mapping, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a YAML dataset.
func ParseDataset(data []byte) (Mapping, error) {
	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if len(file.Paths) == 0 && len(file.Files) == 0 {
		return nil, ErrEmptyDataset
	}

	var mapping Mapping
	if len(file.Files) > 0 {
		mapping = Build(file.Files)
	} else {
		mapping = Mapping{}
	}

	for path, entries := range file.Paths {
		for i, entry := range entries {
			if entry.Kind == "" {
				entry.Kind = KindFile
			}
			if !entry.Kind.Valid() {
				return nil, fmt.Errorf("dataset path %q entry %d: unknown type %q", path, i, entry.Kind)
			}
			if entry.ID == "" {
				return nil, fmt.Errorf("dataset path %q entry %d: missing id", path, i)
			}
			if entry.Name == "" {
				entry.Name = entry.ID
			}
			entries[i] = entry
		}
		if entries == nil {
			entries = []Entry{}
		}
		mapping[path] = entries
	}
	return mapping, nil
}
