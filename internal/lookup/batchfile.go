// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/glossary-engine/pkg/types"
)

// BatchFile is a saved list of queries to resolve together.
type BatchFile struct {
	Language string   `yaml:"language,omitempty"`
	Queries  []string `yaml:"queries"`
}

// ResultsFile is the on-disk record of a resolved batch.
type ResultsFile struct {
	Language string             `yaml:"language"`
	Results  []types.Resolution `yaml:"results"`
	Summary  ResultsSummary     `yaml:"summary"`
}

// ResultsSummary counts hits and misses in a resolved batch.
type ResultsSummary struct {
	Total     int       `yaml:"total"`
	Found     int       `yaml:"found"`
	NotFound  int       `yaml:"not_found"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReadBatchFile loads a batch of queries from a YAML file.
func ReadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return &bf, nil
}

// WriteResultsFile resolves every query in order and saves the structured
// results to path as YAML.
func (s *Service) WriteResultsFile(path string, queries []string, lang string) error {
	rf := ResultsFile{
		Language: string(s.language(lang)),
		Results:  make([]types.Resolution, len(queries)),
	}
	for i, q := range queries {
		res := s.Resolve(q, lang)
		rf.Results[i] = res
		if res.Found {
			rf.Summary.Found++
		} else {
			rf.Summary.NotFound++
		}
	}
	rf.Summary.Total = len(queries)
	rf.Summary.Timestamp = time.Now()

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
