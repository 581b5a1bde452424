// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/glossary-engine/pkg/types"
)

// Load reads the glossary described by cfg. The format is checked before
// the file is opened, so an unsupported format never touches the disk.
// Every failure is a *LoadError wrapping ErrFileNotFound,
// ErrMalformedInput or ErrUnsupportedFormat.
func Load(cfg types.GlossaryConfig) (*Glossary, error) {
	fileType := types.FileType(strings.ToLower(string(cfg.FileType)))
	if fileType != types.FileTypeJSON && fileType != types.FileTypeCSV {
		return nil, &LoadError{
			Path:     cfg.Path,
			FileType: cfg.FileType,
			Err:      fmt.Errorf("%w: %q (use json or csv)", ErrUnsupportedFormat, cfg.FileType),
		}
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, &LoadError{
			Path:     cfg.Path,
			FileType: fileType,
			Err:      fmt.Errorf("%w: %w", ErrFileNotFound, err),
		}
	}

	g, err := Parse(data, fileType, cfg.Preprocess)
	if err != nil {
		return nil, &LoadError{Path: cfg.Path, FileType: fileType, Err: err}
	}
	return g, nil
}

// Parse builds a Glossary from in-memory data. An empty or
// whitespace-only document yields an empty Glossary.
func Parse(data []byte, fileType types.FileType, preAggregated bool) (*Glossary, error) {
	switch fileType {
	case types.FileTypeJSON:
		return parseJSON(data, preAggregated)
	case types.FileTypeCSV:
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileType)
	}
}
