// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"errors"
	"fmt"

	"github.com/pdiddy/glossary-engine/pkg/types"
)

// Load failures. Callers test for them with errors.Is.
var (
	ErrFileNotFound      = errors.New("glossary file not found")
	ErrMalformedInput    = errors.New("malformed glossary input")
	ErrUnsupportedFormat = errors.New("unsupported glossary format")
)

// LoadError records which source failed to load and why.
type LoadError struct {
	Path     string
	FileType types.FileType
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading glossary %s (%s): %v", e.Path, e.FileType, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
