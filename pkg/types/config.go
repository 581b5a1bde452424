// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// FileType identifies the on-disk format of a glossary source.
type FileType string

const (
	FileTypeJSON FileType = "json"
	FileTypeCSV  FileType = "csv"
)

// DisabledSimilarity marks the similarity-search mode as off. Any value
// outside [0, 1] disables it; -1 is the conventional spelling.
const DisabledSimilarity = -1.0

// DefaultSuggestionThreshold is the fixed threshold used for "did you mean"
// suggestions when an exact lookup misses.
const DefaultSuggestionThreshold = 0.7

// GlossaryConfig describes one glossary source file.
type GlossaryConfig struct {
	// Path is the location of the glossary file.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// FileType selects the parser: json or csv.
	FileType FileType `json:"file_type" yaml:"file_type" mapstructure:"file_type"`

	// Preprocess marks a JSON source as pre-aggregated: a flat object
	// mapping each acronym to one definition or a list of definitions.
	// Ignored for CSV.
	Preprocess bool `json:"preprocess,omitempty" yaml:"preprocess,omitempty" mapstructure:"preprocess"`
}

// BotConfig holds everything the lookup engine needs at startup.
type BotConfig struct {
	// Similarity is the explicit similarity-search threshold. Values in
	// [0, 1] enable similarity-search mode; DisabledSimilarity turns it off.
	Similarity float64 `json:"similarity" yaml:"similarity" mapstructure:"similarity"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" mapstructure:"log_level"`

	// DefaultLanguage is used when a query carries no language selector.
	DefaultLanguage Language `json:"default_language,omitempty" yaml:"default_language,omitempty" mapstructure:"default_language"`

	// Languages maps a language to the glossary that answers it.
	Languages map[Language]GlossaryConfig `json:"languages" yaml:"languages" mapstructure:"languages"`

	// GlossaryConfig is the single-glossary shorthand: when Languages is
	// empty and Path is set, the glossary is bound to English.
	GlossaryConfig `yaml:",inline" mapstructure:",squash"`
}

// SimilarityEnabled reports whether similarity-search mode is on.
func (c BotConfig) SimilarityEnabled() bool {
	return c.Similarity >= 0 && c.Similarity <= 1
}

// Normalize fills defaults and folds the single-glossary shorthand into
// Languages.
func (c *BotConfig) Normalize() {
	if len(c.Languages) == 0 && c.Path != "" {
		c.Languages = map[Language]GlossaryConfig{English: c.GlossaryConfig}
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = English
	} else {
		c.DefaultLanguage = ParseLanguage(string(c.DefaultLanguage))
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that the config can produce a working resolver.
func (c BotConfig) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("config: no glossary configured")
	}
	for lang, g := range c.Languages {
		if !lang.Valid() {
			return fmt.Errorf("config: unknown language %q", lang)
		}
		if g.Path == "" {
			return fmt.Errorf("config: %s glossary has no path", lang)
		}
	}
	if c.Similarity < DisabledSimilarity || c.Similarity > 1 {
		return fmt.Errorf("config: similarity %v outside [-1, 1]", c.Similarity)
	}
	return nil
}

// DefaultBotConfig returns a config with similarity search disabled and
// no glossaries bound.
func DefaultBotConfig() BotConfig {
	return BotConfig{
		Similarity:      DisabledSimilarity,
		LogLevel:        "info",
		DefaultLanguage: English,
	}
}

// LoadBotConfig reads a YAML config file from path, applies defaults and
// validates it.
func LoadBotConfig(path string) (BotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BotConfig{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultBotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BotConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return BotConfig{}, err
	}
	return cfg, nil
}
