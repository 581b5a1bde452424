// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResolveMode selects how suggestions are computed.
type ResolveMode string

const (
	// ModeFallback suggests near matches only when the exact lookup
	// misses, using DefaultSuggestionThreshold.
	ModeFallback ResolveMode = "fallback"

	// ModeSimilarity reports every key above a caller-supplied threshold,
	// whether or not the exact lookup hit.
	ModeSimilarity ResolveMode = "similarity"
)

// Resolution is the outcome of resolving one query against a glossary.
// A miss is a normal outcome: Found is false and Suggestions holds the
// near-matching keys, possibly none.
type Resolution struct {
	// Query is the input as the caller supplied it, trimmed.
	Query string `json:"query" yaml:"query"`

	// Mode records which suggestion rule produced Suggestions.
	Mode ResolveMode `json:"mode" yaml:"mode"`

	// Found reports an exact, case-insensitive hit.
	Found bool `json:"found" yaml:"found"`

	// Definitions holds every definition of the matched key in load order.
	Definitions []string `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	// Suggestions holds glossary keys similar to the query, in glossary
	// order. Stored keys, not display text.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// LanguagePhrases holds the user-facing text for one language.
type LanguagePhrases struct {
	// NotFound replaces the definition when the acronym is unknown.
	NotFound string

	// SuggestionPrompt introduces "did you mean" suggestions.
	SuggestionPrompt string

	// SimilarPrompt introduces the similarity-search listing.
	SimilarPrompt string
}
