// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve answers acronym queries against a loaded glossary:
// case-insensitive exact lookup, with near-match suggestions computed by
// string similarity.
package resolve

import (
	"strings"

	"github.com/pdiddy/glossary-engine/internal/glossary"
	"github.com/pdiddy/glossary-engine/internal/similarity"
	"github.com/pdiddy/glossary-engine/pkg/types"
)

// Resolver resolves queries against one immutable glossary. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	glossary  *glossary.Glossary
	threshold float64
}

// New returns a Resolver over g that suggests near matches scoring above
// types.DefaultSuggestionThreshold.
func New(g *glossary.Glossary) *Resolver {
	return &Resolver{glossary: g, threshold: types.DefaultSuggestionThreshold}
}

// Glossary returns the glossary the Resolver reads.
func (r *Resolver) Glossary() *glossary.Glossary {
	return r.glossary
}

// Resolve looks query up case-insensitively. On a hit it returns the
// definitions in load order. On a miss it returns the keys whose
// similarity to the query exceeds the fixed suggestion threshold.
func (r *Resolver) Resolve(query string) types.Resolution {
	query = strings.TrimSpace(query)
	res := types.Resolution{Query: query, Mode: types.ModeFallback}

	if defs, ok := r.glossary.Lookup(query); ok {
		res.Found = true
		res.Definitions = defs
		return res
	}
	res.Suggestions = r.similarKeys(query, r.threshold)
	return res
}

// Similar performs the exact lookup and, independently of its outcome,
// lists every key whose similarity to the query exceeds threshold.
func (r *Resolver) Similar(query string, threshold float64) types.Resolution {
	query = strings.TrimSpace(query)
	res := types.Resolution{Query: query, Mode: types.ModeSimilarity}

	if defs, ok := r.glossary.Lookup(query); ok {
		res.Found = true
		res.Definitions = defs
	}
	res.Suggestions = r.similarKeys(query, threshold)
	return res
}

func (r *Resolver) similarKeys(query string, threshold float64) []string {
	key := glossary.NormalizeKey(query)
	if key == "" {
		return nil
	}
	return similarity.Above(key, r.glossary.Keys(), threshold)
}
