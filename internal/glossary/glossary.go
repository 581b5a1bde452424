// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package glossary loads acronym glossaries from JSON or CSV files into an
// ordered, case-folded mapping from acronym to its definitions.
package glossary

import (
	"iter"
	"slices"
	"strings"
)

// Glossary maps case-folded acronyms to their definitions. Keys keep the
// order in which they first appeared in the source; definitions keep the
// order in which they were read. A Glossary is immutable once built and
// safe for concurrent reads.
type Glossary struct {
	keys []string
	defs map[string][]string
}

// NormalizeKey case-folds an acronym for storage and lookup.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup returns the definitions for acronym, matched case-insensitively.
func (g *Glossary) Lookup(acronym string) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	defs, ok := g.defs[NormalizeKey(acronym)]
	if !ok {
		return nil, false
	}
	return slices.Clone(defs), true
}

// Keys returns every acronym in first-seen order.
func (g *Glossary) Keys() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.keys)
}

// Len returns the number of distinct acronyms.
func (g *Glossary) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// All iterates acronyms and their definitions in first-seen order.
func (g *Glossary) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if g == nil {
			return
		}
		for _, k := range g.keys {
			if !yield(k, slices.Clone(g.defs[k])) {
				return
			}
		}
	}
}

// Builder accumulates definitions and produces a Glossary. Repeated
// acronyms append; identical definitions are kept, not deduplicated.
type Builder struct {
	keys []string
	defs map[string][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{defs: make(map[string][]string)}
}

// Add appends definition to acronym. Blank acronyms are ignored.
func (b *Builder) Add(acronym, definition string) {
	key := NormalizeKey(acronym)
	if key == "" {
		return
	}
	if _, seen := b.defs[key]; !seen {
		b.keys = append(b.keys, key)
	}
	b.defs[key] = append(b.defs[key], definition)
}

// Build returns the accumulated Glossary and resets the Builder.
func (b *Builder) Build() *Glossary {
	g := &Glossary{keys: b.keys, defs: b.defs}
	if g.defs == nil {
		g.defs = make(map[string][]string)
	}
	b.keys = nil
	b.defs = make(map[string][]string)
	return g
}
