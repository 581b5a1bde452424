// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity scores how alike two strings are using the
// matching-blocks ratio: twice the number of characters in the longest
// common contiguous blocks, divided by the combined length. The score is
// in [0, 1] and 1 means identical.
package similarity

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Matcher scores many candidates against one fixed target. The target's
// character index is built once.
type Matcher struct {
	sm *difflib.SequenceMatcher
}

// NewMatcher returns a Matcher for target.
func NewMatcher(target string) *Matcher {
	return &Matcher{sm: difflib.NewMatcher(nil, chars(target))}
}

// Ratio scores candidate against the target.
func (m *Matcher) Ratio(candidate string) float64 {
	m.sm.SetSeq1(chars(candidate))
	return m.sm.Ratio()
}

// Ratio scores a against b.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

// Above returns the candidates whose score against target exceeds
// threshold, in candidate order.
func Above(target string, candidates []string, threshold float64) []string {
	m := NewMatcher(target)
	var out []string
	for _, c := range candidates {
		if m.Ratio(c) > threshold {
			out = append(out, c)
		}
	}
	return out
}

// chars splits s into one element per rune so the line-oriented matcher
// compares characters.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
