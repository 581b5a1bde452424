// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects which glossary and which phrases answer a query.
type Language string

const (
	English Language = "english"
	Spanish Language = "spanish"
)

// Languages lists the supported languages in display order.
var Languages = []Language{English, Spanish}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == English || l == Spanish
}

// Other returns the language a translate action switches to.
func (l Language) Other() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

// ParseLanguage maps a user-supplied selector to a Language. It accepts
// the language names ("english", "Spanish", "español") and BCP 47 tags
// ("en", "es-MX"). Anything unrecognized is English.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "english", "inglés", "ingles":
		return English
	case "spanish", "español", "espanol":
		return Spanish
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	if base, _ := tag.Base(); base == spanishBase {
		return Spanish
	}
	return English
}

var spanishBase, _ = language.Spanish.Base()
