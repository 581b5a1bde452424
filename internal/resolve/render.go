// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/glossary-engine/pkg/types"
)

// DefinitionSeparator joins multiple definitions of one acronym.
const DefinitionSeparator = " | "

var phrases = map[types.Language]types.LanguagePhrases{
	types.English: {
		NotFound:         "Yet Another Unknown Acronym (YAUA)",
		SuggestionPrompt: "Did you mean",
		SimilarPrompt:    "Similar acronyms",
	},
	types.Spanish: {
		NotFound:         "Otro Acrónimo Desconocido (OAD)",
		SuggestionPrompt: "¿Quisiste decir",
		SimilarPrompt:    "Acrónimos similares",
	},
}

// Phrases returns the phrases for lang, or the English phrases when lang
// is not supported.
func Phrases(lang types.Language) types.LanguagePhrases {
	if p, ok := phrases[lang]; ok {
		return p
	}
	return phrases[types.English]
}

// Render formats a resolution as the reply text:
//
//	NASA => National Aeronautics and Space Administration | North American Saxophone Alliance
//	NASAA => Yet Another Unknown Acronym (YAUA)
//	Did you mean: nasa?
func Render(res types.Resolution, lang types.Language) string {
	p := Phrases(lang)

	var b strings.Builder
	if res.Found {
		fmt.Fprintf(&b, "%s => %s", res.Query, strings.Join(res.Definitions, DefinitionSeparator))
	} else {
		fmt.Fprintf(&b, "%s => %s", res.Query, p.NotFound)
	}

	if len(res.Suggestions) == 0 {
		return b.String()
	}
	b.WriteByte('\n')
	if res.Mode == types.ModeSimilarity {
		b.WriteString(RenderSimilar(res.Suggestions, lang))
	} else {
		fmt.Fprintf(&b, "%s: %s?", p.SuggestionPrompt, displayList(res.Suggestions))
	}
	return b.String()
}

// RenderSimilar formats a similarity-search listing.
func RenderSimilar(keys []string, lang types.Language) string {
	return fmt.Sprintf("%s: %s", Phrases(lang).SimilarPrompt, displayList(keys))
}

func displayList(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = DisplayKey(k)
	}
	return strings.Join(out, ", ")
}

// DisplayKey title-cases multi-word keys ("nasa ames" becomes "Nasa Ames")
// and leaves single-word keys as stored.
func DisplayKey(key string) string {
	if len(strings.Fields(key)) < 2 {
		return key
	}
	return cases.Title(language.Und).String(key)
}
