// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup is the in-process query interface chat handlers call:
// it picks the glossary for the requested language, resolves the query,
// renders the reply and caches it per (language, query).
package lookup

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/glossary-engine/internal/glossary"
	"github.com/pdiddy/glossary-engine/internal/resolve"
	"github.com/pdiddy/glossary-engine/pkg/types"
)

// Resolver answers queries against one language's glossary.
// *resolve.Resolver implements it.
type Resolver interface {
	Resolve(query string) types.Resolution
	Similar(query string, threshold float64) types.Resolution
	Glossary() *glossary.Glossary
}

// Service resolves queries for every configured language. It owns the
// reply cache and is safe for concurrent use.
type Service struct {
	resolvers   map[types.Language]Resolver
	defaultLang types.Language
	similarity  float64
	cache       *Cache
	log         zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards output.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithSimilarity enables similarity-search mode when threshold is in
// [0, 1]. Any other value keeps the not-found fallback.
func WithSimilarity(threshold float64) Option {
	return func(s *Service) { s.similarity = threshold }
}

// WithDefaultLanguage sets the language used when a requested language
// has no glossary.
func WithDefaultLanguage(lang types.Language) Option {
	return func(s *Service) { s.defaultLang = lang }
}

// WithCache shares an existing cache.
func WithCache(c *Cache) Option {
	return func(s *Service) { s.cache = c }
}

// New returns a Service over the given per-language resolvers.
func New(resolvers map[types.Language]Resolver, opts ...Option) (*Service, error) {
	if len(resolvers) == 0 {
		return nil, fmt.Errorf("lookup: no glossary configured")
	}
	s := &Service{
		resolvers:   resolvers,
		defaultLang: types.English,
		similarity:  types.DisabledSimilarity,
		cache:       NewCache(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	langs := s.Languages()
	if len(langs) == 0 {
		return nil, fmt.Errorf("lookup: no glossary for a supported language")
	}
	if _, ok := s.resolvers[s.defaultLang]; !ok {
		s.defaultLang = langs[0]
	}
	return s, nil
}

// Open loads every glossary named in cfg and returns a Service over them.
// A glossary that fails to load aborts startup with its *glossary.LoadError.
func Open(cfg types.BotConfig, log zerolog.Logger) (*Service, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolvers := make(map[types.Language]Resolver, len(cfg.Languages))
	for _, lang := range types.Languages {
		gcfg, ok := cfg.Languages[lang]
		if !ok {
			continue
		}
		g, err := glossary.Load(gcfg)
		if err != nil {
			return nil, err
		}
		log.Info().
			Str("language", string(lang)).
			Str("path", gcfg.Path).
			Str("file_type", string(gcfg.FileType)).
			Int("acronyms", g.Len()).
			Msg("glossary loaded")
		resolvers[lang] = resolve.New(g)
	}

	return New(resolvers,
		WithLogger(log),
		WithSimilarity(cfg.Similarity),
		WithDefaultLanguage(cfg.DefaultLanguage),
	)
}

// Languages returns the languages with a glossary, in display order.
func (s *Service) Languages() []types.Language {
	var out []types.Language
	for _, lang := range types.Languages {
		if _, ok := s.resolvers[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// Glossary returns the glossary answering lang.
func (s *Service) Glossary(lang string) *glossary.Glossary {
	return s.resolvers[s.language(lang)].Glossary()
}

// CacheStats reports reply cache activity.
func (s *Service) CacheStats() CacheStats {
	return s.cache.Stats()
}

// ResolveQuery returns the rendered reply for text in the requested
// language. Replies are cached per (language, trimmed query); a repeated
// query returns the stored reply without resolving again. It never fails:
// an unknown acronym yields the not-found phrase and any suggestions.
func (s *Service) ResolveQuery(text, lang string) string {
	l := s.language(lang)
	query := strings.TrimSpace(text)

	reply, hit := s.cache.GetOrCompute(l, query, func() string {
		return resolve.Render(s.resolve(query, l), l)
	})
	s.log.Debug().
		Str("language", string(l)).
		Str("query", query).
		Bool("cache_hit", hit).
		Msg("resolved query")
	return reply
}

// ResolveBatch resolves each query independently, in order, and joins
// the replies with newlines. With no queries it lists every acronym in
// the glossary, sorted.
func (s *Service) ResolveBatch(queries []string, lang string) string {
	if len(queries) == 0 {
		queries = s.Glossary(lang).Keys()
		slices.Sort(queries)
	}
	replies := make([]string, len(queries))
	for i, q := range queries {
		replies[i] = s.ResolveQuery(q, lang)
	}
	return strings.Join(replies, "\n")
}

// Resolve returns the structured, uncached resolution of text.
func (s *Service) Resolve(text, lang string) types.Resolution {
	l := s.language(lang)
	return s.resolve(strings.TrimSpace(text), l)
}

// Similar runs a similarity search with an explicit threshold, bypassing
// the cache and the configured mode.
func (s *Service) Similar(text, lang string, threshold float64) types.Resolution {
	l := s.language(lang)
	return s.resolvers[l].Similar(strings.TrimSpace(text), threshold)
}

func (s *Service) resolve(query string, lang types.Language) types.Resolution {
	r := s.resolvers[lang]
	if s.similarity >= 0 && s.similarity <= 1 {
		return r.Similar(query, s.similarity)
	}
	return r.Resolve(query)
}

// Language returns the language that answers selector: the parsed
// language when it has a glossary, otherwise the default language.
func (s *Service) Language(selector string) types.Language {
	lang, _ := s.pick(selector)
	return lang
}

func (s *Service) pick(selector string) (types.Language, bool) {
	lang := types.ParseLanguage(selector)
	if strings.TrimSpace(selector) == "" {
		lang = s.defaultLang
	}
	if _, ok := s.resolvers[lang]; ok {
		return lang, false
	}
	return s.defaultLang, true
}

// language is Language with a warning when the default stands in.
func (s *Service) language(selector string) types.Language {
	lang, fellBack := s.pick(selector)
	if !fellBack {
		return lang
	}
	s.log.Warn().
		Str("requested", selector).
		Str("using", string(s.defaultLang)).
		Msg("no glossary for language")
	return s.defaultLang
}
