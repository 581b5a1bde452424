// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bot turns chat slash commands and button actions into glossary
// replies. It is platform neutral: the embedding chat adapter acknowledges
// requests, passes the command or action here and posts the returned
// Message in its own format.
package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/glossary-engine/pkg/types"
)

// Slash commands and action IDs understood by Handler.
const (
	CommandGlossary = "/glossary"
	CommandGlosario = "/glosario"

	ActionSpanish = "get_spanish_translation"
	ActionEnglish = "get_english_translation"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownAction  = errors.New("unknown action")
)

// Querier resolves a query to a rendered reply and reports which
// language answers a selector. *lookup.Service implements it.
type Querier interface {
	ResolveQuery(text, lang string) string
	Language(selector string) types.Language
}

// Command is a slash command invocation.
type Command struct {
	Name string
	Text string
}

// Action is a button press. Value carries the acronym the button was
// attached to.
type Action struct {
	ActionID string
	Value    string
}

// route says which language answers a request and which translate
// button goes with the reply.
type route struct {
	lang       types.Language
	buttonText string
	nextAction string
}

var commandRoutes = map[string]route{
	CommandGlossary: {types.English, "Translate to Spanish :es:", ActionSpanish},
	CommandGlosario: {types.Spanish, "Traducción en Inglés :us:", ActionEnglish},
}

var actionRoutes = map[string]route{
	ActionSpanish: {types.Spanish, "Translate to English :us:", ActionEnglish},
	ActionEnglish: {types.English, "Traducción en Español :es:", ActionSpanish},
}

// Handler answers commands and actions. It holds no state of its own;
// caching lives in the Querier.
type Handler struct {
	q   Querier
	log zerolog.Logger
}

// NewHandler returns a Handler answering through q.
func NewHandler(q Querier, log zerolog.Logger) *Handler {
	return &Handler{q: q, log: log}
}

// HandleCommand answers a slash command.
func (h *Handler) HandleCommand(cmd Command) (Message, error) {
	r, ok := commandRoutes[cmd.Name]
	if !ok {
		return Message{}, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Name)
	}
	h.log.Debug().Str("command", cmd.Name).Str("text", cmd.Text).Msg("command received")
	return h.reply(r, cmd.Text), nil
}

// HandleAction answers a translate button press.
func (h *Handler) HandleAction(a Action) (Message, error) {
	r, ok := actionRoutes[a.ActionID]
	if !ok {
		return Message{}, fmt.Errorf("%w: %s", ErrUnknownAction, a.ActionID)
	}
	h.log.Debug().Str("action", a.ActionID).Str("value", a.Value).Msg("action received")
	return h.reply(r, a.Value), nil
}

// reply resolves acronym in the route's language. When that language has
// no glossary and another answers instead, the reply carries no translate
// button.
func (h *Handler) reply(r route, acronym string) Message {
	acronym = strings.TrimSpace(acronym)
	msg := Message{Text: h.q.ResolveQuery(acronym, string(r.lang))}

	if answered := h.q.Language(string(r.lang)); answered != r.lang {
		h.log.Debug().
			Str("requested", string(r.lang)).
			Str("answered", string(answered)).
			Msg("translate button omitted")
		return msg
	}
	msg.Button = Button{
		Text:     r.buttonText,
		ActionID: r.nextAction,
		Value:    acronym,
	}
	return msg
}
