// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bot

import "encoding/json"

// Button re-invokes resolution for the same acronym in another language.
type Button struct {
	Text     string
	ActionID string
	Value    string
}

// Message is a reply: the rendered definition and, when another language
// can answer, a translate button.
type Message struct {
	Text   string
	Button Button
}

type textObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type buttonElement struct {
	Type     string     `json:"type"`
	Text     textObject `json:"text"`
	ActionID string     `json:"action_id"`
	Value    string     `json:"value"`
}

type sectionBlock struct {
	Type      string         `json:"type"`
	Text      textObject     `json:"text"`
	Accessory *buttonElement `json:"accessory,omitempty"`
}

// MarshalJSON encodes the message as a section block with a button
// accessory, the layout chat platforms accept for interactive replies.
func (m Message) MarshalJSON() ([]byte, error) {
	section := sectionBlock{
		Type: "section",
		Text: textObject{Type: "mrkdwn", Text: m.Text},
	}
	if m.Button.ActionID != "" {
		section.Accessory = &buttonElement{
			Type:     "button",
			Text:     textObject{Type: "plain_text", Text: m.Button.Text},
			ActionID: m.Button.ActionID,
			Value:    m.Button.Value,
		}
	}
	return json.Marshal(struct {
		Text   string         `json:"text"`
		Blocks []sectionBlock `json:"blocks"`
	}{
		Text:   m.Text,
		Blocks: []sectionBlock{section},
	})
}
