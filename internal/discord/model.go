package discord

import "form-relay-api/internal/transcode"

// Message is the JSON body posted to a Discord webhook.
type Message struct {
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds"`
}

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []EmbedField `json:"fields"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

// Result is the outcome of one delivery attempt.
type Result struct {
	StatusCode int
	Body       string
}

// OK reports a 2xx response.
func (r *Result) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// NewMessage wraps an envelope as the single embed of a message.
func NewMessage(username string, env transcode.Envelope) Message {
	fields := make([]EmbedField, 0, len(env.Entries))
	for _, e := range env.Entries {
		fields = append(fields, EmbedField{Name: e.Name, Value: e.Value, Inline: e.Inline})
	}

	embed := Embed{
		Title:       env.Title,
		Description: env.Description,
		Color:       env.Color,
		Fields:      fields,
		Timestamp:   env.Timestamp,
	}
	if env.FooterText != "" {
		embed.Footer = &EmbedFooter{Text: env.FooterText}
	}

	return Message{Username: username, Embeds: []Embed{embed}}
}
