package transcode

import (
	"fmt"
	"strings"
	"time"

	"form-relay-api/internal/util"
)

const (
	DefaultTitle    = "📝 New Form Submission"
	unknownFormName = "Unknown Form"
)

// Transcode renders fields into display entries, in field order. Hidden fields and
// fields whose final value is blank produce no entry.
func Transcode(fields []FieldRecord, settings DisplaySettings) []DisplayEntry {
	entries := make([]DisplayEntry, 0, len(fields))

	for _, f := range fields {
		if settings.IsHidden(f.Key) {
			continue
		}

		value := resolveValue(f)

		label := f.Label
		if override, ok := settings.LabelOverrides[f.Key]; ok {
			label = override
		}

		if id, ok := settings.Formatters[f.Key]; ok {
			if format, found := LookupFormatter(id); found {
				value = format(value)
			}
		}

		if strings.TrimSpace(value) == "" {
			continue
		}

		entries = append(entries, DisplayEntry{
			Name:   Truncate(label, MaxNameLength),
			Value:  Truncate(value, MaxValueLength),
			Inline: false,
		})
	}

	return entries
}

// BuildEnvelope wraps entries with the form's presentation settings. now is used
// when the submission carries no timestamp.
func BuildEnvelope(sub Submission, settings DisplaySettings, entries []DisplayEntry, now time.Time) Envelope {
	title := settings.Title
	if title == "" {
		title = DefaultTitle
	}

	description := settings.Description
	if description == "" {
		name := sub.FormName
		if strings.TrimSpace(name) == "" {
			name = unknownFormName
		}
		description = "Form: " + name
	}

	color := ColorInfo
	if settings.Color != nil {
		color = *settings.Color
	}

	if entries == nil {
		entries = []DisplayEntry{}
	}

	return Envelope{
		Title:       Truncate(title, MaxTitleLength),
		Description: Truncate(description, MaxDescriptionLength),
		Color:       color,
		Entries:     entries,
		FooterText:  fmt.Sprintf("Response ID: %s | Submission ID: %s", sub.ResponseID, sub.SubmissionID),
		Timestamp:   util.NormalizeTimestamp(sub.CreatedAt, now),
	}
}
