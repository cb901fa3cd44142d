package util

import (
	"strings"
	"time"
)

// ISOMillis is the timestamp layout embeds expect.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// NormalizeTimestamp returns raw as a UTC ISO-8601 timestamp. Blank input falls back
// to now; input that does not parse is passed through untouched.
func NormalizeTimestamp(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC().Format(ISOMillis)
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(ISOMillis)
		}
	}

	return raw
}
