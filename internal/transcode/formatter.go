package transcode

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatterID names a transform in the formatter registry. Settings refer to
// formatters by id so configuration stays plain data.
type FormatterID string

// Formatter is a pure transform over an already resolved display value.
type Formatter func(string) string

const (
	FormatUppercase   FormatterID = "uppercase"
	FormatLowercase   FormatterID = "lowercase"
	FormatTitle       FormatterID = "title"
	FormatTrim        FormatterID = "trim"
	FormatRedact      FormatterID = "redact"
	FormatMask        FormatterID = "mask"
	FormatCode        FormatterID = "code"
	FormatQuote       FormatterID = "quote"
	FormatStripPrefix FormatterID = "strip_prefix"
	FormatHide        FormatterID = "hide"
)

const redactedText = "[redacted]"

var formatters = map[FormatterID]Formatter{
	FormatUppercase: strings.ToUpper,
	FormatLowercase: strings.ToLower,
	FormatTitle: func(s string) string {
		// cases.Caser is stateful, so one per call.
		return cases.Title(language.Und).String(s)
	},
	FormatTrim: strings.TrimSpace,
	FormatRedact: func(string) string {
		return redactedText
	},
	FormatMask:        mask,
	FormatCode:        func(s string) string { return "```\n" + s + "\n```" },
	FormatQuote:       quote,
	FormatStripPrefix: stripPrefix,
	FormatHide:        func(string) string { return "" },
}

func LookupFormatter(id FormatterID) (Formatter, bool) {
	fn, ok := formatters[id]
	return fn, ok
}

// FormatterIDs lists the registered formatter ids in sorted order.
func FormatterIDs() []string {
	ids := make([]string, 0, len(formatters))
	for id := range formatters {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return ids
}

// mask keeps the last four characters visible.
func mask(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}

func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// stripPrefix drops a leading decoration token such as "📧 " that holds no letters or digits.
func stripPrefix(s string) string {
	head, rest, found := strings.Cut(s, " ")
	if !found || head == "" {
		return s
	}
	for _, r := range head {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return s
		}
	}
	return rest
}
