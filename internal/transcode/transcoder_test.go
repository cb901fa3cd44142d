package transcode

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func field(key, label, typ, value string, opts ...Option) FieldRecord {
	return FieldRecord{Key: key, Label: label, Type: typ, Value: json.RawMessage(value), Options: opts}
}

func noSettings() DisplaySettings {
	return Catalog{}.For("")
}

func singleValue(t *testing.T, f FieldRecord) string {
	t.Helper()
	entries := Transcode([]FieldRecord{f}, noSettings())
	require.Len(t, entries, 1)
	return entries[0].Value
}

var colorOptions = []Option{{ID: "opt1", Text: "Red"}, {ID: "opt2", Text: "Blue"}, {ID: "opt3", Text: "Green"}}

func TestTranscode_TextField(t *testing.T) {
	entries := Transcode([]FieldRecord{field("q1", "Name", "INPUT_TEXT", `"Ada"`)}, noSettings())

	require.Len(t, entries, 1)
	assert.Equal(t, DisplayEntry{Name: "Name", Value: "Ada", Inline: false}, entries[0])
}

func TestTranscode_PreservesFieldOrder(t *testing.T) {
	entries := Transcode([]FieldRecord{
		field("b", "Second", "INPUT_TEXT", `"2"`),
		field("a", "First", "INPUT_TEXT", `"1"`),
		field("c", "Third", "INPUT_NUMBER", `3`),
	}, noSettings())

	require.Len(t, entries, 3)
	assert.Equal(t, "Second", entries[0].Name)
	assert.Equal(t, "First", entries[1].Name)
	assert.Equal(t, "Third", entries[2].Name)
	assert.Equal(t, "3", entries[2].Value)
}

func TestTranscode_ChoiceScalar(t *testing.T) {
	got := singleValue(t, field("q", "Colour", "MULTIPLE_CHOICE", `"opt2"`, colorOptions...))
	assert.Equal(t, "Blue", got)
}

func TestTranscode_ChoiceList_KeepsMatchesOnly(t *testing.T) {
	got := singleValue(t, field("q", "Colours", "MULTI_SELECT", `["opt1","nope","opt3"]`, colorOptions...))
	assert.Equal(t, "Red, Green", got)
}

func TestTranscode_ChoiceNoMatch_FallsBackToRaw(t *testing.T) {
	for _, typ := range []string{"MULTIPLE_CHOICE", "DROPDOWN", "MULTI_SELECT"} {
		t.Run(typ, func(t *testing.T) {
			assert.Equal(t, "zzz", singleValue(t, field("q", "Q", typ, `"zzz"`, colorOptions...)))
			assert.Equal(t, "x, y", singleValue(t, field("q", "Q", typ, `["x","y"]`, colorOptions...)))
			assert.Equal(t, "7", singleValue(t, field("q", "Q", typ, `7`)))
		})
	}
}

func TestTranscode_Checkboxes(t *testing.T) {
	assert.Equal(t, "✅ Yes", singleValue(t, field("q", "Agree", "CHECKBOXES", `true`)))
	assert.Equal(t, "❌ No", singleValue(t, field("q", "Agree", "CHECKBOXES", `false`)))
	assert.Equal(t, "Red, Blue", singleValue(t, field("q", "Pick", "CHECKBOXES", `["opt1","opt2"]`, colorOptions...)))
}

func TestTranscode_Ranking(t *testing.T) {
	got := singleValue(t, field("q", "Rank", "RANKING", `["opt3","opt1","ghost"]`, colorOptions...))
	assert.Equal(t, "1. Green\n2. Red\n3. ghost", got)
}

func TestTranscode_Matrix_KeepsPayloadRowOrder(t *testing.T) {
	f := FieldRecord{
		Key:     "m",
		Label:   "Matrix",
		Type:    "MATRIX",
		Value:   json.RawMessage(`{"r2":["c1","c2"],"r1":["c2","missing"],"r9":["c1"]}`),
		Rows:    []Option{{ID: "r1", Text: "Speed"}, {ID: "r2", Text: "Quality"}},
		Columns: []Option{{ID: "c1", Text: "Good"}, {ID: "c2", Text: "Great"}},
	}

	got := singleValue(t, f)
	assert.Equal(t, "Quality: Good, Great\nSpeed: Great\nr9: Good", got)
}

func TestTranscode_FileUploadAndSignature(t *testing.T) {
	value := `[{"name":"cv.pdf","url":"https://files.example/cv.pdf","size":12595},{"name":"a.png","url":"https://files.example/a.png","size":1024}]`
	want := "[cv.pdf](https://files.example/cv.pdf) (12.3 KB)\n[a.png](https://files.example/a.png) (1.0 KB)"

	assert.Equal(t, want, singleValue(t, field("f", "Files", "FILE_UPLOAD", value)))
	assert.Equal(t, want, singleValue(t, field("s", "Sign", "SIGNATURE", value)))
}

func TestTranscode_RatingAndScale(t *testing.T) {
	assert.Equal(t, "⭐ 4/5", singleValue(t, field("r", "Rating", "RATING", `4`)))
	assert.Equal(t, "📊 7/10", singleValue(t, field("s", "Scale", "LINEAR_SCALE", `7`)))
}

func TestTranscode_ScalarPrefixes(t *testing.T) {
	cases := map[string]string{
		"INPUT_EMAIL":        "📧 ada@example.com",
		"INPUT_PHONE_NUMBER": "📞 ada@example.com",
		"INPUT_LINK":         "🔗 ada@example.com",
		"INPUT_DATE":         "📅 ada@example.com",
		"INPUT_TIME":         "🕐 ada@example.com",
		"HIDDEN_FIELDS":      "🔒 ada@example.com",
		"CALCULATED_FIELDS":  "🧮 ada@example.com",
	}
	for typ, want := range cases {
		assert.Equal(t, want, singleValue(t, field("k", "L", typ, `"ada@example.com"`)), typ)
	}
}

func TestTranscode_Payment_FirstMatchingLabelWins(t *testing.T) {
	cases := []struct {
		label string
		value string
		want  string
	}{
		{"price", `19.5`, "💰 $19.50"},
		{"price name", `"free"`, "💰 free"},
		{"currency", `"USD"`, "💱 USD"},
		{"customer name", `"Ada"`, "👤 Ada"},
		{"email", `"ada@example.com"`, "📧 ada@example.com"},
		{"link", `"https://pay.example/1"`, "🔗 [View Payment](https://pay.example/1)"},
		{"Price", `5`, "💳 5"},
		{"status", `"paid"`, "💳 paid"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, singleValue(t, field("p", tc.label, "PAYMENT", tc.value)), tc.label)
	}
}

func TestTranscode_UnknownType_PassesThrough(t *testing.T) {
	assert.Equal(t, "hello", singleValue(t, field("x", "X", "SOMETHING_NEW", `"hello"`)))
	assert.Equal(t, "true", singleValue(t, field("x", "X", "SOMETHING_NEW", `true`)))
	assert.Equal(t, "a, 2", singleValue(t, field("x", "X", "SOMETHING_NEW", `["a",2]`)))
	assert.Equal(t, `{"a":1}`, singleValue(t, field("x", "X", "SOMETHING_NEW", `{"a":1}`)))
}

func TestTranscode_BlankValuesDropped(t *testing.T) {
	entries := Transcode([]FieldRecord{
		field("a", "A", "INPUT_TEXT", `"   "`),
		field("b", "B", "INPUT_TEXT", `null`),
		{Key: "c", Label: "C", Type: "INPUT_TEXT"},
		field("d", "D", "RATING", `null`),
		field("e", "E", "INPUT_EMAIL", `""`),
	}, noSettings())

	assert.Empty(t, entries)
}

func TestTranscode_HiddenFieldNeverEmitted_EvenWithOverrides(t *testing.T) {
	settings := Catalog{Defaults: DisplaySettings{
		HiddenFields:   map[string]bool{"secret": true},
		LabelOverrides: map[string]string{"secret": "Renamed"},
		Formatters:     map[string]FormatterID{"secret": FormatUppercase},
	}}.For("")

	entries := Transcode([]FieldRecord{
		field("secret", "Password", "INPUT_TEXT", `"hunter2"`),
		field("name", "Name", "INPUT_TEXT", `"Ada"`),
	}, settings)

	require.Len(t, entries, 1)
	for _, e := range entries {
		assert.NotEqual(t, "Password", e.Name)
		assert.NotEqual(t, "Renamed", e.Name)
	}
}

func TestTranscode_LabelOverride(t *testing.T) {
	settings := Catalog{Defaults: DisplaySettings{LabelOverrides: map[string]string{"q1": "Full name"}}}.For("")

	entries := Transcode([]FieldRecord{field("q1", "What is your name?", "INPUT_TEXT", `"Ada"`)}, settings)

	require.Len(t, entries, 1)
	assert.Equal(t, "Full name", entries[0].Name)
}

func TestTranscode_FormatterRunsAfterTypeResolution(t *testing.T) {
	settings := Catalog{Defaults: DisplaySettings{Formatters: map[string]FormatterID{
		"colour": FormatUppercase,
		"mail":   FormatStripPrefix,
	}}}.For("")

	entries := Transcode([]FieldRecord{
		field("colour", "Colour", "DROPDOWN", `"opt2"`, colorOptions...),
		field("mail", "Email", "INPUT_EMAIL", `"ada@example.com"`),
	}, settings)

	require.Len(t, entries, 2)
	assert.Equal(t, "BLUE", entries[0].Value)
	assert.Equal(t, "ada@example.com", entries[1].Value)
}

func TestTranscode_FormatterProducingBlank_DropsEntry(t *testing.T) {
	settings := Catalog{Defaults: DisplaySettings{Formatters: map[string]FormatterID{"q": FormatHide}}}.For("")

	entries := Transcode([]FieldRecord{field("q", "Q", "INPUT_TEXT", `"non-empty"`)}, settings)

	assert.Empty(t, entries)
}

func TestTranscode_TruncatesNameAndValue(t *testing.T) {
	label := strings.Repeat("L", 300)
	value := strings.Repeat("v", 2000)

	entries := Transcode([]FieldRecord{field("q", label, "INPUT_TEXT", `"`+value+`"`)}, noSettings())

	require.Len(t, entries, 1)
	assert.Equal(t, strings.Repeat("L", 253)+"...", entries[0].Name)
	assert.Len(t, []rune(entries[0].Name), 256)
	assert.Equal(t, strings.Repeat("v", 1021)+"...", entries[0].Value)
	assert.Len(t, []rune(entries[0].Value), 1024)
}

func TestTruncate_Idempotent(t *testing.T) {
	for _, s := range []string{"", "short", strings.Repeat("x", 256), strings.Repeat("y", 257), strings.Repeat("é", 900)} {
		once := Truncate(s, MaxNameLength)
		assert.Equal(t, once, Truncate(once, MaxNameLength))
		assert.LessOrEqual(t, len([]rune(once)), MaxNameLength)
	}
}

func TestTruncate_CountsCharactersNotBytes(t *testing.T) {
	s := strings.Repeat("é", 256)
	assert.Equal(t, s, Truncate(s, 256))
}

func TestBuildEnvelope_Defaults(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sub := Submission{ResponseID: "r1", SubmissionID: "s1"}

	env := BuildEnvelope(sub, noSettings(), nil, now)

	assert.Equal(t, DefaultTitle, env.Title)
	assert.Equal(t, "Form: Unknown Form", env.Description)
	assert.Equal(t, ColorInfo, env.Color)
	assert.Equal(t, "Response ID: r1 | Submission ID: s1", env.FooterText)
	assert.Equal(t, "2026-01-02T03:04:05.000Z", env.Timestamp)
	assert.NotNil(t, env.Entries)
}

func TestBuildEnvelope_FormOverrides(t *testing.T) {
	green := ColorSuccess
	catalog := Catalog{Forms: map[string]DisplaySettings{
		"f1": {Title: "New signup", Description: "Beta list", Color: &green},
	}}
	sub := Submission{FormID: "f1", FormName: "Signup", CreatedAt: "2024-05-01T12:00:00Z"}
	entries := []DisplayEntry{{Name: "Name", Value: "Ada"}}

	env := BuildEnvelope(sub, catalog.For("f1"), entries, time.Now())

	assert.Equal(t, "New signup", env.Title)
	assert.Equal(t, "Beta list", env.Description)
	assert.Equal(t, ColorSuccess, env.Color)
	assert.Equal(t, entries, env.Entries)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", env.Timestamp)
}

func TestBuildEnvelope_DescriptionUsesFormName(t *testing.T) {
	env := BuildEnvelope(Submission{FormName: "Contact us"}, noSettings(), nil, time.Now())
	assert.Equal(t, "Form: Contact us", env.Description)
}
