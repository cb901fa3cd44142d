package transcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"form-relay-api/internal/util"
)

const (
	checkedLabel   = "✅ Yes"
	uncheckedLabel = "❌ No"
)

var scalarPrefixes = map[FieldKind]string{
	KindEmail:      "📧 ",
	KindPhone:      "📞 ",
	KindLink:       "🔗 ",
	KindDate:       "📅 ",
	KindTime:       "🕐 ",
	KindHidden:     "🔒 ",
	KindCalculated: "🧮 ",
}

// resolveValue renders the raw value of a field according to its kind.
func resolveValue(f FieldRecord) string {
	v, ok := decode(f.Value)
	if !ok {
		return ""
	}

	switch kind := f.Kind(); kind {
	case KindMultipleChoice, KindDropdown, KindMultiSelect:
		return resolveChoice(v, f.Options)
	case KindCheckboxes:
		if b, ok := v.(bool); ok {
			if b {
				return checkedLabel
			}
			return uncheckedLabel
		}
		if _, ok := v.([]interface{}); ok {
			return resolveChoice(v, f.Options)
		}
		return stringify(v)
	case KindRanking:
		return resolveRanking(v, f.Options)
	case KindMatrix:
		return resolveMatrix(f)
	case KindFileUpload, KindSignature:
		return resolveFiles(f.Value, v)
	case KindRating:
		return withSuffix("⭐ ", stringify(v), "/5")
	case KindLinearScale:
		return withSuffix("📊 ", stringify(v), "/10")
	case KindEmail, KindPhone, KindLink, KindDate, KindTime, KindHidden, KindCalculated:
		return withSuffix(scalarPrefixes[kind], stringify(v), "")
	case KindPayment:
		return resolvePayment(f.Label, v)
	case KindText, KindTextarea, KindNumber, KindUnknown:
		return stringify(v)
	default:
		return stringify(v)
	}
}

// withSuffix decorates non-empty text; empty text stays empty so the entry is dropped.
func withSuffix(prefix, text, suffix string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return prefix + text + suffix
}

// resolveChoice maps option ids to their text. A list keeps matched ids only; when
// nothing matches at all the raw value is returned unchanged.
func resolveChoice(v interface{}, options []Option) string {
	list, ok := v.([]interface{})
	if !ok {
		id := stringify(v)
		if text, found := optionText(options, id); found {
			return text
		}
		return id
	}

	texts := make([]string, 0, len(list))
	for _, item := range list {
		if text, found := optionText(options, stringify(item)); found {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return stringify(v)
	}
	return strings.Join(texts, ", ")
}

func resolveRanking(v interface{}, options []Option) string {
	list, ok := v.([]interface{})
	if !ok {
		return stringify(v)
	}
	lines := make([]string, 0, len(list))
	for i, item := range list {
		id := stringify(item)
		text, found := optionText(options, id)
		if !found {
			text = id
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, text))
	}
	return strings.Join(lines, "\n")
}

func resolveMatrix(f FieldRecord) string {
	om, ok := decodeMatrix(f.Value)
	if !ok {
		return rawText(f.Value)
	}

	lines := make([]string, 0, len(om.Keys()))
	for _, rowID := range om.Keys() {
		rowText, found := optionText(f.Rows, rowID)
		if !found {
			rowText = rowID
		}

		cell, _ := om.Get(rowID)
		var colIDs []interface{}
		switch c := cell.(type) {
		case []interface{}:
			colIDs = c
		case nil:
		default:
			colIDs = []interface{}{c}
		}

		cols := make([]string, 0, len(colIDs))
		for _, id := range colIDs {
			if text, found := optionText(f.Columns, stringify(id)); found {
				cols = append(cols, text)
			}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", rowText, strings.Join(cols, ", ")))
	}
	return strings.Join(lines, "\n")
}

func resolveFiles(raw json.RawMessage, v interface{}) string {
	files, ok := decodeFiles(raw)
	if !ok {
		return stringify(v)
	}
	lines := make([]string, 0, len(files))
	for _, file := range files {
		lines = append(lines, fmt.Sprintf("[%s](%s) (%s KB)", file.Name, file.URL, util.FormatKB(file.Size)))
	}
	return strings.Join(lines, "\n")
}

// resolvePayment picks a rendering from the first matching label substring.
func resolvePayment(label string, v interface{}) string {
	text := stringify(v)
	if strings.TrimSpace(text) == "" {
		return ""
	}

	switch {
	case strings.Contains(label, "price"):
		if n, err := strconv.ParseFloat(text, 64); err == nil {
			return fmt.Sprintf("💰 $%.2f", n)
		}
		return "💰 " + text
	case strings.Contains(label, "currency"):
		return "💱 " + text
	case strings.Contains(label, "name"):
		return "👤 " + text
	case strings.Contains(label, "email"):
		return "📧 " + text
	case strings.Contains(label, "link"):
		return fmt.Sprintf("🔗 [View Payment](%s)", text)
	default:
		return "💳 " + text
	}
}
