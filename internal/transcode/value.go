package transcode

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// decode turns a raw JSON value into plain Go values, keeping numbers as json.Number
// so they render exactly as the provider sent them.
func decode(raw json.RawMessage) (interface{}, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// stringify renders any decoded value as display text.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func rawText(raw json.RawMessage) string {
	v, ok := decode(raw)
	if !ok {
		return ""
	}
	return stringify(v)
}

// decodeMatrix keeps the row order of the payload object.
func decodeMatrix(raw json.RawMessage) (*orderedmap.OrderedMap, bool) {
	om := orderedmap.New()
	if err := json.Unmarshal(raw, om); err != nil {
		return nil, false
	}
	return om, true
}

func decodeFiles(raw json.RawMessage) ([]FileUpload, bool) {
	var files []FileUpload
	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, false
	}
	return files, true
}

func optionText(options []Option, id string) (string, bool) {
	for _, o := range options {
		if o.ID == id {
			return o.Text, true
		}
	}
	return "", false
}
