package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"form-relay-api/internal/transcode"

	"github.com/go-playground/validator/v10"
)

// FormsFile is the on-disk shape of FORMS_CONFIG_FILE:
//
//	{
//	  "webhooks": {"<formId>": "https://discord.com/api/webhooks/..."},
//	  "defaults": {"hiddenFields": [...], "labelOverrides": {...}, "formatters": {...}},
//	  "forms":    {"<formId>": {"title": "...", "description": "...", "color": "success", ...}}
//	}
type FormsFile struct {
	Webhooks map[string]string       `json:"webhooks" validate:"dive,required,url"`
	Defaults FormSettings            `json:"defaults"`
	Forms    map[string]FormSettings `json:"forms" validate:"dive"`
}

type FormSettings struct {
	Title          string            `json:"title" validate:"max=256"`
	Description    string            `json:"description" validate:"max=4096"`
	Color          json.RawMessage   `json:"color"`
	HiddenFields   []string          `json:"hiddenFields" validate:"dive,required"`
	LabelOverrides map[string]string `json:"labelOverrides" validate:"dive,required,max=256"`
	Formatters     map[string]string `json:"formatters" validate:"dive,required"`
}

// Forms is the parsed and checked content of a forms file.
type Forms struct {
	Webhooks map[string]string
	Display  transcode.Catalog
}

var validate = validator.New()

func LoadFormsFile(path string) (Forms, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Forms{}, fmt.Errorf("read forms config: %w", err)
	}
	return ParseForms(raw)
}

func ParseForms(raw []byte) (Forms, error) {
	var file FormsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Forms{}, fmt.Errorf("parse forms config: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return Forms{}, fmt.Errorf("invalid forms config: %w", err)
	}

	defaults, err := file.Defaults.toSettings()
	if err != nil {
		return Forms{}, fmt.Errorf("defaults: %w", err)
	}

	out := Forms{
		Webhooks: make(map[string]string, len(file.Webhooks)),
		Display: transcode.Catalog{
			Defaults: defaults,
			Forms:    make(map[string]transcode.DisplaySettings, len(file.Forms)),
		},
	}
	for formID, target := range file.Webhooks {
		out.Webhooks[formID] = target
	}
	for formID, fs := range file.Forms {
		s, err := fs.toSettings()
		if err != nil {
			return Forms{}, fmt.Errorf("form %s: %w", formID, err)
		}
		out.Display.Forms[formID] = s
	}
	return out, nil
}

func (fs FormSettings) toSettings() (transcode.DisplaySettings, error) {
	s := transcode.DisplaySettings{
		Title:          fs.Title,
		Description:    fs.Description,
		HiddenFields:   make(map[string]bool, len(fs.HiddenFields)),
		LabelOverrides: make(map[string]string, len(fs.LabelOverrides)),
		Formatters:     make(map[string]transcode.FormatterID, len(fs.Formatters)),
	}

	color, ok, err := parseColor(fs.Color)
	if err != nil {
		return transcode.DisplaySettings{}, err
	}
	if ok {
		s.Color = &color
	}

	for _, key := range fs.HiddenFields {
		s.HiddenFields[key] = true
	}
	for key, label := range fs.LabelOverrides {
		s.LabelOverrides[key] = label
	}
	for key, name := range fs.Formatters {
		id := transcode.FormatterID(name)
		if _, found := transcode.LookupFormatter(id); !found {
			return transcode.DisplaySettings{}, fmt.Errorf("unknown formatter %q for field %s (known: %s)",
				name, key, strings.Join(transcode.FormatterIDs(), ", "))
		}
		s.Formatters[key] = id
	}
	return s, nil
}

// parseColor accepts an integer, a colour name (info, success, warning, error) or "#RRGGBB".
func parseColor(raw json.RawMessage) (int, bool, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return 0, false, nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 || n > 0xFFFFFF {
			return 0, false, fmt.Errorf("color %d out of range", n)
		}
		return n, true, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return 0, false, fmt.Errorf("color must be a number or a string, got %s", text)
	}
	if c, ok := transcode.NamedColor(strings.ToLower(name)); ok {
		return c, true, nil
	}
	if hex, found := strings.CutPrefix(name, "#"); found && len(hex) == 6 {
		v, err := strconv.ParseInt(hex, 16, 32)
		if err == nil {
			return int(v), true, nil
		}
	}
	return 0, false, fmt.Errorf("unknown color %q", name)
}

func parseWebhooks(raw []byte) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for formID, target := range m {
		if err := validate.Var(target, "required,url"); err != nil {
			return nil, fmt.Errorf("webhook for form %s is not a valid url", formID)
		}
	}
	return m, nil
}
