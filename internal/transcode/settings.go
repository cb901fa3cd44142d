package transcode

// Accent colours for embeds.
const (
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xF1C40F
	ColorError   = 0xE74C3C
)

var namedColors = map[string]int{
	"info":    ColorInfo,
	"success": ColorSuccess,
	"warning": ColorWarning,
	"error":   ColorError,
}

// NamedColor resolves one of info, success, warning or error.
func NamedColor(name string) (int, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// DisplaySettings controls how one form is rendered.
type DisplaySettings struct {
	Title          string
	Description    string
	Color          *int
	HiddenFields   map[string]bool
	LabelOverrides map[string]string
	Formatters     map[string]FormatterID
}

func (s DisplaySettings) IsHidden(key string) bool {
	return s.HiddenFields[key]
}

// Catalog holds the defaults shared by every form plus per-form settings.
type Catalog struct {
	Defaults DisplaySettings
	Forms    map[string]DisplaySettings
}

// For merges the per-form settings of formID over the defaults. The result owns its maps.
func (c Catalog) For(formID string) DisplaySettings {
	out := DisplaySettings{
		Title:          c.Defaults.Title,
		Description:    c.Defaults.Description,
		Color:          c.Defaults.Color,
		HiddenFields:   make(map[string]bool, len(c.Defaults.HiddenFields)),
		LabelOverrides: make(map[string]string, len(c.Defaults.LabelOverrides)),
		Formatters:     make(map[string]FormatterID, len(c.Defaults.Formatters)),
	}
	merge(&out, c.Defaults)

	form, ok := c.Forms[formID]
	if !ok || formID == "" {
		return out
	}
	if form.Title != "" {
		out.Title = form.Title
	}
	if form.Description != "" {
		out.Description = form.Description
	}
	if form.Color != nil {
		out.Color = form.Color
	}
	merge(&out, form)
	return out
}

func merge(dst *DisplaySettings, src DisplaySettings) {
	for k, hidden := range src.HiddenFields {
		if hidden {
			dst.HiddenFields[k] = true
		}
	}
	for k, v := range src.LabelOverrides {
		dst.LabelOverrides[k] = v
	}
	for k, v := range src.Formatters {
		dst.Formatters[k] = v
	}
}
