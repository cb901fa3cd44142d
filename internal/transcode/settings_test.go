package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFor_MergesFormOverDefaults(t *testing.T) {
	warn := ColorWarning
	catalog := Catalog{
		Defaults: DisplaySettings{
			Title:          "Default title",
			HiddenFields:   map[string]bool{"ip": true},
			LabelOverrides: map[string]string{"q1": "Name", "q2": "Email"},
			Formatters:     map[string]FormatterID{"q2": FormatLowercase},
		},
		Forms: map[string]DisplaySettings{
			"f1": {
				Color:          &warn,
				HiddenFields:   map[string]bool{"utm": true},
				LabelOverrides: map[string]string{"q2": "Contact"},
			},
		},
	}

	got := catalog.For("f1")

	assert.Equal(t, "Default title", got.Title)
	assert.Equal(t, ColorWarning, *got.Color)
	assert.True(t, got.IsHidden("ip"))
	assert.True(t, got.IsHidden("utm"))
	assert.Equal(t, "Name", got.LabelOverrides["q1"])
	assert.Equal(t, "Contact", got.LabelOverrides["q2"])
	assert.Equal(t, FormatLowercase, got.Formatters["q2"])
}

func TestCatalogFor_UnknownForm_UsesDefaultsOnly(t *testing.T) {
	catalog := Catalog{
		Defaults: DisplaySettings{HiddenFields: map[string]bool{"ip": true}},
		Forms:    map[string]DisplaySettings{"f1": {Title: "F1"}},
	}

	got := catalog.For("other")

	assert.Equal(t, "", got.Title)
	assert.Nil(t, got.Color)
	assert.True(t, got.IsHidden("ip"))
}

func TestCatalogFor_DoesNotMutateDefaults(t *testing.T) {
	catalog := Catalog{
		Defaults: DisplaySettings{LabelOverrides: map[string]string{"q": "A"}},
		Forms:    map[string]DisplaySettings{"f1": {LabelOverrides: map[string]string{"q": "B"}}},
	}

	_ = catalog.For("f1")

	assert.Equal(t, "A", catalog.Defaults.LabelOverrides["q"])
}

func TestParseFieldKind(t *testing.T) {
	assert.Equal(t, KindMatrix, ParseFieldKind("MATRIX"))
	assert.Equal(t, KindUnknown, ParseFieldKind("matrix"))
	assert.Equal(t, KindUnknown, ParseFieldKind("BRAND_NEW_TYPE"))
	assert.True(t, KindDropdown.IsChoice())
	assert.False(t, KindCheckboxes.IsChoice())
	assert.Equal(t, "RANKING", KindRanking.String())
	assert.Equal(t, "UNKNOWN", KindUnknown.String())
}

func TestNamedColor(t *testing.T) {
	c, ok := NamedColor("error")
	assert.True(t, ok)
	assert.Equal(t, ColorError, c)

	_, ok = NamedColor("purple")
	assert.False(t, ok)
}
