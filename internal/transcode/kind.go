package transcode

// FieldKind is the closed set of provider field types the transcoder knows how to render.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindText
	KindTextarea
	KindNumber
	KindPhone
	KindEmail
	KindLink
	KindDate
	KindTime
	KindMultipleChoice
	KindCheckboxes
	KindDropdown
	KindMultiSelect
	KindRanking
	KindMatrix
	KindFileUpload
	KindSignature
	KindRating
	KindLinearScale
	KindPayment
	KindHidden
	KindCalculated
)

var kindByType = map[string]FieldKind{
	"INPUT_TEXT":         KindText,
	"TEXTAREA":           KindTextarea,
	"INPUT_NUMBER":       KindNumber,
	"INPUT_PHONE_NUMBER": KindPhone,
	"INPUT_EMAIL":        KindEmail,
	"INPUT_LINK":         KindLink,
	"INPUT_DATE":         KindDate,
	"INPUT_TIME":         KindTime,
	"MULTIPLE_CHOICE":    KindMultipleChoice,
	"CHECKBOXES":         KindCheckboxes,
	"DROPDOWN":           KindDropdown,
	"MULTI_SELECT":       KindMultiSelect,
	"RANKING":            KindRanking,
	"MATRIX":             KindMatrix,
	"FILE_UPLOAD":        KindFileUpload,
	"SIGNATURE":          KindSignature,
	"RATING":             KindRating,
	"LINEAR_SCALE":       KindLinearScale,
	"PAYMENT":            KindPayment,
	"HIDDEN_FIELDS":      KindHidden,
	"CALCULATED_FIELDS":  KindCalculated,
}

// ParseFieldKind maps a provider type string onto a FieldKind. Unrecognised types
// (including ones the provider adds later) become KindUnknown.
func ParseFieldKind(t string) FieldKind {
	if k, ok := kindByType[t]; ok {
		return k
	}
	return KindUnknown
}

func (k FieldKind) String() string {
	for name, kind := range kindByType {
		if kind == k {
			return name
		}
	}
	return "UNKNOWN"
}

// IsChoice reports whether values of this kind are option identifiers.
func (k FieldKind) IsChoice() bool {
	switch k {
	case KindMultipleChoice, KindDropdown, KindMultiSelect:
		return true
	}
	return false
}
