package transcode

import "encoding/json"

// Submission is one form response event, already unwrapped from the provider envelope.
type Submission struct {
	FormID       string        `json:"formId"`
	FormName     string        `json:"formName"`
	ResponseID   string        `json:"responseId"`
	SubmissionID string        `json:"submissionId"`
	RespondentID string        `json:"respondentId"`
	CreatedAt    string        `json:"createdAt"`
	Fields       []FieldRecord `json:"fields"`
}

// FieldRecord is one question/answer pair. Value stays raw until the field kind is known.
type FieldRecord struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Type    string          `json:"type"`
	Value   json.RawMessage `json:"value"`
	Options []Option        `json:"options,omitempty"`
	Rows    []Option        `json:"rows,omitempty"`
	Columns []Option        `json:"columns,omitempty"`
}

func (f FieldRecord) Kind() FieldKind { return ParseFieldKind(f.Type) }

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type FileUpload struct {
	Name string  `json:"name"`
	URL  string  `json:"url"`
	Size float64 `json:"size"`
}

// DisplayEntry is one rendered name/value pair, bounded to embed field limits.
type DisplayEntry struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type Envelope struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Color       int            `json:"color"`
	Entries     []DisplayEntry `json:"entries"`
	FooterText  string         `json:"footerText"`
	Timestamp   string         `json:"timestamp"`
}
