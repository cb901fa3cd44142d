package formsubmission

import "form-relay-api/internal/transcode"

// OverrideHeader carries an optional caller-supplied Discord webhook url.
const OverrideHeader = "X-Discord-Webhook-Url"

// WebhookPayload is the event envelope posted by the forms provider.
type WebhookPayload struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	CreatedAt string          `json:"createdAt"`
	Data      *SubmissionData `json:"data" binding:"required"`
}

type SubmissionData struct {
	ResponseID   string                  `json:"responseId"`
	SubmissionID string                  `json:"submissionId"`
	RespondentID string                  `json:"respondentId"`
	FormID       string                  `json:"formId"`
	FormName     string                  `json:"formName"`
	CreatedAt    string                  `json:"createdAt"`
	Fields       []transcode.FieldRecord `json:"fields" binding:"required"`
}

// Submission unwraps the payload. The event timestamp stands in for a missing
// submission timestamp.
func (p WebhookPayload) Submission() transcode.Submission {
	d := p.Data
	createdAt := d.CreatedAt
	if createdAt == "" {
		createdAt = p.CreatedAt
	}
	return transcode.Submission{
		FormID:       d.FormID,
		FormName:     d.FormName,
		ResponseID:   d.ResponseID,
		SubmissionID: d.SubmissionID,
		RespondentID: d.RespondentID,
		CreatedAt:    createdAt,
		Fields:       d.Fields,
	}
}

// RelayResult describes a delivered submission.
type RelayResult struct {
	DeliveryID string `json:"-"`
	ResponseID string `json:"responseId"`
	Entries    int    `json:"-"`
}
