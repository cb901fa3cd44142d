package formsubmission

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FormSubmissionController struct {
	Service  RelayServiceAPI
	Log      *slog.Logger
	Outcomes OutcomeRecorder
}

// POST /webhook
func (fc *FormSubmissionController) ReceiveSubmission(c *gin.Context) {
	var payload WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload(err)
		if fc.Log != nil {
			fc.Log.Warn("invalid payload", "error", err)
		}
		if fc.Outcomes != nil {
			fc.Outcomes.ObserveOutcome(outcome(appErr))
		}
		WriteError(c, appErr)
		return
	}

	res, err := fc.Service.Relay(c.Request.Context(), payload.Submission(), c.GetHeader(OverrideHeader))
	if err != nil {
		WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Form submission forwarded to Discord",
		"responseId": res.ResponseID,
	})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	WriteError(c, &AppError{
		Kind:    KindMethodNotAllowed,
		Status:  http.StatusMethodNotAllowed,
		Message: "Only POST requests are accepted",
	})
}

// WriteError renders err as {error, message[, status]}. Errors that are not
// *AppError become a generic 500.
func WriteError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = internalError(err)
	}

	body := gin.H{
		"error":   string(appErr.Kind),
		"message": appErr.Message,
	}
	if appErr.UpstreamStatus != 0 {
		body["status"] = appErr.UpstreamStatus
	}
	c.AbortWithStatusJSON(appErr.Status, body)
}
