package formsubmission

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, service RelayServiceAPI, auth gin.HandlerFunc, log *slog.Logger, outcomes OutcomeRecorder) {
	formSubmissionController := &FormSubmissionController{
		Service:  service,
		Log:      log,
		Outcomes: outcomes,
	}

	r.POST("/webhook", auth, formSubmissionController.ReceiveSubmission)
	r.POST("/", auth, formSubmissionController.ReceiveSubmission)
}
