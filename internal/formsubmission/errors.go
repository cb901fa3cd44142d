package formsubmission

import (
	"errors"
	"fmt"
	"net/http"

	"form-relay-api/internal/destination"
)

type ErrorKind string

const (
	KindUnauthorized       ErrorKind = "Unauthorized"
	KindMethodNotAllowed   ErrorKind = "MethodNotAllowed"
	KindInvalidPayload     ErrorKind = "InvalidPayload"
	KindMissingDestination ErrorKind = "MissingDestination"
	KindUnconfiguredForm   ErrorKind = "UnconfiguredForm"
	KindInvalidURLFormat   ErrorKind = "InvalidUrlFormat"
	KindUntrustedHost      ErrorKind = "UntrustedHost"
	KindDeliveryFailed     ErrorKind = "DeliveryFailed"
	KindInternal           ErrorKind = "Internal"
)

// AppError is a request-terminating failure. Message is safe to return to callers.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	// UpstreamStatus is the Discord status code of a rejected delivery, 0 otherwise.
	UpstreamStatus int
	Err            error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func invalidPayload(err error) *AppError {
	return &AppError{
		Kind:    KindInvalidPayload,
		Status:  http.StatusBadRequest,
		Message: "Request body must be a form submission webhook payload with data.fields",
		Err:     err,
	}
}

func deliveryFailed(upstreamStatus int, err error) *AppError {
	return &AppError{
		Kind:           KindDeliveryFailed,
		Status:         http.StatusInternalServerError,
		Message:        "Failed to deliver the submission to Discord",
		UpstreamStatus: upstreamStatus,
		Err:            err,
	}
}

func internalError(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
		Err:     err,
	}
}

// fromResolution maps a destination error onto its HTTP classification.
func fromResolution(err error) *AppError {
	var rerr *destination.Error
	if !errors.As(err, &rerr) {
		return internalError(err)
	}

	switch rerr.Kind {
	case destination.InvalidURLFormat:
		return &AppError{Kind: KindInvalidURLFormat, Status: http.StatusBadRequest,
			Message: OverrideHeader + " header is not a valid URL", Err: err}
	case destination.UntrustedHost:
		return &AppError{Kind: KindUntrustedHost, Status: http.StatusBadRequest,
			Message: OverrideHeader + " header must point to discord.com or discordapp.com", Err: err}
	case destination.MissingDestination:
		return &AppError{Kind: KindMissingDestination, Status: http.StatusBadRequest,
			Message: "Submission has no formId and no " + OverrideHeader + " header was provided", Err: err}
	case destination.UnconfiguredForm:
		return &AppError{Kind: KindUnconfiguredForm, Status: http.StatusNotFound,
			Message: fmt.Sprintf("No Discord webhook is configured for form %s", rerr.FormID), Err: err}
	}
	return internalError(err)
}

// outcome is the metrics label for an error.
func outcome(err *AppError) string {
	switch err.Kind {
	case KindInvalidPayload:
		return "invalid_payload"
	case KindMissingDestination:
		return "missing_destination"
	case KindUnconfiguredForm:
		return "unconfigured_form"
	case KindInvalidURLFormat:
		return "invalid_url_format"
	case KindUntrustedHost:
		return "untrusted_host"
	case KindDeliveryFailed:
		return "delivery_failed"
	}
	return "internal"
}
