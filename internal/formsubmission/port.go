package formsubmission

import (
	"context"

	"form-relay-api/internal/discord"
	"form-relay-api/internal/transcode"
)

type DestinationResolver interface {
	Resolve(formID, overrideURL string) (string, error)
}

type Dispatcher interface {
	Send(ctx context.Context, targetURL string, msg discord.Message) (*discord.Result, error)
}

type OutcomeRecorder interface {
	ObserveOutcome(outcome string)
}

type RelayServiceAPI interface {
	Relay(ctx context.Context, sub transcode.Submission, overrideURL string) (*RelayResult, error)
}
