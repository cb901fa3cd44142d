package formsubmission

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"form-relay-api/internal/discord"
	"form-relay-api/internal/transcode"

	"github.com/google/uuid"
)

// RelayService resolves where a submission goes, renders it and makes one delivery attempt.
type RelayService struct {
	Resolver    DestinationResolver
	Dispatcher  Dispatcher
	Display     transcode.Catalog
	BotUsername string
	Log         *slog.Logger
	Outcomes    OutcomeRecorder
	Now         func() time.Time
}

func (s *RelayService) Relay(ctx context.Context, sub transcode.Submission, overrideURL string) (*RelayResult, error) {
	deliveryID := uuid.NewString()
	log := s.logger().With(
		"delivery_id", deliveryID,
		"form_id", sub.FormID,
		"response_id", sub.ResponseID,
	)

	target, err := s.Resolver.Resolve(sub.FormID, overrideURL)
	if err != nil {
		appErr := fromResolution(err)
		log.Warn("destination rejected", "kind", appErr.Kind)
		s.record(outcome(appErr))
		return nil, appErr
	}

	settings := s.Display.For(sub.FormID)
	entries := transcode.Transcode(sub.Fields, settings)
	env := transcode.BuildEnvelope(sub, settings, entries, s.now())
	msg := discord.NewMessage(s.BotUsername, env)

	res, err := s.Dispatcher.Send(ctx, target, msg)
	if err != nil {
		log.Error("delivery failed", "error", err)
		s.record("delivery_failed")
		return nil, deliveryFailed(0, err)
	}
	if !res.OK() {
		log.Error("discord rejected delivery", "status", res.StatusCode, "body", res.Body)
		s.record("delivery_failed")
		return nil, deliveryFailed(res.StatusCode, errors.New("non-success response from discord"))
	}

	log.Info("submission forwarded",
		"entries", len(entries),
		"fields", len(sub.Fields),
		"override", overrideURL != "",
		"status", res.StatusCode,
	)
	s.record("delivered")

	return &RelayResult{
		DeliveryID: deliveryID,
		ResponseID: sub.ResponseID,
		Entries:    len(entries),
	}, nil
}

func (s *RelayService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RelayService) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

func (s *RelayService) record(outcome string) {
	if s.Outcomes != nil {
		s.Outcomes.ObserveOutcome(outcome)
	}
}
