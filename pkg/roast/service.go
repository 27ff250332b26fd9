package roast

import (
	"context"
	"log"
	"strings"
)

// Completer is the outbound boundary to the completion provider.
// Implemented by openrouter.Client.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// Audit receives one record per successful roast. Implemented by
// roastlog.Logger. May be nil, in which case nothing is recorded.
type Audit interface {
	Record(level Level, gender Gender, input, output string)
}

// Request is one inbound roast, however it arrived.
type Request struct {
	Text   string
	Level  Level
	Gender Gender
}

// Service is the composition and dispatch pipeline shared by every transport
// surface. It is stateless per call and safe for concurrent use.
type Service struct {
	completer Completer
	audit     Audit
}

func NewService(completer Completer, audit Audit) *Service {
	return &Service{
		completer: completer,
		audit:     audit,
	}
}

// Roast validates the request, composes a system prompt, and dispatches it.
// Validation failures are returned as-is and never reach the provider; any
// provider failure comes back as a *DispatchError with the raw cause logged
// here, never surfaced to the user. Exactly one remote call per invocation,
// no retry.
func (s *Service) Roast(ctx context.Context, req Request) (string, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "", ErrEmptyText
	}

	systemPrompt, err := Compose(req.Level, req.Gender)
	if err != nil {
		return "", err
	}

	reply, err := s.completer.Complete(ctx, systemPrompt, text)
	if err != nil {
		log.Printf("Roast dispatch failed (level=%s gender=%s): %v", req.Level, req.Gender, err)
		return "", &DispatchError{Cause: err}
	}

	reply = strings.TrimSpace(reply)

	if s.audit != nil {
		s.audit.Record(req.Level, req.Gender, text, reply)
	}

	return reply, nil
}
