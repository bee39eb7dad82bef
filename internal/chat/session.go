package chat

import (
	"context"
	"strings"
	"time"
)

// Completer sends one completion request for the full transcript and
// returns the assistant's reply. The client package implements this against
// Azure OpenAI; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

var exitCommands = []string{"exit", "quit", "q"}

// IsExitCommand reports whether input should end the session. Matching is
// case-insensitive and never reaches the network.
func IsExitCommand(input string) bool {
	for _, cmd := range exitCommands {
		if strings.EqualFold(strings.TrimSpace(input), cmd) {
			return true
		}
	}
	return false
}

// Session drives one conversation against a single deployment. The
// deployment does not change mid-session.
type Session struct {
	completer  Completer
	transcript *Transcript
	timeout    time.Duration
}

func NewSession(completer Completer, systemPrompt string, timeout time.Duration) *Session {
	return &Session{
		completer:  completer,
		transcript: NewTranscript(systemPrompt),
		timeout:    timeout,
	}
}

func (s *Session) Transcript() *Transcript {
	return s.transcript
}

// Ask runs one turn: append the user message, send the full transcript,
// append the reply. On failure the user message is rolled back so the
// transcript matches what the remote service acknowledged, and the session
// stays usable. Elapsed time is returned for display only.
func (s *Session) Ask(ctx context.Context, input string) (string, time.Duration, error) {
	s.transcript.Append(RoleUser, input)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.completer.Complete(ctx, s.transcript.Messages())
	elapsed := time.Since(start)
	if err != nil {
		s.transcript.Rollback()
		return "", elapsed, err
	}

	s.transcript.Append(RoleAssistant, reply)
	return reply, elapsed, nil
}
