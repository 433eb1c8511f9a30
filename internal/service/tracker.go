package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricewatch/internal/domain"
)

// SessionTracker mediates every session mutation so no two components ever
// touch the same session row.
type SessionTracker struct {
	sessions SessionStore
	logger   *slog.Logger
}

func NewSessionTracker(sessions SessionStore, logger *slog.Logger) *SessionTracker {
	return &SessionTracker{sessions: sessions, logger: logger}
}

// Begin opens a session for one adapter run.
func (t *SessionTracker) Begin(ctx context.Context, supermarketCode string) (*TrackedSession, error) {
	id, err := t.sessions.Begin(ctx, supermarketCode)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}

	t.logger.Info("session started", "supermarket", supermarketCode, "session_id", id)

	return &TrackedSession{
		tracker:         t,
		id:              id,
		supermarketCode: supermarketCode,
		startedAt:       time.Now(),
	}, nil
}

// TrackedSession is the in-memory side of one running session. It is owned
// by a single adapter goroutine and is not safe for concurrent use.
type TrackedSession struct {
	tracker         *SessionTracker
	id              int64
	supermarketCode string
	startedAt       time.Time
	persisted       int
	closed          bool
}

func (s *TrackedSession) ID() int64 { return s.id }

// ItemPersisted bumps the session's success counter.
func (s *TrackedSession) ItemPersisted() { s.persisted++ }

func (s *TrackedSession) Persisted() int { return s.persisted }

func (s *TrackedSession) Elapsed() time.Duration { return time.Since(s.startedAt) }

// Complete closes the session successfully with the persisted count.
func (s *TrackedSession) Complete(ctx context.Context) error {
	if err := s.markClosed(); err != nil {
		return err
	}
	if err := s.tracker.sessions.Complete(ctx, s.id, s.persisted); err != nil {
		return err
	}
	s.tracker.logger.Info("session completed",
		"supermarket", s.supermarketCode,
		"session_id", s.id,
		"products_scraped", s.persisted,
		"elapsed", s.Elapsed(),
	)
	return nil
}

// Fail closes the session with an error message.
func (s *TrackedSession) Fail(ctx context.Context, errorMessage string) error {
	if err := s.markClosed(); err != nil {
		return err
	}
	if err := s.tracker.sessions.Fail(ctx, s.id, errorMessage); err != nil {
		return err
	}
	s.tracker.logger.Warn("session failed",
		"supermarket", s.supermarketCode,
		"session_id", s.id,
		"error", errorMessage,
	)
	return nil
}

func (s *TrackedSession) markClosed() error {
	if s.closed {
		return fmt.Errorf("session %d already closed: %w", s.id, domain.ErrInvalidSessionTransition)
	}
	s.closed = true
	return nil
}
