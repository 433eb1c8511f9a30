package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pricewatch/internal/domain"
	"pricewatch/internal/service/mocks"
)

type SessionTrackerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sessions *mocks.MockSessionStore
	tracker  *SessionTracker
}

func (s *SessionTrackerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = mocks.NewMockSessionStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.tracker = NewSessionTracker(s.sessions, logger)
}

func (s *SessionTrackerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTrackerTestSuite))
}

func (s *SessionTrackerTestSuite) TestBegin() {
	ctx := context.Background()
	s.sessions.EXPECT().Begin(ctx, "AH").Return(int64(42), nil)

	session, err := s.tracker.Begin(ctx, "AH")
	s.Require().NoError(err)
	s.Equal(int64(42), session.ID())
	s.Equal(0, session.Persisted())
}

func (s *SessionTrackerTestSuite) TestBegin_StoreError() {
	ctx := context.Background()
	s.sessions.EXPECT().Begin(ctx, "AH").Return(int64(0), errors.New("unknown supermarket"))

	_, err := s.tracker.Begin(ctx, "AH")
	s.Error(err)
	s.Contains(err.Error(), "begin session")
}

func (s *SessionTrackerTestSuite) TestComplete_ReportsPersistedCount() {
	ctx := context.Background()
	s.sessions.EXPECT().Begin(ctx, "AH").Return(int64(42), nil)
	s.sessions.EXPECT().Complete(ctx, int64(42), 3).Return(nil)

	session, err := s.tracker.Begin(ctx, "AH")
	s.Require().NoError(err)

	session.ItemPersisted()
	session.ItemPersisted()
	session.ItemPersisted()
	s.Equal(3, session.Persisted())

	s.NoError(session.Complete(ctx))
}

func (s *SessionTrackerTestSuite) TestComplete_Twice() {
	ctx := context.Background()
	s.sessions.EXPECT().Begin(ctx, "AH").Return(int64(42), nil)
	s.sessions.EXPECT().Complete(ctx, int64(42), 0).Return(nil)

	session, err := s.tracker.Begin(ctx, "AH")
	s.Require().NoError(err)

	s.NoError(session.Complete(ctx))

	err = session.Complete(ctx)
	s.ErrorIs(err, domain.ErrInvalidSessionTransition)
}

func (s *SessionTrackerTestSuite) TestFail_AfterComplete() {
	ctx := context.Background()
	s.sessions.EXPECT().Begin(ctx, "AH").Return(int64(42), nil)
	s.sessions.EXPECT().Complete(ctx, int64(42), 0).Return(nil)

	session, err := s.tracker.Begin(ctx, "AH")
	s.Require().NoError(err)

	s.NoError(session.Complete(ctx))

	err = session.Fail(ctx, "late failure")
	s.ErrorIs(err, domain.ErrInvalidSessionTransition)
}

func (s *SessionTrackerTestSuite) TestFail() {
	ctx := context.Background()
	s.sessions.EXPECT().Begin(ctx, "JUMBO").Return(int64(9), nil)
	s.sessions.EXPECT().Fail(ctx, int64(9), "search api down").Return(nil)

	session, err := s.tracker.Begin(ctx, "JUMBO")
	s.Require().NoError(err)

	s.NoError(session.Fail(ctx, "search api down"))
}
