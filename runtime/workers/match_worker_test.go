package workers

import (
	"context"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/mocks"
	"cx-chat/observability"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchWorker_PostEmitsRawEvent(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matcher := mocks.NewMockIMatcher(ctrl)
	commands := make(chan domain.Command, 1)
	rawEvents := make(chan event.Event, 1)
	monitor := observability.NewMonitor()

	matcher.EXPECT().
		AppendMessage(domain.SessionID(5), gomock.Any()).
		Return(true).
		Times(1)

	worker := NewMatchWorker(matcher, commands, rawEvents, monitor, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	commands <- domain.PostMessageCommand{
		Session:   5,
		SenderID:  1,
		Content:   "hello",
		CreatedAt: time.Now().UTC(),
	}

	select {
	case evt := <-rawEvents:
		req.Equal(event.MessagePostedType, evt.Type)
		posted, ok := evt.Payload.(event.MessagePosted)
		req.True(ok)
		req.Equal(domain.SessionID(5), posted.Session)
		req.Equal("hello", posted.Content)
		req.NotEmpty(posted.ID)
	case <-time.After(1 * time.Second):
		req.Fail("Expected a raw event for the appended message")
	}
}

func TestMatchWorker_PostToEndedSessionIsDropped(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matcher := mocks.NewMockIMatcher(ctrl)
	commands := make(chan domain.Command, 1)
	rawEvents := make(chan event.Event, 1)
	monitor := observability.NewMonitor()

	handled := make(chan struct{})
	matcher.EXPECT().
		AppendMessage(domain.SessionID(5), gomock.Any()).
		DoAndReturn(func(domain.SessionID, domain.Message) bool {
			defer close(handled)
			return false
		}).
		Times(1)

	worker := NewMatchWorker(matcher, commands, rawEvents, monitor, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	commands <- domain.PostMessageCommand{Session: 5, SenderID: 1, Content: "too late"}

	select {
	case <-handled:
	case <-time.After(1 * time.Second):
		req.Fail("Worker did not consume the command")
	}
	req.Empty(rawEvents)
	req.Equal(uint64(1), atomic.LoadUint64(&monitor.MessagesDropped))
}

func TestMatchWorker_EndSessionEmitsOnce(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matcher := mocks.NewMockIMatcher(ctrl)
	commands := make(chan domain.Command, 2)
	rawEvents := make(chan event.Event, 2)
	monitor := observability.NewMonitor()

	// Given first end succeeds, second one targets a session already gone
	gomock.InOrder(
		matcher.EXPECT().EndSession(gomock.Any(), domain.SessionID(9), domain.ParticipantID(2)).Return(true),
		matcher.EXPECT().EndSession(gomock.Any(), domain.SessionID(9), domain.ParticipantID(4)).Return(false),
	)

	worker := NewMatchWorker(matcher, commands, rawEvents, monitor, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	commands <- domain.EndSessionCommand{Session: 9, Participant: 2}
	commands <- domain.EndSessionCommand{Session: 9, Participant: 4}

	select {
	case evt := <-rawEvents:
		req.Equal(event.SessionEndedType, evt.Type)
		ended, ok := evt.Payload.(event.SessionEnded)
		req.True(ok)
		req.Equal(domain.ParticipantID(2), ended.EndedBy)
	case <-time.After(1 * time.Second):
		req.Fail("Expected a session ended event")
	}

	// And the duplicate end produced nothing
	time.Sleep(50 * time.Millisecond)
	req.Empty(rawEvents)
	req.Equal(uint64(1), atomic.LoadUint64(&monitor.SessionsEnded))
}

func TestMatchWorker_RequestMatchDelegates(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matcher := mocks.NewMockIMatcher(ctrl)
	commands := make(chan domain.Command, 1)
	monitor := observability.NewMonitor()

	handled := make(chan struct{})
	matcher.EXPECT().
		RequestMatch(gomock.Any(), domain.ParticipantID(42), domain.Customer).
		DoAndReturn(func(context.Context, domain.ParticipantID, domain.Role) (domain.MatchOutcome, error) {
			defer close(handled)
			return domain.MatchOutcome{Status: domain.Waiting}, nil
		}).
		Times(1)

	worker := NewMatchWorker(matcher, commands, make(chan event.Event, 1), monitor, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	commands <- domain.RequestMatchCommand{Participant: 42, Role: domain.Customer}

	select {
	case <-handled:
	case <-time.After(1 * time.Second):
		req.Fail("Worker did not forward the match request")
	}
}
