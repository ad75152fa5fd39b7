package runtime_test

import (
	"context"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/mocks"
	"cx-chat/runtime"
	"cx-chat/sink"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitFor = 2 * time.Second

func newTestOrchestrator(t *testing.T) (*runtime.Orchestrator, context.CancelFunc) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockMessageRepo := mocks.NewMockIMessageRepository(ctrl)
	mockSearchRepo := mocks.NewMockISearchRepository(ctrl)
	mockMessageRepo.EXPECT().StoreMessage(gomock.Any()).Return(nil).AnyTimes()
	mockSearchRepo.EXPECT().Index(gomock.Any()).Return(nil).AnyTimes()

	log := slog.New(slog.DiscardHandler)
	o := runtime.NewOrchestrator(
		log,
		mockMessageRepo,
		mockSearchRepo,
		2,             // numWorkers
		256,           // bufferSize
		1*time.Minute, // metricInterval, irrelevant here
		'*',
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = o.Start(ctx) }()
	return o, cancel
}

func awaitEvent(t *testing.T, events chan event.Event, wanted event.Type) event.Event {
	t.Helper()
	deadline := time.After(waitFor)
	for {
		select {
		case evt := <-events:
			if evt.Type == wanted {
				return evt
			}
		case <-deadline:
			t.Fatalf("No %s event within %s", wanted, waitFor)
		}
	}
}

func TestOrchestrator_PairsAndRelaysMessages(t *testing.T) {
	req := require.New(t)
	o, cancel := newTestOrchestrator(t)
	defer cancel()

	customer := domain.ParticipantID(1)
	agent := domain.ParticipantID(2)
	customerQueue := sink.NewConnSink(16)
	agentQueue := sink.NewConnSink(16)

	// Given both parties are connected
	o.AttachParticipant(customer, customerQueue)
	o.AttachParticipant(agent, agentQueue)

	// When the customer asks first and the agent follows
	o.Dispatch(domain.RequestMatchCommand{Participant: customer, Role: domain.Customer})
	o.Dispatch(domain.RequestMatchCommand{Participant: agent, Role: domain.Agent})

	// Then the customer first hears it is waiting, then gets the match
	waiting := awaitEvent(t, customerQueue.Events, event.ParticipantWaitingType)
	req.Equal(customer, waiting.Payload.(event.ParticipantWaiting).Participant)

	matched := awaitEvent(t, customerQueue.Events, event.MatchSucceededType)
	customerSide := matched.Payload.(event.MatchSucceeded)
	req.Equal(agent, customerSide.Partner)

	agentMatched := awaitEvent(t, agentQueue.Events, event.MatchSucceededType)
	agentSide := agentMatched.Payload.(event.MatchSucceeded)
	req.Equal(customerSide.Session, agentSide.Session)
	req.Equal(customer, agentSide.Partner)

	// When the customer posts into the session
	o.Dispatch(domain.PostMessageCommand{
		Session:   customerSide.Session,
		SenderID:  customer,
		Content:   "where is my refund",
		CreatedAt: time.Now().UTC(),
	})

	// Then both parties receive the sanitized broadcast
	got := awaitEvent(t, agentQueue.Events, event.SanitizedMessageType)
	relayed := got.Payload.(event.SanitizedMessage)
	req.Equal("where is my refund", relayed.Content)
	req.Equal(customer, relayed.Author)
	awaitEvent(t, customerQueue.Events, event.SanitizedMessageType)
}

func TestOrchestrator_EndSessionReachesBothParties(t *testing.T) {
	req := require.New(t)
	o, cancel := newTestOrchestrator(t)
	defer cancel()

	customer := domain.ParticipantID(1)
	agent := domain.ParticipantID(2)
	customerQueue := sink.NewConnSink(16)
	agentQueue := sink.NewConnSink(16)

	o.AttachParticipant(customer, customerQueue)
	o.AttachParticipant(agent, agentQueue)

	o.Dispatch(domain.RequestMatchCommand{Participant: agent, Role: domain.Agent})
	o.Dispatch(domain.RequestMatchCommand{Participant: customer, Role: domain.Customer})

	matched := awaitEvent(t, customerQueue.Events, event.MatchSucceededType)
	sessionID := matched.Payload.(event.MatchSucceeded).Session

	// When the customer hangs up
	o.Dispatch(domain.EndSessionCommand{Session: sessionID, Participant: customer})

	ended := awaitEvent(t, agentQueue.Events, event.SessionEndedType)
	payload := ended.Payload.(event.SessionEnded)
	req.Equal(sessionID, payload.Session)
	req.Equal(customer, payload.EndedBy)
	req.Equal(0, o.LiveSessions())
}

func TestOrchestrator_ReconnectRestoresSessionFeed(t *testing.T) {
	req := require.New(t)
	o, cancel := newTestOrchestrator(t)
	defer cancel()

	customer := domain.ParticipantID(1)
	agent := domain.ParticipantID(2)
	customerQueue := sink.NewConnSink(16)
	agentQueue := sink.NewConnSink(16)

	o.AttachParticipant(customer, customerQueue)
	o.AttachParticipant(agent, agentQueue)

	o.Dispatch(domain.RequestMatchCommand{Participant: agent, Role: domain.Agent})
	o.Dispatch(domain.RequestMatchCommand{Participant: customer, Role: domain.Customer})

	matched := awaitEvent(t, customerQueue.Events, event.MatchSucceededType)
	sessionID := matched.Payload.(event.MatchSucceeded).Session

	// Given the agent drops and comes back on a fresh connection
	o.DetachParticipant(agent)
	freshQueue := sink.NewConnSink(16)
	o.AttachParticipant(agent, freshQueue)

	o.Dispatch(domain.PostMessageCommand{
		Session:   sessionID,
		SenderID:  customer,
		Content:   "are you still there",
		CreatedAt: time.Now().UTC(),
	})

	got := awaitEvent(t, freshQueue.Events, event.SanitizedMessageType)
	req.Equal("are you still there", got.Payload.(event.SanitizedMessage).Content)
}
