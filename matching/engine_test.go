package matching

import (
	"context"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures deliveries so tests can assert on the
// notification side effects without any transport.
type recordingNotifier struct {
	mu      sync.Mutex
	matches []event.MatchSucceeded
	waiting []event.ParticipantWaiting
}

func (n *recordingNotifier) NotifyMatch(_ context.Context, _ domain.ParticipantID, payload event.MatchSucceeded) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matches = append(n.matches, payload)
	return nil
}

func (n *recordingNotifier) NotifyWaiting(_ context.Context, _ domain.ParticipantID, payload event.ParticipantWaiting) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.waiting = append(n.waiting, payload)
	return nil
}

func (n *recordingNotifier) matchCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.matches)
}

func newTestEngine() (*Engine, *SessionRegistry, *recordingNotifier) {
	registry := NewSessionRegistry()
	notifier := &recordingNotifier{}
	return NewEngine(slog.Default(), registry, notifier), registry, notifier
}

func TestEngine_RequestMatch_InvalidRole(t *testing.T) {
	req := require.New(t)
	engine, _, _ := newTestEngine()

	_, err := engine.RequestMatch(context.Background(), 1, domain.Role("MANAGER"))

	req.ErrorIs(err, errors.ErrInvalidRole)
}

func TestEngine_FirstRequesterWaits(t *testing.T) {
	req := require.New(t)
	engine, registry, notifier := newTestEngine()

	// When a customer requests a match with no agent available
	outcome, err := engine.RequestMatch(context.Background(), 1, domain.Customer)

	// Then the customer is enqueued, notified once, and no session exists
	req.NoError(err)
	req.Equal(domain.Waiting, outcome.Status)
	req.Zero(registry.Count())
	req.Len(notifier.waiting, 1)
	req.EqualValues(1, notifier.waiting[0].Participant)

	customers, agents := engine.QueueStatus()
	req.Equal([]domain.ParticipantID{1}, customers)
	req.Empty(agents)
}

func TestEngine_FIFO_OldestCustomerPairsFirst(t *testing.T) {
	req := require.New(t)
	engine, registry, notifier := newTestEngine()
	ctx := context.Background()

	// Given two customers waiting in arrival order
	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	_, _ = engine.RequestMatch(ctx, 2, domain.Customer)

	// When a single agent requests a match
	outcome, err := engine.RequestMatch(ctx, 100, domain.Agent)

	// Then the agent pairs with the first customer, not the second
	req.NoError(err)
	req.Equal(domain.Matched, outcome.Status)
	req.EqualValues(1, outcome.Partner)

	session, ok := registry.Get(outcome.Session)
	req.True(ok)
	req.EqualValues(1, session.CustomerID)
	req.EqualValues(100, session.AgentID)

	// And the second customer keeps waiting
	customers, _ := engine.QueueStatus()
	req.Equal([]domain.ParticipantID{2}, customers)

	// Both parties received a match notification
	req.Equal(2, notifier.matchCount())
}

func TestEngine_FIFO_OldestAgentPairsFirst(t *testing.T) {
	req := require.New(t)
	engine, registry, _ := newTestEngine()
	ctx := context.Background()

	_, _ = engine.RequestMatch(ctx, 100, domain.Agent)
	_, _ = engine.RequestMatch(ctx, 200, domain.Agent)

	outcome, err := engine.RequestMatch(ctx, 1, domain.Customer)

	req.NoError(err)
	req.Equal(domain.Matched, outcome.Status)
	req.EqualValues(100, outcome.Partner)

	session, ok := registry.Get(outcome.Session)
	req.True(ok)
	req.EqualValues(100, session.AgentID)

	_, agents := engine.QueueStatus()
	req.Equal([]domain.ParticipantID{200}, agents)
}

func TestEngine_EndSession_Idempotent(t *testing.T) {
	req := require.New(t)
	engine, _, _ := newTestEngine()
	ctx := context.Background()

	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	outcome, _ := engine.RequestMatch(ctx, 100, domain.Agent)

	req.True(engine.EndSession(ctx, outcome.Session, 1))
	// Second call with the same id has no additional effect
	req.False(engine.EndSession(ctx, outcome.Session, 1))
}

func TestEngine_AgentEndTriggersRematch(t *testing.T) {
	req := require.New(t)
	engine, registry, notifier := newTestEngine()
	ctx := context.Background()

	// Given an active session (C1, A1) and a second customer already queued
	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	outcome, _ := engine.RequestMatch(ctx, 100, domain.Agent)
	_, _ = engine.RequestMatch(ctx, 2, domain.Customer)
	req.Equal(2, notifier.matchCount())

	// When the agent ends the session
	req.True(engine.EndSession(ctx, outcome.Session, 100))

	// Then a fresh session pairs the queued customer with the freed agent
	req.Equal(1, registry.Count())
	newSessionID, ok := registry.SessionOf(2)
	req.True(ok)
	req.NotEqual(outcome.Session, newSessionID)

	session, ok := registry.Get(newSessionID)
	req.True(ok)
	req.EqualValues(2, session.CustomerID)
	req.EqualValues(100, session.AgentID)

	// And match notifications fired for both parties of the new pairing
	req.Equal(4, notifier.matchCount())

	customers, agents := engine.QueueStatus()
	req.Empty(customers)
	req.Empty(agents)
}

func TestEngine_AgentEndWithoutWaiterRejoinsPoolSilently(t *testing.T) {
	req := require.New(t)
	engine, registry, notifier := newTestEngine()
	ctx := context.Background()

	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	outcome, _ := engine.RequestMatch(ctx, 100, domain.Agent)

	req.True(engine.EndSession(ctx, outcome.Session, 100))

	// The agent re-joined the pool without a waiting notification
	_, agents := engine.QueueStatus()
	req.Equal([]domain.ParticipantID{100}, agents)
	req.Empty(notifier.waiting)
	req.Zero(registry.Count())
}

func TestEngine_CustomerEndDoesNotRematch(t *testing.T) {
	req := require.New(t)
	engine, registry, notifier := newTestEngine()
	ctx := context.Background()

	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	outcome, _ := engine.RequestMatch(ctx, 100, domain.Agent)
	_, _ = engine.RequestMatch(ctx, 2, domain.Customer)

	// When the customer ends the session
	req.True(engine.EndSession(ctx, outcome.Session, 1))

	// Then the agent is NOT re-submitted: the other customer keeps waiting
	req.Zero(registry.Count())
	customers, agents := engine.QueueStatus()
	req.Equal([]domain.ParticipantID{2}, customers)
	req.Empty(agents)
	req.Equal(2, notifier.matchCount())
}

func TestEngine_AppendMessageToEndedSessionIsSilentNoOp(t *testing.T) {
	req := require.New(t)
	engine, _, _ := newTestEngine()
	ctx := context.Background()

	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	outcome, _ := engine.RequestMatch(ctx, 100, domain.Agent)
	req.True(engine.EndSession(ctx, outcome.Session, 1))

	appended := engine.AppendMessage(outcome.Session, domain.Message{
		ID:       uuid.New(),
		Session:  outcome.Session,
		SenderID: 1,
		Content:  "anyone there?",
	})
	req.False(appended)
}

func TestEngine_NoParticipantInBothPoolAndSession(t *testing.T) {
	req := require.New(t)
	engine, registry, _ := newTestEngine()
	ctx := context.Background()

	ids := []domain.ParticipantID{1, 2, 3, 100, 101}
	_, _ = engine.RequestMatch(ctx, 1, domain.Customer)
	_, _ = engine.RequestMatch(ctx, 2, domain.Customer)
	_, _ = engine.RequestMatch(ctx, 100, domain.Agent)
	_, _ = engine.RequestMatch(ctx, 101, domain.Agent)
	_, _ = engine.RequestMatch(ctx, 3, domain.Customer)

	customers, agents := engine.QueueStatus()
	queued := make(map[domain.ParticipantID]struct{})
	for _, id := range append(customers, agents...) {
		queued[id] = struct{}{}
	}

	for _, id := range ids {
		_, inSession := registry.SessionOf(id)
		_, inPool := queued[id]
		req.False(inSession && inPool, "participant %d is both queued and in a session", id)
	}
}

// Launching N concurrent customers against N concurrent agents with no prior
// waiters must produce exactly N sessions, each pairing a distinct customer
// with a distinct agent, with zero leftover waiters.
func TestEngine_ConcurrentPairing_ExactlyOnce(t *testing.T) {
	req := require.New(t)
	engine, registry, notifier := newTestEngine()
	ctx := context.Background()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id domain.ParticipantID) {
			defer wg.Done()
			_, err := engine.RequestMatch(ctx, id, domain.Customer)
			req.NoError(err)
		}(domain.ParticipantID(i + 1))

		wg.Add(1)
		go func(id domain.ParticipantID) {
			defer wg.Done()
			_, err := engine.RequestMatch(ctx, id, domain.Agent)
			req.NoError(err)
		}(domain.ParticipantID(i + 1000))
	}
	wg.Wait()

	// Exactly N sessions, no leftovers
	req.Equal(n, registry.Count())
	customers, agents := engine.QueueStatus()
	req.Empty(customers)
	req.Empty(agents)

	// Each participant occupies exactly one session
	seenCustomers := make(map[domain.ParticipantID]struct{})
	seenAgents := make(map[domain.ParticipantID]struct{})
	for i := 0; i < n; i++ {
		customer := domain.ParticipantID(i + 1)
		agent := domain.ParticipantID(i + 1000)

		sid, ok := registry.SessionOf(customer)
		req.True(ok)
		session, ok := registry.Get(sid)
		req.True(ok)
		req.Equal(customer, session.CustomerID)
		_, dup := seenCustomers[session.CustomerID]
		req.False(dup)
		seenCustomers[session.CustomerID] = struct{}{}

		sid, ok = registry.SessionOf(agent)
		req.True(ok)
		session, ok = registry.Get(sid)
		req.True(ok)
		req.Equal(agent, session.AgentID)
		_, dup = seenAgents[session.AgentID]
		req.False(dup)
		seenAgents[session.AgentID] = struct{}{}
	}

	// Two match notifications per pairing
	req.Equal(2*n, notifier.matchCount())
}
