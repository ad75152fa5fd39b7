// Package matching is the core of the system: it decides, under concurrent
// arrival of customers and agents, who gets paired with whom, and keeps the
// session registry consistent while request handlers race each other.
package matching

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/errors"
	"log/slog"
	"sync"
	"time"
)

var _ contract.IMatcher = (*Engine)(nil)

// Engine owns the two waiting pools and the single decision point pairing
// participants. The mutex covers both pools at once: polling the opposite
// pool and enqueueing into one's own pool must be one atomic step, otherwise
// two concurrent requests can both decide to wait while a match was
// available, or both grab the same single waiter.
type Engine struct {
	mu               sync.Mutex
	waitingCustomers waitingPool
	availableAgents  waitingPool
	registry         ISessionRegistry
	notifier         contract.Notifier
	log              *slog.Logger
}

func NewEngine(log *slog.Logger, registry ISessionRegistry, notifier contract.Notifier) *Engine {
	return &Engine{
		registry: registry,
		notifier: notifier,
		log:      log,
	}
}

// RequestMatch pairs the requester with the oldest waiting participant of
// the opposite role, or enqueues the requester when none is waiting.
// Strictly FIFO per role; no skipping, no priority. No existing-session
// check is performed: a participant already in a session is treated as new.
func (e *Engine) RequestMatch(ctx context.Context, participantID domain.ParticipantID, role domain.Role) (domain.MatchOutcome, error) {
	switch role {
	case domain.Customer, domain.Agent:
	default:
		return domain.MatchOutcome{}, errors.ErrInvalidRole
	}

	e.mu.Lock()
	opposite := e.poolFor(role.Opposite())
	partner, found := opposite.poll()
	if !found {
		e.poolFor(role).push(participantID)
		e.mu.Unlock()

		e.notifyWaiting(ctx, participantID, role)
		return domain.MatchOutcome{Status: domain.Waiting}, nil
	}

	sessionID := e.createSession(participantID, role, partner)
	e.mu.Unlock()

	e.notifyMatched(ctx, sessionID, participantID, role, partner)
	return domain.MatchOutcome{
		Status:  domain.Matched,
		Session: sessionID,
		Partner: partner,
	}, nil
}

// EndSession removes the session and reports whether it was still live.
// Ending an already ended session is a no-op. When the requesting
// participant was the agent, the freed agent immediately re-enters the
// matching process: it pairs with the oldest waiting customer or re-joins
// the agent pool if none is waiting. A customer ending the session frees
// nobody automatically.
func (e *Engine) EndSession(ctx context.Context, sessionID domain.SessionID, participantID domain.ParticipantID) bool {
	session, ok := e.registry.Remove(sessionID)
	if !ok {
		return false
	}

	if session.AgentID == participantID {
		e.rematchAgent(ctx, participantID)
	}
	return true
}

// AppendMessage records the message in the session's history. Messages for
// an ended session are silently dropped.
func (e *Engine) AppendMessage(sessionID domain.SessionID, message domain.Message) bool {
	return e.registry.Append(sessionID, message)
}

// QueueStatus snapshots both waiting pools, oldest first.
func (e *Engine) QueueStatus() (customers, agents []domain.ParticipantID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.waitingCustomers.snapshot(), e.availableAgents.snapshot()
}

// rematchAgent re-submits a freed agent through the same pairing path as a
// fresh request, except that re-joining the pool sends no waiting notice.
func (e *Engine) rematchAgent(ctx context.Context, agentID domain.ParticipantID) {
	e.mu.Lock()
	customer, found := e.waitingCustomers.poll()
	if !found {
		e.availableAgents.push(agentID)
		e.mu.Unlock()
		return
	}

	sessionID := e.createSession(agentID, domain.Agent, customer)
	e.mu.Unlock()

	e.notifyMatched(ctx, sessionID, agentID, domain.Agent, customer)
}

// createSession must run inside the decision point so that the partner
// leaves its pool and enters a session in one atomic step.
func (e *Engine) createSession(requester domain.ParticipantID, role domain.Role, partner domain.ParticipantID) domain.SessionID {
	customerID, agentID := requester, partner
	if role == domain.Agent {
		customerID, agentID = partner, requester
	}
	return e.registry.Create(customerID, agentID, time.Now().UTC())
}

// notifyMatched fires the match-success side effect toward both parties.
// The pairing has already committed: a delivery failure is logged and never
// reverses it.
func (e *Engine) notifyMatched(ctx context.Context, sessionID domain.SessionID, requester domain.ParticipantID, role domain.Role, partner domain.ParticipantID) {
	deliveries := []event.MatchSucceeded{
		{Session: sessionID, Participant: requester, Partner: partner, Role: role},
		{Session: sessionID, Participant: partner, Partner: requester, Role: role.Opposite()},
	}
	for _, payload := range deliveries {
		if err := e.notifier.NotifyMatch(ctx, payload.Participant, payload); err != nil {
			e.log.Error("Match notification delivery failed",
				"session", sessionID,
				"participant", payload.Participant,
				"error", err)
		}
	}
}

func (e *Engine) notifyWaiting(ctx context.Context, participantID domain.ParticipantID, role domain.Role) {
	payload := event.ParticipantWaiting{Participant: participantID, Role: role}
	if err := e.notifier.NotifyWaiting(ctx, participantID, payload); err != nil {
		e.log.Error("Waiting notification delivery failed",
			"participant", participantID,
			"error", err)
	}
}

func (e *Engine) poolFor(role domain.Role) *waitingPool {
	if role == domain.Customer {
		return &e.waitingCustomers
	}
	return &e.availableAgents
}
