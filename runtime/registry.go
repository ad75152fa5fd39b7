package runtime

import (
	"cx-chat/contract"
	"cx-chat/domain"
	"sync"
)

type Set map[domain.ParticipantID]struct{}

// ConnRegistry tracks live connections. Conns resolves a participant to its
// private delivery channel; Members groups connected participants by the
// session-scoped channel they subscribe to.
type ConnRegistry struct {
	mu      sync.RWMutex
	Conns   map[domain.ParticipantID]contract.EventSink
	Members map[domain.SessionID]Set
}

func NewConnRegistry() *ConnRegistry {
	return &ConnRegistry{
		Conns:   make(map[domain.ParticipantID]contract.EventSink),
		Members: make(map[domain.SessionID]Set),
	}
}

// Attach registers a participant's active connection. Even when the
// participant later joins a session channel, the connection stays managed
// in this single place.
func (r *ConnRegistry) Attach(participantID domain.ParticipantID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Conns[participantID] = sink
}

// Detach removes the participant's connection and its session memberships.
// No empty sets are left behind to prevent memory leaks over time.
func (r *ConnRegistry) Detach(participantID domain.ParticipantID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Conns, participantID)
	for sessionID, members := range r.Members {
		delete(members, participantID)
		if len(members) == 0 {
			delete(r.Members, sessionID)
		}
	}
}

// Join subscribes a participant to a session-scoped channel. The session
// entry is initialized on the fly when this is its first subscriber.
func (r *ConnRegistry) Join(participantID domain.ParticipantID, sessionID domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Members[sessionID]; !ok {
		r.Members[sessionID] = make(Set)
	}
	r.Members[sessionID][participantID] = struct{}{}
}

// Leave unsubscribes a participant from a session-scoped channel without
// touching its private connection.
func (r *ConnRegistry) Leave(participantID domain.ParticipantID, sessionID domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.Members[sessionID]; ok {
		delete(members, participantID)

		// If no one is left in the session channel, remove the entry entirely
		if len(members) == 0 {
			delete(r.Members, sessionID)
		}
	}
}

// DropSession removes a session channel and all its subscriptions at once.
// Private connections are untouched.
func (r *ConnRegistry) DropSession(sessionID domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Members, sessionID)
}

func (r *ConnRegistry) SinkFor(participantID domain.ParticipantID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.Conns[participantID]
	return sink, ok
}

// SinksForSession retrieves all active delivery channels subscribed to one
// session. It performs a two-step lookup:
// 1. Identifies participant IDs subscribed to the session via Members.
// 2. Resolves those IDs into actual sinks using the Conns map.
// Returns nil if the session channel doesn't exist or has no members.
func (r *ConnRegistry) SinksForSession(sessionID domain.SessionID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.Members[sessionID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for participantID := range members {
		if sink, exists := r.Conns[participantID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}
