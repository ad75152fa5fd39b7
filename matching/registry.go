//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_session_registry.go -package=mocks
package matching

import (
	"cx-chat/domain"
	"sync"
	"sync/atomic"
	"time"
)

type ISessionRegistry interface {
	Create(customerID, agentID domain.ParticipantID, startedAt time.Time) domain.SessionID
	Remove(sessionID domain.SessionID) (domain.Session, bool)
	Get(sessionID domain.SessionID) (domain.Session, bool)
	SessionOf(participantID domain.ParticipantID) (domain.SessionID, bool)
	Append(sessionID domain.SessionID, message domain.Message) bool
	Count() int
}

// sessionEntry wraps a live session with its own mutex so that appends and
// removal of the SAME session serialize, while operations on distinct
// sessions never contend beyond the short map lookups.
type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
	removed bool
}

// SessionRegistry owns the live session collection and the reverse index
// from participant id to session id. Both structures move in lockstep: a
// participant is indexed if and only if it is a party of exactly one live
// session. Only the matching engine mutates the registry.
type SessionRegistry struct {
	mu            sync.RWMutex
	sessions      map[domain.SessionID]*sessionEntry
	byParticipant map[domain.ParticipantID]domain.SessionID
	lastID        atomic.Int64
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions:      make(map[domain.SessionID]*sessionEntry),
		byParticipant: make(map[domain.ParticipantID]domain.SessionID),
	}
}

// Create stores a new session pairing the two participants and indexes both
// of them. Identifiers come from a monotonic counter: a coarse time-derived
// value would collide under rapid concurrent creation.
func (r *SessionRegistry) Create(customerID, agentID domain.ParticipantID, startedAt time.Time) domain.SessionID {
	id := domain.SessionID(r.lastID.Add(1))

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[id] = &sessionEntry{
		session: domain.Session{
			ID:         id,
			CustomerID: customerID,
			AgentID:    agentID,
			StartedAt:  startedAt,
		},
	}
	r.byParticipant[customerID] = id
	r.byParticipant[agentID] = id
	return id
}

// Remove atomically removes the session and unindexes both participants.
// It returns a snapshot of the removed session, messages included, so the
// caller can run its termination side effects without holding any lock.
// Removing an unknown session is a no-op.
func (r *SessionRegistry) Remove(sessionID domain.SessionID) (domain.Session, bool) {
	r.mu.Lock()
	entry, ok := r.sessions[sessionID]
	if !ok {
		r.mu.Unlock()
		return domain.Session{}, false
	}
	delete(r.sessions, sessionID)
	delete(r.byParticipant, entry.session.CustomerID)
	delete(r.byParticipant, entry.session.AgentID)
	r.mu.Unlock()

	// Serialize with any in-flight append on this entry. Once removed is
	// set, a racing append resolves to a drop instead of a partial write.
	entry.mu.Lock()
	entry.removed = true
	snapshot := cloneSession(entry.session)
	entry.mu.Unlock()

	return snapshot, true
}

func (r *SessionRegistry) Get(sessionID domain.SessionID) (domain.Session, bool) {
	r.mu.RLock()
	entry, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.Session{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.removed {
		return domain.Session{}, false
	}
	return cloneSession(entry.session), true
}

func (r *SessionRegistry) SessionOf(participantID domain.ParticipantID) (domain.SessionID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byParticipant[participantID]
	return id, ok
}

// Append adds a message to the session's history. A message racing the
// session's termination either lands before the removal and is retained in
// the returned snapshot, or is dropped here. Appending to an ended session
// is not an error: real-time traffic routinely arrives after termination.
func (r *SessionRegistry) Append(sessionID domain.SessionID, message domain.Message) bool {
	r.mu.RLock()
	entry, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.removed {
		return false
	}
	entry.session.Messages = append(entry.session.Messages, message)
	return true
}

// Count returns the number of live sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func cloneSession(s domain.Session) domain.Session {
	out := s
	out.Messages = make([]domain.Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return out
}
