package domain

import "time"

type SessionID int64

// Session is an active pairing of one customer and one agent, with the
// messages accumulated during its lifetime. A removed session is never
// reactivated; a re-match always creates a fresh one.
type Session struct {
	ID         SessionID
	CustomerID ParticipantID
	AgentID    ParticipantID
	StartedAt  time.Time
	Messages   []Message
}

func (s Session) Has(p ParticipantID) bool {
	return s.CustomerID == p || s.AgentID == p
}

// PartnerOf returns the other party of the session.
func (s Session) PartnerOf(p ParticipantID) (ParticipantID, bool) {
	switch p {
	case s.CustomerID:
		return s.AgentID, true
	case s.AgentID:
		return s.CustomerID, true
	default:
		return 0, false
	}
}

func (s Session) RoleOf(p ParticipantID) (Role, bool) {
	switch p {
	case s.CustomerID:
		return Customer, true
	case s.AgentID:
		return Agent, true
	default:
		return "", false
	}
}
