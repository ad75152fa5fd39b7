package event

import (
	"cx-chat/domain"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MatchSucceededType      Type = "MATCH_SUCCEEDED"
	ParticipantWaitingType  Type = "PARTICIPANT_WAITING"
	MessagePostedType       Type = "MESSAGE_POSTED"
	SanitizedMessageType    Type = "SANITIZED_MESSAGE"
	SessionEndedType        Type = "SESSION_ENDED"
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
)

// Event is the envelope moving through the pipeline. Payload is one of the
// tagged variants below; Type tells consumers which one without reflection.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

// MatchSucceeded is delivered on the private queue of each party of a new
// pairing, including pairings produced by an agent auto-rematch.
type MatchSucceeded struct {
	Session     domain.SessionID
	Participant domain.ParticipantID
	Partner     domain.ParticipantID
	Role        domain.Role
}

// ParticipantWaiting is delivered once to a requester that was enqueued.
type ParticipantWaiting struct {
	Participant domain.ParticipantID
	Role        domain.Role
}

// MessagePosted is the raw message as appended to a live session,
// before moderation.
type MessagePosted struct {
	ID      uuid.UUID
	Session domain.SessionID
	Author  domain.ParticipantID
	Content string
	At      time.Time
}

// SanitizedMessage is the broadcastable form of a message: censored
// content plus the detected language.
type SanitizedMessage struct {
	ID            uuid.UUID
	Session       domain.SessionID
	Author        domain.ParticipantID
	Content       string
	Lang          string
	CensoredWords []string
	At            time.Time
}

type SessionEnded struct {
	Session domain.SessionID
	EndedBy domain.ParticipantID
	At      time.Time
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

// SessionOf extracts the session a payload is scoped to, when it has one.
// Direct notifications (match results, waiting) are not session-scoped.
func SessionOf(e Event) (domain.SessionID, bool) {
	switch p := e.Payload.(type) {
	case SanitizedMessage:
		return p.Session, true
	case MessagePosted:
		return p.Session, true
	case SessionEnded:
		return p.Session, true
	default:
		return 0, false
	}
}
