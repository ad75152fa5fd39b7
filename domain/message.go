package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event appended to a session.
type Message struct {
	ID        uuid.UUID // unique identifier
	Session   SessionID
	SenderID  ParticipantID
	Content   string
	CreatedAt time.Time
}
