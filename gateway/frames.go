package gateway

import "time"

// Frame kinds exchanged with connected clients. Inbound frames are validated
// before they produce any command; outbound frames mirror pipeline events.
const (
	KindJoin       = "JOIN"
	KindChat       = "CHAT"
	KindLeave      = "LEAVE"
	KindMatched    = "MATCHED"
	KindWaiting    = "WAITING"
	KindMessage    = "MESSAGE"
	KindSessionEnd = "SESSION_END"
)

type JoinFrame struct {
	Participant int    `json:"participant" validate:"required,gt=0"`
	Role        string `json:"role" validate:"required,oneof=CUSTOMER AGENT"`
}

type ChatFrame struct {
	Session     int64  `json:"session" validate:"required,gt=0"`
	Participant int    `json:"participant" validate:"required,gt=0"`
	Content     string `json:"content" validate:"required,max=2000"`
}

type LeaveFrame struct {
	Session     int64 `json:"session" validate:"required,gt=0"`
	Participant int   `json:"participant" validate:"required,gt=0"`
}

type TranscriptRequest struct {
	Session int64   `json:"session" validate:"required,gt=0"`
	Cursor  *string `json:"cursor,omitempty"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,max=256"`
}

// OutboundFrame is the single envelope written back to a client connection.
// Only the fields relevant to Kind are populated.
type OutboundFrame struct {
	Kind        string    `json:"kind"`
	Session     int64     `json:"session,omitempty"`
	Participant int       `json:"participant,omitempty"`
	Partner     int       `json:"partner,omitempty"`
	Role        string    `json:"role,omitempty"`
	Author      int       `json:"author,omitempty"`
	Content     string    `json:"content,omitempty"`
	Lang        string    `json:"lang,omitempty"`
	At          time.Time `json:"at,omitempty"`
}
