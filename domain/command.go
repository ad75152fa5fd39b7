package domain

import "time"

// Command is an intent validated at the transport boundary and carried
// to the match workers through the orchestrator.
type Command interface {
	Name() string
}

type RequestMatchCommand struct {
	Participant ParticipantID
	Role        Role
}

func (RequestMatchCommand) Name() string { return "RequestMatch" }

type PostMessageCommand struct {
	Session   SessionID
	SenderID  ParticipantID
	Content   string
	CreatedAt time.Time
}

func (PostMessageCommand) Name() string { return "PostMessage" }

type EndSessionCommand struct {
	Session     SessionID
	Participant ParticipantID
}

func (EndSessionCommand) Name() string { return "EndSession" }
