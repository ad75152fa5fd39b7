package services

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain"
	"cx-chat/domain/search"
	"cx-chat/observability"
	"cx-chat/repositories"
	"cx-chat/runtime"
)

type IChatService interface {
	Connect(participantID domain.ParticipantID, sink contract.EventSink)
	Disconnect(participantID domain.ParticipantID)
	RequestMatch(participantID domain.ParticipantID, role domain.Role)
	PostMessage(cmd domain.PostMessageCommand)
	EndSession(cmd domain.EndSessionCommand)
	GetTranscript(sessionID domain.SessionID, cursor *string) ([]domain.Message, *string, error)
	SearchTranscripts(ctx context.Context, rawQuery string) ([]repositories.MessageHit, error)
	Stats() observability.Stats
}

// ChatService is the single entry point the gateway talks to. Mutating
// operations are fire and forget; they go through the command channel and
// their outcome comes back as events on the caller's sink.
type ChatService struct {
	orchestrator *runtime.Orchestrator
}

func NewChatService(o *runtime.Orchestrator) *ChatService {
	return &ChatService{orchestrator: o}
}

func (s *ChatService) Connect(participantID domain.ParticipantID, sink contract.EventSink) {
	s.orchestrator.AttachParticipant(participantID, sink)
}

func (s *ChatService) Disconnect(participantID domain.ParticipantID) {
	s.orchestrator.DetachParticipant(participantID)
}

func (s *ChatService) RequestMatch(participantID domain.ParticipantID, role domain.Role) {
	s.orchestrator.Dispatch(domain.RequestMatchCommand{Participant: participantID, Role: role})
}

func (s *ChatService) PostMessage(cmd domain.PostMessageCommand) {
	s.orchestrator.Dispatch(cmd)
}

func (s *ChatService) EndSession(cmd domain.EndSessionCommand) {
	s.orchestrator.Dispatch(cmd)
}

func (s *ChatService) GetTranscript(sessionID domain.SessionID, cursor *string) ([]domain.Message, *string, error) {
	return s.orchestrator.GetTranscript(sessionID, cursor)
}

func (s *ChatService) SearchTranscripts(ctx context.Context, rawQuery string) ([]repositories.MessageHit, error) {
	return s.orchestrator.SearchTranscripts(ctx, search.NewQuery(rawQuery))
}

func (s *ChatService) Stats() observability.Stats {
	return s.orchestrator.Stats()
}
