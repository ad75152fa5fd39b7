// Package gateway is the transport boundary. It validates inbound frames,
// turns them into commands for the service layer, and converts pipeline
// events back into client-facing frames.
package gateway

import (
	"context"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/errors"
	"cx-chat/repositories"
	"cx-chat/services"
	"cx-chat/sink"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Gateway struct {
	service    services.IChatService
	bufferSize int
	log        *slog.Logger
}

func NewGateway(service services.IChatService, bufferSize int, log *slog.Logger) *Gateway {
	return &Gateway{service: service, bufferSize: bufferSize, log: log}
}

// Connect registers a participant connection and returns its private event
// queue. The caller owns the draining loop.
func (g *Gateway) Connect(participantID domain.ParticipantID) *sink.ConnSink {
	queue := sink.NewConnSink(g.bufferSize)
	g.service.Connect(participantID, queue)
	g.log.Info("Participant connected", "participant", participantID)
	return queue
}

func (g *Gateway) Disconnect(participantID domain.ParticipantID) {
	g.service.Disconnect(participantID)
	g.log.Info("Participant disconnected", "participant", participantID)
}

// HandleJoin admits a participant into the matching flow. The outcome
// (matched or waiting) arrives later on the participant's queue.
func (g *Gateway) HandleJoin(frame JoinFrame) error {
	if err := validate.Struct(frame); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrGatewayRejected, err)
	}
	role, err := domain.ParseRole(frame.Role)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrGatewayRejected, err)
	}
	g.service.RequestMatch(domain.ParticipantID(frame.Participant), role)
	return nil
}

func (g *Gateway) HandleChat(frame ChatFrame) error {
	if err := validate.Struct(frame); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrGatewayRejected, err)
	}
	g.service.PostMessage(domain.PostMessageCommand{
		Session:   domain.SessionID(frame.Session),
		SenderID:  domain.ParticipantID(frame.Participant),
		Content:   frame.Content,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (g *Gateway) HandleLeave(frame LeaveFrame) error {
	if err := validate.Struct(frame); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrGatewayRejected, err)
	}
	g.service.EndSession(domain.EndSessionCommand{
		Session:     domain.SessionID(frame.Session),
		Participant: domain.ParticipantID(frame.Participant),
	})
	return nil
}

func (g *Gateway) HandleTranscript(frame TranscriptRequest) ([]domain.Message, *string, error) {
	if err := validate.Struct(frame); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrGatewayRejected, err)
	}
	return g.service.GetTranscript(domain.SessionID(frame.Session), frame.Cursor)
}

func (g *Gateway) HandleSearch(ctx context.Context, frame SearchRequest) ([]repositories.MessageHit, error) {
	if err := validate.Struct(frame); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrGatewayRejected, err)
	}
	return g.service.SearchTranscripts(ctx, frame.Query)
}

// ToFrame converts a pipeline event into its client-facing frame.
// Events without a client representation return false.
func ToFrame(evt event.Event) (OutboundFrame, bool) {
	switch p := evt.Payload.(type) {
	case event.MatchSucceeded:
		return OutboundFrame{
			Kind:        KindMatched,
			Session:     int64(p.Session),
			Participant: int(p.Participant),
			Partner:     int(p.Partner),
			Role:        string(p.Role),
			At:          evt.CreatedAt,
		}, true
	case event.ParticipantWaiting:
		return OutboundFrame{
			Kind:        KindWaiting,
			Participant: int(p.Participant),
			Role:        string(p.Role),
			At:          evt.CreatedAt,
		}, true
	case event.SanitizedMessage:
		return OutboundFrame{
			Kind:    KindMessage,
			Session: int64(p.Session),
			Author:  int(p.Author),
			Content: p.Content,
			Lang:    p.Lang,
			At:      p.At,
		}, true
	case event.SessionEnded:
		return OutboundFrame{
			Kind:    KindSessionEnd,
			Session: int64(p.Session),
			Author:  int(p.EndedBy),
			At:      p.At,
		}, true
	default:
		return OutboundFrame{}, false
	}
}
