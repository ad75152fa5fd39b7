package workers

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/observability"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Ensure *MatchWorker implements the contract.Worker interface at compile time.
// This prevents "type mismatch" errors from appearing late in other packages
// and acts as a static assertion of our architectural rules.
var _ contract.Worker = (*MatchWorker)(nil)

// MatchWorker drains the command channel and drives the matching core.
// Several instances may run concurrently over the same channel; the core
// owns the locking, so workers never coordinate with each other.
type MatchWorker struct {
	matcher   contract.IMatcher
	commands  chan domain.Command
	rawEvents chan event.Event
	monitor   *observability.Monitor
	log       *slog.Logger
}

func NewMatchWorker(
	matcher contract.IMatcher,
	commands chan domain.Command,
	rawEvents chan event.Event,
	monitor *observability.Monitor,
	log *slog.Logger) *MatchWorker {
	return &MatchWorker{
		matcher:   matcher,
		commands:  commands,
		rawEvents: rawEvents,
		monitor:   monitor,
		log:       log,
	}
}

func (w *MatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.handle(ctx, cmd); err != nil {
				return err
			}
		}
	}
}

func (w *MatchWorker) handle(ctx context.Context, cmd domain.Command) error {
	switch c := cmd.(type) {
	case domain.RequestMatchCommand:
		if _, err := w.matcher.RequestMatch(ctx, c.Participant, c.Role); err != nil {
			w.log.Warn("Match request rejected", "participant", c.Participant, "error", err)
		}
	case domain.PostMessageCommand:
		return w.handlePost(ctx, c)
	case domain.EndSessionCommand:
		if ended := w.matcher.EndSession(ctx, c.Session, c.Participant); ended {
			w.monitor.IncrSessionsEnded()
			return w.emit(ctx, toSessionEndedEvent(c))
		}
		w.log.Debug("End ignored, session already gone", "session", c.Session)
	default:
		w.log.Warn("Unknown command", "name", cmd.Name())
	}
	return nil
}

// handlePost appends first, emits second. A message refused by the core
// (session already ended) is counted and never reaches the pipeline.
func (w *MatchWorker) handlePost(ctx context.Context, c domain.PostMessageCommand) error {
	msg := domain.Message{
		ID:        uuid.New(),
		Session:   c.Session,
		SenderID:  c.SenderID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if appended := w.matcher.AppendMessage(c.Session, msg); !appended {
		w.monitor.IncrMessagesDropped()
		w.log.Debug("Message dropped, session not live", "session", c.Session)
		return nil
	}
	return w.emit(ctx, toMessagePostedEvent(msg))
}

func (w *MatchWorker) emit(ctx context.Context, evt event.Event) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case w.rawEvents <- evt:
		return nil
	}
}

func toMessagePostedEvent(msg domain.Message) event.Event {
	return event.Event{
		Type:      event.MessagePostedType,
		CreatedAt: time.Now().UTC(),
		Payload: event.MessagePosted{
			ID:      msg.ID,
			Session: msg.Session,
			Author:  msg.SenderID,
			Content: msg.Content,
			At:      msg.CreatedAt,
		},
	}
}

func toSessionEndedEvent(c domain.EndSessionCommand) event.Event {
	return event.Event{
		Type:      event.SessionEndedType,
		CreatedAt: time.Now().UTC(),
		Payload: event.SessionEnded{
			Session: c.Session,
			EndedBy: c.Participant,
			At:      time.Now().UTC(),
		},
	}
}
