package workers

import (
	"context"
	"cx-chat/domain/event"
	"cx-chat/moderation"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
)

// ModerationWorker sits between the raw pipeline and the fanout. Raw messages
// leave it censored and tagged with their detected language; every other
// event passes through untouched.
type ModerationWorker struct {
	moderator moderation.Moderator
	rawEvents chan event.Event
	events    chan event.Event
	log       *slog.Logger
}

func NewModerationWorker(moderator moderation.Moderator,
	rawEvents, events chan event.Event, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		moderator: moderator,
		rawEvents: rawEvents, events: events, log: log,
	}
}

func (w ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.rawEvents:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if posted, isRaw := e.Payload.(event.MessagePosted); isRaw {
				e = w.toSanitizedEvent(posted)
			}
			select {
			case <-ctx.Done():
				w.log.Debug("Stopping worker")
				return ctx.Err()
			case w.events <- e:
			}
		}
	}
}

func (w ModerationWorker) toSanitizedEvent(evt event.MessagePosted) event.Event {
	info := whatlanggo.Detect(evt.Content)
	langCode := info.Lang.Iso6391()

	sanitized, foundWords := w.moderator.Censor(evt.Content)
	if len(foundWords) > 0 {
		w.log.Info("Message censored",
			"session", evt.Session,
			"author", evt.Author,
			"lang", langCode,
			"words", len(foundWords))
	}

	return event.Event{
		Type:      event.SanitizedMessageType,
		CreatedAt: time.Now().UTC(),
		Payload: event.SanitizedMessage{
			ID:            evt.ID,
			Session:       evt.Session,
			Author:        evt.Author,
			Content:       sanitized,
			Lang:          langCode,
			CensoredWords: foundWords,
			At:            evt.At,
		}}
}
