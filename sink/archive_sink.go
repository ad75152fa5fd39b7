package sink

import (
	"context"
	"cx-chat/domain/event"
	"cx-chat/observability"
	"cx-chat/repositories"
	"fmt"
	"log/slog"
)

// ArchiveSink persists every relayed message. Persistence failure is
// logged and counted but never fatal: the in-memory session history has
// already retained the message.
type ArchiveSink struct {
	repository repositories.IMessageRepository
	monitoring *observability.Monitor
	log        *slog.Logger
}

func NewArchiveSink(repository repositories.IMessageRepository, monitoring *observability.Monitor, log *slog.Logger) ArchiveSink {
	return ArchiveSink{repository: repository, monitoring: monitoring, log: log}
}

func (d ArchiveSink) Consume(_ context.Context, e event.Event) error {
	switch evt := e.Payload.(type) {
	case event.SanitizedMessage:
		if err := d.repository.StoreMessage(toArchivedMessage(evt)); err != nil {
			d.monitoring.IncrPersistFailures()
			d.log.Error("Message persistence failed",
				"session", evt.Session,
				"message_id", evt.ID,
				"error", err)
		}
		return nil
	default:
		d.log.Debug(fmt.Sprintf("Not archived event : %v", e.Type))
		return nil
	}
}

func toArchivedMessage(evt event.SanitizedMessage) repositories.ArchivedMessage {
	return repositories.ArchivedMessage{
		ID:      evt.ID,
		Session: int64(evt.Session),
		Author:  int(evt.Author),
		Content: evt.Content,
		Lang:    evt.Lang,
		At:      evt.At,
	}
}
