package sink

import (
	"context"
	"cx-chat/domain/event"
	"cx-chat/repositories"
	"log/slog"
)

// IndexSink feeds the transcript search index. Indexing is best-effort:
// a failed document never blocks the relay path.
type IndexSink struct {
	repository repositories.ISearchRepository
	log        *slog.Logger
}

func NewIndexSink(repository repositories.ISearchRepository, log *slog.Logger) IndexSink {
	return IndexSink{repository: repository, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.Event) error {
	evt, ok := e.Payload.(event.SanitizedMessage)
	if !ok {
		return nil
	}
	if err := s.repository.Index(toArchivedMessage(evt)); err != nil {
		s.log.Warn("Message indexing failed",
			"session", evt.Session,
			"message_id", evt.ID,
			"error", err)
	}
	return nil
}
