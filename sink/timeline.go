package sink

import (
	"context"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"sync"
)

// Timeline holds an in-memory projection of the last relayed messages per
// session, serving diagnostics without touching the archive.
type Timeline struct {
	mu       sync.RWMutex
	limit    int
	messages map[domain.SessionID][]domain.Message
}

func NewTimeline(limit int) *Timeline {
	return &Timeline{
		limit:    limit,
		messages: make(map[domain.SessionID][]domain.Message),
	}
}

func (t *Timeline) Consume(_ context.Context, e event.Event) error {
	switch evt := e.Payload.(type) {
	case event.SanitizedMessage:
		t.mu.Lock()
		defer t.mu.Unlock()
		history := append(t.messages[evt.Session], fromEvent(evt))
		if t.limit > 0 && len(history) > t.limit {
			history = history[len(history)-t.limit:]
		}
		t.messages[evt.Session] = history
	case event.SessionEnded:
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.messages, evt.Session)
	}
	return nil
}

// Recent returns a copy of the projected history for one session.
func (t *Timeline) Recent(sessionID domain.SessionID) []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	history := t.messages[sessionID]
	out := make([]domain.Message, len(history))
	copy(out, history)
	return out
}

func fromEvent(evt event.SanitizedMessage) domain.Message {
	return domain.Message{
		ID:        evt.ID,
		Session:   evt.Session,
		SenderID:  evt.Author,
		Content:   evt.Content,
		CreatedAt: evt.At,
	}
}
