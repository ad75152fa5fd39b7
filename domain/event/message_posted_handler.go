package event

import (
	"cx-chat/errors"
	"log/slog"
)

// MessagePostedHandler counts relayed messages and the ones that required
// censoring, to spot rooms with heavy moderation activity.
type MessagePostedHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewMessagePostedHandler(log *slog.Logger, counter *Counter) *MessagePostedHandler {
	return &MessagePostedHandler{log: log, counter: counter}
}

func (h *MessagePostedHandler) Handle(event Event) {
	switch event.Type {
	case SanitizedMessageType:
		payload, ok := event.Payload.(SanitizedMessage)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(SanitizedMessageType)
		if len(payload.CensoredWords) > 0 {
			h.log.Debug("Censored message relayed",
				"session", payload.Session,
				"words", len(payload.CensoredWords))
		}
	case SessionEndedType:
		h.counter.Increment(SessionEndedType)
	}
}
