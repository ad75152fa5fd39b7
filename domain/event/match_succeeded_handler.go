package event

import (
	"cx-chat/errors"
	"log/slog"
)

// MatchSucceededHandler handles events when a customer and an agent get
// paired. Useful for updating observability metrics, logging, or telemetry.
type MatchSucceededHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewMatchSucceededHandler(log *slog.Logger, counter *Counter) *MatchSucceededHandler {
	return &MatchSucceededHandler{log: log, counter: counter}
}

func (h *MatchSucceededHandler) Handle(event Event) {
	switch event.Type {
	case MatchSucceededType:
		if _, ok := event.Payload.(MatchSucceeded); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error())
			return
		}
		h.counter.Increment(MatchSucceededType)
	case ParticipantWaitingType:
		h.counter.Increment(ParticipantWaitingType)
	}
}
