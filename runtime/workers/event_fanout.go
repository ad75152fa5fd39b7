package workers

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain/event"
	"cx-chat/observability"
	"log/slog"
	"time"
)

const sinkTimeout = 2 * time.Second

// EventFanout broadcasts sanitized domain events to multiple in-process
// consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// Permanent sinks (archive, index, timeline) receive every event. Connected
// participants only receive the events scoped to a session they are part of.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	Log         *slog.Logger
	DomainEvent chan event.Event
	Telemetry   chan event.Event
	conns       contract.IConnRegistry
	monitor     *observability.Monitor
	sinks       []contract.EventSink
}

func NewEventFanout(log *slog.Logger, domainEvent, telemetry chan event.Event,
	conns contract.IConnRegistry, monitor *observability.Monitor) *EventFanout {
	return &EventFanout{
		Log:         log,
		DomainEvent: domainEvent,
		Telemetry:   telemetry,
		conns:       conns,
		monitor:     monitor,
	}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.DomainEvent:
			w.Fanout(ctx, evt)
			select {
			case w.Telemetry <- evt:
			default:
				w.Log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.Log.Debug("Context done, stopping domainEvent send")
			return nil
		}
	}
}

// Fanout One sink for each event, then the session's live connections.
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	consumeCtx, cancel := context.WithTimeout(ctx, sinkTimeout)
	defer cancel()

	for _, sink := range w.sinks {
		if err := sink.Consume(consumeCtx, evt); err != nil {
			w.Log.Error("Sink rejected event", "type", evt.Type, "error", err)
		}
	}

	sessionID, scoped := event.SessionOf(evt)
	if !scoped {
		return
	}
	for _, sink := range w.conns.SinksForSession(sessionID) {
		if err := sink.Consume(consumeCtx, evt); err != nil {
			w.Log.Debug("Connection missed event", "session", sessionID, "error", err)
		}
	}
	switch evt.Type {
	case event.SanitizedMessageType:
		w.monitor.IncrMessagesRelayed()
	case event.SessionEndedType:
		// The end notice is the last broadcast on this channel.
		w.conns.DropSession(sessionID)
	}
}
