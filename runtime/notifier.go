package runtime

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/observability"
	"log/slog"
	"time"
)

// queueNotifier delivers match results and waiting notices straight to the
// target participant's private channel. A participant without an active
// connection simply misses the delivery; the pairing itself is already
// committed and must not be reversed.
type queueNotifier struct {
	registry   contract.IConnRegistry
	monitoring *observability.Monitor
	log        *slog.Logger
}

var _ contract.Notifier = (*queueNotifier)(nil)

func NewQueueNotifier(registry contract.IConnRegistry, monitoring *observability.Monitor, log *slog.Logger) contract.Notifier {
	return &queueNotifier{registry: registry, monitoring: monitoring, log: log}
}

func (n *queueNotifier) NotifyMatch(ctx context.Context, participantID domain.ParticipantID, payload event.MatchSucceeded) error {
	// Two deliveries per pairing; count the pairing once, on the customer side.
	if payload.Role == domain.Customer {
		n.monitoring.IncrMatchesMade()
	}
	// Subscribe the participant to the session broadcast right away so no
	// message relayed after the pairing is missed.
	n.registry.Join(participantID, payload.Session)
	return n.deliver(ctx, participantID, event.Event{
		Type:      event.MatchSucceededType,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	})
}

func (n *queueNotifier) NotifyWaiting(ctx context.Context, participantID domain.ParticipantID, payload event.ParticipantWaiting) error {
	n.monitoring.IncrWaitingNotices()
	return n.deliver(ctx, participantID, event.Event{
		Type:      event.ParticipantWaitingType,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	})
}

func (n *queueNotifier) deliver(ctx context.Context, participantID domain.ParticipantID, evt event.Event) error {
	sink, ok := n.registry.SinkFor(participantID)
	if !ok {
		n.log.Debug("No active connection for notification",
			"participant", participantID,
			"type", evt.Type)
		return nil
	}
	return sink.Consume(ctx, evt)
}
