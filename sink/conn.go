package sink

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain/event"
)

// ConnSink bridges the fanout to one connected participant. The transport
// handler owns the channel side and pushes whatever arrives down its wire.
type ConnSink struct {
	Events chan event.Event
}

func NewConnSink(bufferSize int) *ConnSink {
	return &ConnSink{Events: make(chan event.Event, bufferSize)}
}

var _ contract.EventSink = (*ConnSink)(nil)

// Consume is called by the fanout. A slow consumer never blocks the
// pipeline: when the buffer is full the event is dropped for this
// connection only.
func (s *ConnSink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
