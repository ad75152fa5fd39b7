//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// IConnRegistry tracks which participants are connected and which session
// scoped channel each one subscribes to.
type IConnRegistry interface {
	Attach(participantID domain.ParticipantID, sink EventSink)
	Detach(participantID domain.ParticipantID)
	Join(participantID domain.ParticipantID, sessionID domain.SessionID)
	Leave(participantID domain.ParticipantID, sessionID domain.SessionID)
	DropSession(sessionID domain.SessionID)
	SinkFor(participantID domain.ParticipantID) (EventSink, bool)
	SinksForSession(sessionID domain.SessionID) []EventSink
}

// Notifier delivers match results and waiting notices to a participant's
// private queue. A delivery failure is logged by the caller and never rolls
// back the pairing that preceded it.
type Notifier interface {
	NotifyMatch(ctx context.Context, participantID domain.ParticipantID, payload event.MatchSucceeded) error
	NotifyWaiting(ctx context.Context, participantID domain.ParticipantID, payload event.ParticipantWaiting) error
}

// IMatcher is the matching core as seen by the workers.
type IMatcher interface {
	RequestMatch(ctx context.Context, participantID domain.ParticipantID, role domain.Role) (domain.MatchOutcome, error)
	EndSession(ctx context.Context, sessionID domain.SessionID, participantID domain.ParticipantID) bool
	AppendMessage(sessionID domain.SessionID, message domain.Message) bool
}
