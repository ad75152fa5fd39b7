// Package runtime handles command dispatch, event propagation, and the worker
// lifecycle. It orchestrates the system without containing business logic or
// matching rules.
package runtime

import (
	"context"
	"cx-chat/contract"
	"cx-chat/domain"
	"cx-chat/domain/event"
	"cx-chat/domain/search"
	"cx-chat/matching"
	"cx-chat/moderation"
	"cx-chat/observability"
	"cx-chat/repositories"
	"cx-chat/runtime/workers"
	"cx-chat/sink"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

//go:embed censored/*
var censoredFolder embed.FS

const timelineLimit = 50

type Orchestrator struct {
	mu                sync.Mutex
	log               *slog.Logger
	numWorkers        int
	engine            *matching.Engine
	sessions          *matching.SessionRegistry
	conns             contract.IConnRegistry
	monitor           *observability.Monitor
	permanentSinks    []contract.EventSink
	supervisor        contract.ISupervisor
	commands          chan domain.Command
	rawEvents         chan event.Event
	domainEvents      chan event.Event
	telemetryEvents   chan event.Event
	messageRepository repositories.IMessageRepository
	searchRepository  repositories.ISearchRepository
	metricInterval    time.Duration
	charReplacement   rune
}

func NewOrchestrator(log *slog.Logger,
	messageRepository repositories.IMessageRepository,
	searchRepository repositories.ISearchRepository,
	numWorkers, bufferSize int,
	metricInterval time.Duration, charReplacement rune) *Orchestrator {
	telemetryEvents := make(chan event.Event, bufferSize)
	conns := NewConnRegistry()
	monitor := observability.NewMonitor()
	sessions := matching.NewSessionRegistry()
	notifier := NewQueueNotifier(conns, monitor, log)

	return &Orchestrator{
		log:               log,
		numWorkers:        numWorkers,
		engine:            matching.NewEngine(log, sessions, notifier),
		sessions:          sessions,
		conns:             conns,
		monitor:           monitor,
		supervisor:        workers.NewSupervisor(log, telemetryEvents),
		commands:          make(chan domain.Command, bufferSize),
		rawEvents:         make(chan event.Event, bufferSize),
		domainEvents:      make(chan event.Event, bufferSize),
		telemetryEvents:   telemetryEvents,
		messageRepository: messageRepository,
		searchRepository:  searchRepository,
		metricInterval:    metricInterval,
		charReplacement:   charReplacement,
	}
}

func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Dispatch hands a command to the worker pool. The channel is bounded; under
// sustained overload commands are dropped rather than blocking the caller.
func (o *Orchestrator) Dispatch(cmd domain.Command) {
	select {
	case o.commands <- cmd:
	default:
		o.log.Warn(fmt.Sprintf("Command channel full, dropping %s", cmd.Name()))
	}
}

// AttachParticipant binds a private event queue to a connected participant.
// If the participant already sits in a live session, the subscription is
// restored as well.
func (o *Orchestrator) AttachParticipant(participantID domain.ParticipantID, s contract.EventSink) {
	o.conns.Attach(participantID, s)
	if sessionID, ok := o.sessions.SessionOf(participantID); ok {
		o.conns.Join(participantID, sessionID)
	}
}

func (o *Orchestrator) DetachParticipant(participantID domain.ParticipantID) {
	o.conns.Detach(participantID)
}

// JoinSession subscribes a connected participant to a session broadcast.
func (o *Orchestrator) JoinSession(participantID domain.ParticipantID, sessionID domain.SessionID) {
	o.conns.Join(participantID, sessionID)
}

func (o *Orchestrator) GetTranscript(sessionID domain.SessionID, cursor *string) ([]domain.Message, *string, error) {
	archived, next, err := o.messageRepository.GetMessages(int64(sessionID), cursor)
	if err != nil {
		return nil, nil, err
	}
	return fromArchivedMessages(sessionID, archived), next, nil
}

func fromArchivedMessages(sessionID domain.SessionID, archived []repositories.ArchivedMessage) []domain.Message {
	return lo.Map(archived, func(item repositories.ArchivedMessage, _ int) domain.Message {
		return domain.Message{
			ID:        item.ID,
			Session:   sessionID,
			SenderID:  domain.ParticipantID(item.Author),
			Content:   item.Content,
			CreatedAt: item.At,
		}
	})
}

func (o *Orchestrator) SearchTranscripts(ctx context.Context, query *search.Query) ([]repositories.MessageHit, error) {
	return o.searchRepository.Search(ctx, query)
}

func (o *Orchestrator) Stats() observability.Stats {
	return o.monitor.GetLatest()
}

// WaitingCounts reports the sizes of both waiting pools.
func (o *Orchestrator) WaitingCounts() (customers, agents int) {
	c, a := o.engine.QueueStatus()
	return len(c), len(a)
}

func (o *Orchestrator) LiveSessions() int {
	return o.sessions.Count()
}

// Start initiates the orchestrator by preparing all components (workers,
// moderation, pipeline) and then starting the supervisor. It uses a
// preparation pattern to minimize mutex locking time.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	// Heavy tasks like I/O (loading files) and CPU (Aho-Corasick build) are done here.
	matchWorkers := o.prepareMatchWorkers()

	moderationWorker, err := o.prepareModeration("censored", o.charReplacement)
	if err != nil {
		return err
	}

	fanoutWorker, newSinks := o.preparePipeline()
	observers := o.prepareObservers()

	// 2. Critical Section (Short Lock)
	// We only lock to update the internal state and the supervisor.
	o.mu.Lock()
	o.permanentSinks = append(o.permanentSinks, newSinks...)

	// Registering all workers to the supervisor
	o.supervisor.Add(moderationWorker)
	o.supervisor.Add(fanoutWorker)
	for _, w := range matchWorkers {
		o.supervisor.Add(w)
	}
	for _, w := range observers {
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// prepareMatchWorkers creates the worker pool draining the command channel.
func (o *Orchestrator) prepareMatchWorkers() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewMatchWorker(o.engine, o.commands, o.rawEvents, o.monitor, o.log))
	}
	return res
}

// prepareModeration loads censored words and builds the Aho-Corasick automaton.
func (o *Orchestrator) prepareModeration(path string, charReplacement rune) (contract.Worker, error) {
	loader := NewCensoredLoader(censoredFolder)
	data, err := loader.LoadAll(path)
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	o.log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, charReplacement)
	if err != nil {
		return nil, err
	}

	return workers.NewModerationWorker(moderator, o.rawEvents, o.domainEvents, o.log), nil
}

// preparePipeline initializes the sinks and the fanout worker.
func (o *Orchestrator) preparePipeline() (contract.Worker, []contract.EventSink) {
	// Local sinks that will be added to permanentSinks
	newSinks := []contract.EventSink{
		sink.NewTimeline(timelineLimit),
		sink.NewArchiveSink(o.messageRepository, o.monitor, o.log),
		sink.NewIndexSink(o.searchRepository, o.log),
	}

	fanoutWorker := workers.NewEventFanout(
		o.log,
		o.domainEvents,
		o.telemetryEvents,
		o.conns,
		o.monitor,
	)
	fanoutWorker.Add(o.permanentSinks...)
	fanoutWorker.Add(newSinks...)

	return fanoutWorker, newSinks
}

// prepareObservers wires telemetry, health sampling, and channel monitoring.
func (o *Orchestrator) prepareObservers() []contract.Worker {
	counter := event.NewCounter()
	handlers := []event.Handler{
		event.NewMatchSucceededHandler(o.log, counter),
		event.NewMessagePostedHandler(o.log, counter),
		event.NewWorkerRestartedAfterPanicHandler(o.log, counter),
	}

	channels := []workers.NamedChannel{
		{Name: "commands", Channel: o.commands},
		{Name: "rawEvents", Channel: o.rawEvents},
		{Name: "domainEvents", Channel: o.domainEvents},
	}

	return []contract.Worker{
		workers.NewTelemetryWorker(o.log, o.telemetryEvents, handlers),
		workers.NewHealthMonitoringWorker(o.log, o.monitor, o, o.metricInterval),
		workers.NewChannelCapacityWorker(o.log, channels, o.telemetryEvents, o.metricInterval),
	}
}

// Stop initiates a graceful shutdown of the orchestrator.
// It cancels the supervision context to signal workers to stop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
