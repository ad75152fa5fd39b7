package main

import (
	"context"
	"cx-chat/gateway"
	"cx-chat/internal"
	"cx-chat/repositories"
	"cx-chat/runtime"
	"cx-chat/services"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Matchmaker terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the service lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Search index (Bluge)
	blugeCfg := bluge.DefaultConfig(config.BlugeFilepath)
	blugeWriter, err := bluge.OpenWriter(blugeCfg)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	searchRepository := repositories.NewSearchRepository(blugeWriter, logger)

	// 4. Orchestrator & transport boundary
	orchestrator := runtime.NewOrchestrator(
		logger,
		messageRepository,
		searchRepository,
		config.NumberOfWorkers,
		config.BufferSize,
		config.MetricInterval,
		charReplacement,
	)

	chatService := services.NewChatService(orchestrator)
	gw := gateway.NewGateway(chatService, config.ConnectionBufferSize, logger)

	// 5. Lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- orchestrator.Start(ctx)
	}()

	logger.Info("Matchmaker started",
		"workers", config.NumberOfWorkers,
		"host", config.Host,
		"port", config.Port)

	// 6. Operator console on stdin
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		newConsole(gw, chatService).run(ctx, os.Stdin)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case <-consoleDone:
		logger.Info("Console closed")
	case err := <-errChan:
		if err != nil {
			return exitRuntime, err
		}
	}

	orchestrator.Stop()
	return exitOK, nil
}
