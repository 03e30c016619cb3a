package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"google.golang.org/grpc"

	grpc3 "github.com/mama165/sdk-go/grpc"

	"world-chat/auth"
	chatgrpc "world-chat/grpc"
	"world-chat/internal"
	"world-chat/repositories"
	"world-chat/runtime"
	"world-chat/runtime/workers"
	"world-chat/sink"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatd terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (database, index) inside a function so they execute before os.Exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	notifier, err := runtime.NewNotifier(config.Locale)
	if err != nil {
		return exitConfig, err
	}

	// 2. Storage (BadgerDB audit log, Bluge index)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, ChatRecordMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// Words added at runtime by moderators live in Badger next to the chat log
	settings := config.Settings()
	dictionary, err := repositories.NewCensorDictionary(db).Words()
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to read censor dictionary: %w", err)
	}
	settings.CensoredWords = append(settings.CensoredWords, dictionary...)

	// 3. Sinks, Supervision & Orchestration
	chatLog := repositories.NewChatLogRepository(db, logger, lo.ToPtr(100))
	index := repositories.NewChatLogIndex(blugeWriter, logger, 20)
	indexSink := sink.NewIndexSink(index, logger, config.IndexBatchSize, config.IndexTimeout)
	stats := sink.NewStatsSink()

	supervisor := workers.NewSupervisor(logger).WithRestartInterval(config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, supervisor, config.Policy(), settings).
		Add(sink.NewDiskSink(chatLog, logger), indexSink, stats)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 5. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	unary := []grpc.UnaryServerInterceptor{grpc3.UnaryLoggingInterceptor(logger)}
	var stream []grpc.StreamServerInterceptor
	if config.AuthSecret != "" {
		unary = append(unary, auth.UnaryInterceptor([]byte(config.AuthSecret)))
		stream = append(stream, auth.StreamInterceptor([]byte(config.AuthSecret)))
	} else {
		logger.Warn("AUTH_SECRET is empty, trusting the player GUID header")
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(unary...), grpc.ChainStreamInterceptor(stream...))
	chatgrpc.NewChatGateway(logger, orchestrator, notifier, config.SessionBuffer).Register(s)

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Graceful Shutdown: streams end first, then the workers, then the last index batch
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	orchestrator.Stop()
	if err := indexSink.Flush(); err != nil {
		logger.Error("Final index flush failed", "error", err)
	}
	snapshot := stats.Snapshot()
	logger.Info("Program stopped cleanly", "chat_events", snapshot.Total, "recipients", snapshot.Recipients)

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
