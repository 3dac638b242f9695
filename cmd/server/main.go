package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/ramyaaaa4/sign-language-recognition/internal"
	"github.com/ramyaaaa4/sign-language-recognition/moderation"
	"github.com/ramyaaaa4/sign-language-recognition/observability"
	"github.com/ramyaaaa4/sign-language-recognition/repositories"
	"github.com/ramyaaaa4/sign-language-recognition/runtime"
	"github.com/ramyaaaa4/sign-language-recognition/runtime/workers"
	"github.com/ramyaaaa4/sign-language-recognition/services"
	"github.com/ramyaaaa4/sign-language-recognition/ws"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (like database cleanup)
// executes before the program exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	censorChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB) for the alert persistence collaborator
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation pipeline (embedded word lists)
	loader := runtime.NewCensoredLoader(runtime.CensoredFolder)
	data, err := loader.LoadAll("censored")
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("%d unique censored words loaded [%d languages]",
		len(data.Words), len(data.Languages)))
	moderator, err := moderation.NewModerator(data.Words, censorChar)
	if err != nil {
		return err
	}

	// 4. Coordination core
	registry := runtime.NewRegistry()
	directory := runtime.NewDirectory()
	monitor := observability.NewMonitor()
	alertRepository := repositories.NewAlertRepository(db, log)
	coordinator := runtime.NewCoordinator(
		log, registry, directory, alertRepository, &moderator, monitor,
		config.IdleThreshold, config.EmotionThreshold,
	)
	careService := services.NewCareService(coordinator)

	// 5. Supervision: reaper + telemetry run until shutdown
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewReaper(log, coordinator, config.ReapInterval))
	sup.Add(workers.NewTelemetry(log, coordinator, monitor, config.MetricInterval))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sup.Run(ctx)

	// 6. Gateway
	server := ws.NewServer(log, careService, alertRepository, config)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	srv := &http.Server{Addr: address, Handler: server.Router()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gateway", "address", address, "at", time.Now().UTC())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("gateway error: %w", err)
		}
	}()

	// 7. Wait for stop or error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
