package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"Trellis/internal/adapters/console"
	"Trellis/internal/adapters/postgres"
	"Trellis/internal/adapters/telegram"
	"Trellis/internal/core/mvc"
	"Trellis/internal/shared/config"
	"Trellis/internal/shared/logger"
	"Trellis/internal/shared/metrics"
	"Trellis/internal/todo"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	baseLogger := logger.New(cfg.AppEnv == "dev")
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Str("frontend", cfg.Frontend).
		Str("backend", cfg.Backend).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Optional metrics endpoint
	if cfg.MetricsAddr != "" {
		go func() {
			baseLogger.Info().Str("addr", cfg.MetricsAddr).Msg("Serving metrics")
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				baseLogger.Error().Err(err).Msg("Metrics server failed")
			}
		}()
	}

	// 4. Choose the Model backend
	model, cleanup, err := buildModel(ctx, cfg, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize model backend")
	}
	defer cleanup()

	// 5. Run the chosen frontend
	switch cfg.Frontend {
	case config.FrontendConsole:
		err = runConsole(ctx, model, &baseLogger)
	case config.FrontendTelegram:
		err = runTelegram(ctx, cfg, model, &baseLogger)
	}
	if err != nil && ctx.Err() == nil {
		baseLogger.Fatal().Err(err).Msg("Frontend failed")
	}

	baseLogger.Info().Msg("Shutdown complete")
}

// buildModel constructs the configured Model backend and returns a cleanup
// function for its resources.
func buildModel(ctx context.Context, cfg *config.Config, baseLogger *zerolog.Logger) (mvc.Model[[]todo.Item], func(), error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, baseLogger)
		if err != nil {
			return nil, nil, err
		}
		model, err := postgres.NewTodoModel(ctx, db, baseLogger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return model, db.Close, nil

	default:
		return todo.NewMemoryModel(baseLogger), func() {}, nil
	}
}

// runConsole wires the console frontend: view + controller + interactive
// host over stdin/stdout.
func runConsole(ctx context.Context, model mvc.Model[[]todo.Item], baseLogger *zerolog.Logger) error {
	view := console.NewView(baseLogger)
	ctrl := todo.NewController[*console.Frame](model, view, baseLogger)
	host := console.NewHost(os.Stdin, os.Stdout, baseLogger)

	ctrl.OnUpdate(host.Mount)
	if err := ctrl.Run(ctx); err != nil {
		return err
	}
	return host.Serve(ctx)
}

// runTelegram wires the Telegram frontend: view + controller + long-polling
// host for the configured chat.
func runTelegram(ctx context.Context, cfg *config.Config, model mvc.Model[[]todo.Item], baseLogger *zerolog.Logger) error {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return err
	}
	baseLogger.Info().Str("username", api.Self.UserName).Msg("Bot API connected")

	view := telegram.NewView(cfg.Telegram.ChatID, baseLogger)
	ctrl := todo.NewController[tgbotapi.MessageConfig](model, view, baseLogger)
	host := telegram.NewHost(api, cfg.Telegram.ChatID, view, baseLogger)

	ctrl.OnUpdate(host.Mount)
	if err := ctrl.Run(ctx); err != nil {
		return err
	}
	return host.Serve(ctx)
}
