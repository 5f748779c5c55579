package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/config"
	"lifenav-server/navigator-api/internal/domain/chat"
	"lifenav-server/navigator-api/internal/domain/decision"
	"lifenav-server/navigator-api/internal/domain/goal"
	"lifenav-server/navigator-api/internal/domain/insight"
	"lifenav-server/navigator-api/internal/infrastructure/database"
	genaiclient "lifenav-server/navigator-api/internal/infrastructure/genai"
	"lifenav-server/navigator-api/internal/infrastructure/logger"
	"lifenav-server/navigator-api/internal/infrastructure/observability"
	conversationrepo "lifenav-server/navigator-api/internal/infrastructure/repository/conversation"
	decisionrepo "lifenav-server/navigator-api/internal/infrastructure/repository/decision"
	goalrepo "lifenav-server/navigator-api/internal/infrastructure/repository/goal"
	insightrepo "lifenav-server/navigator-api/internal/infrastructure/repository/insight"
	"lifenav-server/navigator-api/internal/interfaces/httpserver"
)

// Application bundles the long-running pieces of the navigator service.
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

// NewApplication constructs the application.
func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the HTTP server until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	conversationRepository := conversationrepo.NewPostgresRepository(db)
	messageRepository := conversationrepo.NewPostgresMessageRepository(db)
	decisionRepository := decisionrepo.NewPostgresRepository(db)
	goalRepository := goalrepo.NewPostgresRepository(db)
	snapshotRepository := insightrepo.NewPostgresRepository(db)

	modelClient := genaiclient.NewClient(cfg.GenAIAPIURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout, log)

	chatService := chat.NewService(conversationRepository, messageRepository, modelClient, log)
	decisionService := decision.NewService(decisionRepository, modelClient, log)
	goalService := goal.NewService(goalRepository, log)
	insightService := insight.NewService(snapshotRepository, log)

	httpServer := httpserver.New(cfg, log, chatService, decisionService, goalService, insightService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
