//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"lifenav-server/navigator-api/internal/config"
	"lifenav-server/navigator-api/internal/domain/chat"
	conversationDomain "lifenav-server/navigator-api/internal/domain/conversation"
	decisionDomain "lifenav-server/navigator-api/internal/domain/decision"
	genaiDomain "lifenav-server/navigator-api/internal/domain/genai"
	goalDomain "lifenav-server/navigator-api/internal/domain/goal"
	insightDomain "lifenav-server/navigator-api/internal/domain/insight"
	"lifenav-server/navigator-api/internal/infrastructure/database"
	genaiclient "lifenav-server/navigator-api/internal/infrastructure/genai"
	"lifenav-server/navigator-api/internal/infrastructure/logger"
	conversationrepo "lifenav-server/navigator-api/internal/infrastructure/repository/conversation"
	decisionrepo "lifenav-server/navigator-api/internal/infrastructure/repository/decision"
	goalrepo "lifenav-server/navigator-api/internal/infrastructure/repository/goal"
	insightrepo "lifenav-server/navigator-api/internal/infrastructure/repository/insight"
	"lifenav-server/navigator-api/internal/interfaces/httpserver"
)

var navigatorSet = wire.NewSet(
	conversationrepo.NewPostgresRepository,
	wire.Bind(new(conversationDomain.Repository), new(*conversationrepo.PostgresRepository)),
	conversationrepo.NewPostgresMessageRepository,
	wire.Bind(new(conversationDomain.MessageRepository), new(*conversationrepo.PostgresMessageRepository)),
	decisionrepo.NewPostgresRepository,
	wire.Bind(new(decisionDomain.Repository), new(*decisionrepo.PostgresRepository)),
	goalrepo.NewPostgresRepository,
	wire.Bind(new(goalDomain.Repository), new(*goalrepo.PostgresRepository)),
	insightrepo.NewPostgresRepository,
	wire.Bind(new(insightDomain.Repository), new(*insightrepo.PostgresRepository)),
	newModelClient,
	wire.Bind(new(genaiDomain.Client), new(*genaiclient.Client)),
	chat.NewService,
	wire.Bind(new(chat.Service), new(*chat.ServiceImpl)),
	decisionDomain.NewService,
	wire.Bind(new(decisionDomain.Service), new(*decisionDomain.ServiceImpl)),
	goalDomain.NewService,
	wire.Bind(new(goalDomain.Service), new(*goalDomain.ServiceImpl)),
	insightDomain.NewService,
	wire.Bind(new(insightDomain.Service), new(*insightDomain.ServiceImpl)),
)

// BuildApplication assembles the navigator service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newGormDB,
		navigatorSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newGormDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newModelClient(cfg *config.Config, log zerolog.Logger) *genaiclient.Client {
	return genaiclient.NewClient(cfg.GenAIAPIURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout, log)
}
