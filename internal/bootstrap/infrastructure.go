package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"predator-web/internal/config"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/service"
	"predator-web/pkg/database"
	"predator-web/pkg/llm"
	"predator-web/pkg/llm/factory"
	pktNats "predator-web/pkg/nats"
)

// Infrastructure holds the external connections. Every field except Logger
// may be nil when the matching backend is not configured.
type Infrastructure struct {
	Logger   logger.ILogger
	WSLogger logger.ILogger
	DB       *gorm.DB
	Redis    *redis.Client
	Nats     *pktNats.Publisher
	LLM      llm.LLMProvider
}

func NewInfrastructure(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	infra := &Infrastructure{
		Logger:   sysLogger,
		WSLogger: logger.NewIsolatedLogger("logs/consultant.log"),
	}

	// Database, only needed when the catalog lives there
	if cfg.Database.CatalogSource == service.CatalogSourceDatabase {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			return nil, fmt.Errorf("catalog database: %w", err)
		}
		infra.DB = db
	}

	// Redis
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
			_ = rdb.Close()
		} else {
			infra.Redis = rdb
		}
	}

	// NATS
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			infra.Nats = natsPub
		}
	}

	// LLM
	provider, err := factory.NewLLMProvider(ctx, cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL, cfg.Keys.GoogleGemini)
	if err != nil {
		// The consultant stays up and answers with its offline reply.
		sysLogger.Error("BOOTSTRAP", "Failed to initialize LLM Provider", map[string]interface{}{"error": err.Error()})
		provider = llm.Unavailable(err)
	} else {
		sysLogger.Info("BOOTSTRAP", "Using LLM Provider", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}
	infra.LLM = provider

	return infra, nil
}

func (i *Infrastructure) Close() {
	if i.Nats != nil {
		i.Nats.Close()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		if sqlDB, err := i.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = i.Logger.Sync()
}
