package service_provider

import (
	"CommunityOracle/internal/adapters/config"
	"CommunityOracle/internal/adapters/controller/httpapi"
	"CommunityOracle/internal/adapters/directory"
	"CommunityOracle/internal/adapters/repository/redisstate"
	"CommunityOracle/internal/domain/service/oracle"
	"CommunityOracle/internal/domain/service/subredditinfo"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

type ServiceProvider struct {
	config config.Config
	log    *slog.Logger

	redisClient *redis.Client

	infoService   *subredditinfo.Service
	oracleService *oracle.Service

	server *httpapi.Server
}

func New() (*ServiceProvider, error) {
	sp := &ServiceProvider{}
	if err := sp.init(); err != nil {
		return nil, err
	}
	return sp, nil
}

func (sp *ServiceProvider) Server() *httpapi.Server {
	return sp.server
}

func (sp *ServiceProvider) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sp.config = cfg
	sp.log = newLogger(cfg.LogLevel)

	ctx := context.Background()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	sp.redisClient = redisClient

	historyRepo := redisstate.NewHistoryRepo(redisClient, cfg.HistoryTTL())
	cacheRepo := redisstate.NewSubredditCacheRepo(redisClient, cfg.CacheTTL())
	directoryClient := directory.NewClient(cfg.DirectoryBaseURL, cfg.DirectoryTimeout())

	sp.infoService = subredditinfo.New(cacheRepo, directoryClient, sp.log)
	sp.oracleService = oracle.New(historyRepo, sp.infoService, rand.Intn, sp.log)

	handler := httpapi.NewHandler(sp.oracleService, func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}, cfg.HistoryLimit, sp.log)
	sp.server = httpapi.NewServer(cfg.HTTPAddr, handler, cfg.AllowedOrigins, sp.log)

	sp.log.Info("service provider initialized", "addr", cfg.HTTPAddr)
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
