package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/devtask-ledger/backend/config"
	"github.com/devtask-ledger/backend/internal/client"
	"github.com/devtask-ledger/backend/internal/domain"
	"github.com/devtask-ledger/backend/internal/repository"
	"github.com/devtask-ledger/backend/pkg/cache"
	"github.com/devtask-ledger/backend/pkg/logger"
	"github.com/devtask-ledger/backend/pkg/router"
	"github.com/devtask-ledger/backend/pkg/xcontext"
	"github.com/devtask-ledger/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB
	redis   xredis.Client
	cache   cache.Cache

	developerRepo   repository.DeveloperRepository
	taskRepo        repository.TaskRepository
	achievementRepo repository.AchievementRepository
	activityLogRepo repository.ActivityLogRepository

	ingestDomain    domain.IngestDomain
	indexerDomain   domain.IndexerDomain
	statisticDomain domain.StatisticDomain
	developerDomain domain.DeveloperDomain
	taskDomain      domain.TaskDomain
	activityDomain  domain.ActivityDomain
	healthDomain    domain.HealthDomain

	router *router.Router
	server *http.Server
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return n
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	s.configs = config.Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		ApiServer: config.ServerConfigs{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "3000"),
		},
		Database: config.DatabaseConfigs{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Database: getEnv("DB_NAME", "devtask"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: config.RedisConfigs{
			Addr: os.Getenv("REDIS_ADDR"),
		},
		Chain: config.ChainConfigs{
			ContractAddress: os.Getenv("CHAIN_CONTRACT_ADDRESS"),
			ContractName:    getEnv("CHAIN_CONTRACT_NAME", "task-logger"),
			APIURL:          os.Getenv("CHAIN_API_URL"),
			PollSeconds:     getEnvInt("CHAIN_POLL_SECONDS", 30),
			BatchSize:       getEnvInt("CHAIN_BATCH_SIZE", 100),
		},
	}

	if path := cctx.String("chain-config"); path != "" {
		if _, err := toml.DecodeFile(path, &s.configs.Chain); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.LogLevel))
	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() error {
	db, err := gorm.Open(postgres.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		return err
	}

	// Bound the pool so store unavailability fails requests fast instead of
	// piling up connections.
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, s.db)
	return nil
}

func (s *srv) loadCache() {
	if s.configs.Redis.Addr == "" {
		s.logger.Infof("Redis is not configured, the cache layer is disabled")
		s.cache = cache.NewNoopCache()
		return
	}

	redisClient, err := xredis.NewClient(s.ctx, s.configs.Redis.Addr)
	if err != nil {
		s.logger.Warnf("Cannot connect to redis, the cache layer is disabled: %v", err)
		s.cache = cache.NewNoopCache()
		return
	}

	s.redis = redisClient
	s.cache = cache.NewRedisCache(redisClient)
}

func (s *srv) closeRedis() {
	if s.redis == nil {
		return
	}

	if err := s.redis.Close(); err != nil {
		s.logger.Warnf("Cannot close redis connection: %v", err)
	}
}

func (s *srv) loadRepos() {
	s.developerRepo = repository.NewDeveloperRepository()
	s.taskRepo = repository.NewTaskRepository()
	s.achievementRepo = repository.NewAchievementRepository()
	s.activityLogRepo = repository.NewActivityLogRepository()
}

func (s *srv) loadDomains() {
	s.ingestDomain = domain.NewIngestDomain(
		s.developerRepo, s.taskRepo, s.achievementRepo, s.activityLogRepo, s.cache)
	s.indexerDomain = domain.NewIndexerDomain(client.NewStacksClient(), s.taskRepo, s.ingestDomain)
	s.statisticDomain = domain.NewStatisticDomain(s.developerRepo, s.taskRepo, s.cache)
	s.developerDomain = domain.NewDeveloperDomain(
		s.developerRepo, s.taskRepo, s.achievementRepo, s.cache)
	s.taskDomain = domain.NewTaskDomain(s.taskRepo)
	s.activityDomain = domain.NewActivityDomain(s.activityLogRepo)
	s.healthDomain = domain.NewHealthDomain()
}
