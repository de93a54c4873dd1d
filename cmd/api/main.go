package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"craftdeck/internal/ai"
	"craftdeck/internal/api"
	"craftdeck/internal/catalog"
	"craftdeck/internal/config"
	"craftdeck/internal/database"
	"craftdeck/internal/editor"
	"craftdeck/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	log.Printf("database connection ready")

	if err := db.AutoMigrate(&database.Template{}, &database.Export{}); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	if err := catalog.Seed(db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	log.Printf("catalog ready")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("close asynq client failed", slog.Any("error", err))
		}
	}()

	storageClient, err := storage.NewClient(cfg.MinIO)
	if err != nil {
		log.Fatalf("init storage client: %v", err)
	}
	log.Printf("storage client ready, bucket=%s", cfg.MinIO.Bucket)

	store := editor.NewStore()
	provider := catalog.NewProvider(db)
	generator := ai.NewClient(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model, logger)
	presignTTL := time.Duration(cfg.Export.PresignTTLHours) * time.Hour

	router := api.NewRouter(logger)
	api.RegisterRoutes(
		router,
		db,
		store,
		provider,
		asynqClient,
		redisClient,
		storageClient,
		generator,
		logger,
		presignTTL,
		cfg.API.Origins(),
	)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	log.Printf("api listening on %s", address)
	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
