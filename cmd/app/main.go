package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/cdn"
	"github.com/BloggingApp/diary-service/internal/config"
	"github.com/BloggingApp/diary-service/internal/handler"
	"github.com/BloggingApp/diary-service/internal/llm"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/BloggingApp/diary-service/internal/repository/memory"
	"github.com/BloggingApp/diary-service/internal/repository/postgres"
	"github.com/BloggingApp/diary-service/internal/repository/redisrepo"
	"github.com/BloggingApp/diary-service/internal/server"
	"github.com/BloggingApp/diary-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	bootLogger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		bootLogger.Sugar().Warnf("failed to load .env file: %s", err.Error())
	}

	config.SetDefaults()
	if err := initConfig(); err != nil {
		bootLogger.Sugar().Warnf("failed to read yaml config, using defaults: %s", err.Error())
	}

	appConfig := config.LoadApp()

	logger := bootLogger
	if appConfig.Env == "development" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	if appConfig.OwnerUserID == "" {
		logger.Warn("OWNER_USER_ID is empty, every write will be rejected")
	}

	repos := initRepository(ctx, logger, appConfig)

	var lm llm.Model
	gemini, err := llm.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), viper.GetString("gemini.model"))
	if err != nil {
		logger.Sugar().Warnf("failed to initialize language model, feedback is disabled: %s", err.Error())
		lm = llm.Unavailable{}
	} else {
		logger.Sugar().Infof("Using language model %s", gemini.Name())
		lm = gemini
	}

	uploader := cdn.New(viper.GetString("cdn.origin"), os.Getenv("CDN_TOKEN"))

	services := service.New(logger, repos, lm, uploader, service.Options{
		OwnerUserID: appConfig.OwnerUserID,
		SiteURL:     appConfig.SiteURL,
		ImageBucket: viper.GetString("cdn.bucket"),
		CacheTTL:    appConfig.CacheTTL,
	})

	handlers := handler.New(services, logger, auth.NewResolver(appConfig.JWTSecret), handler.Options{
		OwnerUserID:           appConfig.OwnerUserID,
		ClientOrigin:          appConfig.ClientOrigin,
		FeedbackRatePerMinute: appConfig.Feedback.RatePerMinute,
		FeedbackBurst:         appConfig.Feedback.Burst,
	})

	srv := server.New(config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 60,
	})
	go func() {
		if err := srv.Run(); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func initRepository(ctx context.Context, logger *zap.Logger, appConfig config.AppConfig) *repository.Repository {
	var cache *redisrepo.RedisRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: addr,
		})
		pong, err := rdb.Ping(ctx).Result()
		if err != nil {
			logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
		}
		logger.Sugar().Infof("Successfully connected to Redis: %s", pong)
		cache = redisrepo.New(rdb)
	}

	switch appConfig.Storage {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		mem := memory.New()
		return repository.New(mem.Post, mem.Feedback, cache)
	case config.StoragePostgres:
		db, err := postgres.DB(ctx, config.LoadDB())
		if err != nil {
			logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
		}
		if err := db.Ping(ctx); err != nil {
			logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
		}
		logger.Info("Successfully connected to PostgreSQL")

		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Sugar().Panicf("failed to migrate postgres schema: %s", err.Error())
		}

		pg := postgres.New(db)
		return repository.New(pg.Post, pg.Feedback, cache)
	default:
		logger.Sugar().Panicf("unknown storage %q", appConfig.Storage)
	}

	return nil
}

func loadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
