package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"btyesteem/internal/assessment"
	"btyesteem/internal/cache"
	"btyesteem/internal/catalog"
	"btyesteem/internal/config"
	"btyesteem/internal/repository"
	"btyesteem/internal/service"
	"btyesteem/internal/transport/rest"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	// Static questionnaire configuration
	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("catalog load failed", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("items", len(cat.Items)),
		zap.Int("strengths", len(cat.Strengths)))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongodb connect failed", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("mongodb ping failed", zap.Error(err))
	}
	logger.Info("connected to mongodb")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("redis ping failed", zap.Error(err))
	}
	logger.Info("connected to redis")

	// Repositories and caches
	submissionRepo := repository.NewSubmissionRepo(db)
	referenceRepo := repository.NewReferenceRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	resultCache := cache.NewResultCache(rdb)

	// Services
	authSvc := service.NewAuthService(cfg)
	scheduleSvc := service.NewScheduleService(scheduleRepo, cfg.RetestLink, cfg.ScheduleTestMode, logger)
	assessSvc := service.NewAssessmentService(
		assessment.NewPipeline(cat),
		submissionRepo, referenceRepo, resultCache, scheduleSvc, logger)

	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessSvc,
		ScheduleService:   scheduleSvc,
		Catalog:           cat,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.HTTPPort),
			zap.Bool("scheduleTestMode", cfg.ScheduleTestMode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}
