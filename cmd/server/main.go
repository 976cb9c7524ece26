package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/alimhan/buzzroom/internal/api/http"
	"github.com/alimhan/buzzroom/internal/common/clock"
	"github.com/alimhan/buzzroom/internal/common/uuid"
	"github.com/alimhan/buzzroom/internal/config"
	"github.com/alimhan/buzzroom/internal/events"
	"github.com/alimhan/buzzroom/internal/models"
	"github.com/alimhan/buzzroom/internal/monitoring"
	questionRepo "github.com/alimhan/buzzroom/internal/repositories/question"
	roomRepo "github.com/alimhan/buzzroom/internal/repositories/room"
	gameService "github.com/alimhan/buzzroom/internal/services/game"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.OpTimeout,
		ReadTimeout:  cfg.Redis.OpTimeout,
		WriteTimeout: cfg.Redis.OpTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect to Redis", slog.Any("error", err))
		os.Exit(1)
	}

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
		Clock:       clock.New(),
	})
	if err != nil {
		log.Error("failed to create room repository", slog.Any("error", err))
		os.Exit(1)
	}

	questions, err := questionRepo.NewRedis(&questionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Error("failed to create question repository", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seedCatalog(ctx, questions, log); err != nil {
		log.Error("failed to seed question catalog", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := monitoring.New()

	games, err := gameService.New(&gameService.Config{
		RoomRepo:     rooms,
		QuestionRepo: questions,
		Clock:        clock.New(),
		UUID:         uuid.New(),
		Logger:       log,
		Metrics:      metrics,
	})
	if err != nil {
		log.Error("failed to create game service", slog.Any("error", err))
		os.Exit(1)
	}

	hub := events.NewHub()
	controller := httpapi.NewGameController(games, hub, log)
	router := httpapi.SetupRouter(controller, metrics)

	server := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	go func() {
		log.Info("starting server", slog.String("addr", cfg.HTTP.Address), slog.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.Any("error", err))
	}

	log.Info("server has been shut down")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug}),
		)
	}

	return log
}

// seedCatalog loads a starter question set when the catalog is empty, so a
// fresh deployment has something to play. The first seeded ID matches the
// sentinel question new rooms point at.
func seedCatalog(ctx context.Context, repo questionRepo.Repository, log *slog.Logger) error {
	size, err := repo.CatalogSize(ctx)
	if err != nil {
		return err
	}
	if size > 0 {
		return nil
	}

	seed := []*models.Question{
		{ID: "1", Text: "Which planet is known as the Red Planet?", Answer: "Mars", Score: 10},
		{ID: "2", Text: "What is the largest ocean on Earth?", Answer: "The Pacific Ocean", Score: 10},
		{ID: "3", Text: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Score: 20},
		{ID: "4", Text: "What is the chemical symbol for gold?", Answer: "Au", Score: 20},
		{ID: "5", Text: "In which year did the first human walk on the Moon?", Answer: "1969", Score: 30},
	}

	for _, q := range seed {
		if err := repo.SaveQuestion(ctx, &questionRepo.SaveQuestionInput{Question: q}); err != nil {
			return err
		}
	}

	log.Info("seeded question catalog", slog.Int("questions", len(seed)))
	return nil
}
