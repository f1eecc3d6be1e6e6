package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/handler"
	"moviehub/internal/middleware"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	rdb := connectRedis(cfg, logger)

	// Repositories
	countryRepo := repository.NewCountryRepo(db)
	directorRepo := repository.NewDirectorRepo(db)
	actorRepo := repository.NewActorRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	momentRepo := repository.NewMomentRepo(db)
	languageRepo := repository.NewMovieLanguageRepo(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	countrySvc := service.NewCountryService(countryRepo)
	directorSvc := service.NewDirectorService(directorRepo)
	actorSvc := service.NewActorService(actorRepo)
	genreSvc := service.NewGenreService(genreRepo)
	movieSvc := service.NewMovieService(movieRepo)
	momentSvc := service.NewMomentService(momentRepo)
	languageSvc := service.NewMovieLanguageService(languageRepo)
	reviewSvc := service.NewReviewService(reviewRepo, movieRepo, userRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, movieRepo, userRepo)
	userSvc := service.NewUserService(userRepo)
	authSvc := service.NewAuthService(userSvc, userRepo, refreshTokenRepo, cfg)

	// HTTP surface
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(rdb, cfg.RateLimitPerMinute))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	handler.NewAuthHandler(authSvc).RegisterRoutes(api.Group("/auth"))

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth(authSvc))

	reviewHandler := handler.NewReviewHandler(reviewSvc)
	movieGroup := protected.Group("/movies")
	handler.NewMovieHandler(movieSvc).RegisterRoutes(movieGroup)
	reviewHandler.RegisterMovieRoutes(movieGroup)

	handler.NewCountryHandler(countrySvc).RegisterRoutes(protected.Group("/countries"))
	handler.NewDirectorHandler(directorSvc).RegisterRoutes(protected.Group("/directors"))
	handler.NewActorHandler(actorSvc).RegisterRoutes(protected.Group("/actors"))
	handler.NewGenreHandler(genreSvc).RegisterRoutes(protected.Group("/genres"))
	handler.NewMomentHandler(momentSvc).RegisterRoutes(protected.Group("/moments"))
	handler.NewMovieLanguageHandler(languageSvc).RegisterRoutes(protected.Group("/movie-languages"))
	reviewHandler.RegisterRoutes(protected.Group("/reviews"))
	handler.NewFavoriteHandler(favoriteSvc).RegisterRoutes(protected.Group("/favorites"))
	handler.NewUserHandler(userSvc).RegisterRoutes(protected.Group("/users"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server listening", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// connectRedis returns nil when no Redis is configured or reachable; the rate
// limiter falls back to its in-process bucket in that case.
func connectRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisURL,
		Password:     cfg.RedisPassword,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-process rate limiting", "error", err)
		return nil
	}
	logger.Info("connected to redis", "addr", cfg.RedisURL)
	return rdb
}
