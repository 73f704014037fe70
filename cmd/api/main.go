package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stream-catalog/internal/config"
	"stream-catalog/internal/db"
	"stream-catalog/internal/email"
	apihttp "stream-catalog/internal/http"
	"stream-catalog/internal/repository"
	"stream-catalog/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrations", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	invitationRepo := repository.NewPgInvitationRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	subsRepo := repository.NewPgSubscriptionRepository(pool)
	watchableRepo := repository.NewPgWatchableRepository(pool)
	genreRepo := repository.NewPgGenreRepository(pool)
	languageRepo := repository.NewPgLanguageRepository(pool)
	qualityRepo := repository.NewPgQualityRepository(pool)
	subtitleRepo := repository.NewPgSubtitleRepository(pool)
	preferenceRepo := repository.NewPgPreferenceRepository(pool)
	historyRepo := repository.NewPgWatchHistoryRepository(pool)
	watchlistRepo := repository.NewPgWatchlistRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		loginLimiter service.RateLimiter
		tokenStore   service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, 10*time.Minute, cfg.LoginMaxTries)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTL)*time.Minute,
		time.Duration(cfg.JWTRefreshTTL)*time.Minute,
		tokenStore,
	)

	userSvc := service.NewUserService(logger, userRepo, profileRepo, invitationRepo, emailSender, loginLimiter)
	profileSvc := service.NewProfileService(logger, profileRepo, userRepo)
	subsSvc := service.NewSubscriptionService(logger, subsRepo)
	catalogSvc := service.NewCatalogService(logger, watchableRepo)
	taxonomySvc := service.NewTaxonomyService(logger, genreRepo, languageRepo, qualityRepo)
	subtitleSvc := service.NewSubtitleService(logger, subtitleRepo)
	activitySvc := service.NewActivityService(logger, preferenceRepo, historyRepo, watchlistRepo)

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		apihttp.NewUserHandler(logger, userSvc, jwtSvc),
		apihttp.NewProfileHandler(logger, profileSvc),
		apihttp.NewSubscriptionHandler(logger, subsSvc),
		apihttp.NewWatchableHandler(logger, catalogSvc),
		apihttp.NewTaxonomyHandler(logger, taxonomySvc),
		apihttp.NewSubtitleHandler(logger, subtitleSvc),
		apihttp.NewActivityHandler(logger, activitySvc),
		apihttp.NewExportHandler(logger, userSvc, profileSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
