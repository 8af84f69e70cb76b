package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/weiawesome/wes-social/internal/cache"
	"github.com/weiawesome/wes-social/internal/config"
	"github.com/weiawesome/wes-social/internal/domain"
	"github.com/weiawesome/wes-social/internal/handler"
	"github.com/weiawesome/wes-social/internal/repository"
	"github.com/weiawesome/wes-social/internal/service"
	"github.com/weiawesome/wes-social/pkg/database"
	"github.com/weiawesome/wes-social/pkg/jwt"
	pkglog "github.com/weiawesome/wes-social/pkg/log"
	"github.com/weiawesome/wes-social/pkg/middleware"
	"github.com/weiawesome/wes-social/pkg/pubsub"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// 2. Initialize structured logger
	cfg.Log.Pretty = cfg.Log.Pretty || cfg.Log.Level == "debug"
	pkglog.Init(cfg.Log)
	logger := pkglog.L()

	// 3. Token service; a missing secret is fatal
	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create token manager")
	}

	// 4. Init DB and auto-migrate
	db, err := database.New(cfg.Database.ToDatabaseConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn().Err(err).Msg("error closing database")
		}
	}()

	if err := database.AutoMigrate(db, domain.Models()...); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database migration completed")

	// 5. Account cache (optional)
	var accountCache cache.AccountCache = cache.NopCache{}
	if cfg.Redis.Address != "" {
		rc, err := cache.NewRedisAccountCache(cfg.Redis, cfg.Cache.Prefix)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to connect to redis, account cache disabled")
		} else {
			accountCache = rc
			logger.Info().Str("addr", cfg.Redis.Address).Msg("account cache enabled")
		}
	}
	defer accountCache.Close()

	// 6. Relationship event publisher
	publisher, err := pubsub.NewPublisher(cfg.Events)
	if err != nil {
		logger.Warn().Err(err).Str("driver", cfg.Events.Driver).Msg("failed to create event publisher, events disabled")
		publisher = pubsub.NopPublisher{}
	}
	defer publisher.Close()

	// 7. Repositories and services
	accountRepo := repository.NewGormAccountRepository(db)
	postRepo := repository.NewGormPostRepository(db)
	likeRepo := repository.NewGormLikeRepository(db)
	followRepo := repository.NewGormFollowRepository(db)
	replyRepo := repository.NewGormReplyRepository(db)

	svcs := handler.Services{
		Accounts: service.NewAccountService(service.AccountDeps{
			Accounts:   accountRepo,
			Posts:      postRepo,
			Follows:    followRepo,
			Tokens:     tokens,
			Cache:      accountCache,
			BcryptCost: cfg.Security.BcryptCost,
			CacheTTL:   cfg.Cache.TTL,
		}),
		Posts:   service.NewPostService(postRepo, accountRepo),
		Likes:   service.NewLikeService(likeRepo, postRepo, accountRepo, publisher),
		Follows: service.NewFollowService(followRepo, accountRepo, publisher),
		Replies: service.NewReplyService(replyRepo, postRepo, accountRepo, publisher),
	}

	// 8. Setup Gin router + HTTP server
	h := handler.NewHandler(svcs, middleware.NewAuthMiddleware(tokens))
	r := handler.NewRouter(h, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info().Str("addr", addr).Msg("social-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// 9. Wait for shutdown signal, then drain HTTP
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("HTTP server forced to shutdown")
	}

	logger.Info().Msg("social-service stopped")
}
