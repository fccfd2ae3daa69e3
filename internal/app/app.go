package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hirenexus_backend/internal/auth"
	"hirenexus_backend/internal/cache"
	"hirenexus_backend/internal/config"
	"hirenexus_backend/internal/email"
	"hirenexus_backend/internal/handlers"
	"hirenexus_backend/internal/logger"
	"hirenexus_backend/internal/notify"
	"hirenexus_backend/internal/routes"
	"hirenexus_backend/internal/services"
	"hirenexus_backend/internal/store"
	"hirenexus_backend/internal/workers"
	"hirenexus_backend/ws"
)

// Run assembles the application and serves until interrupted.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the store maps to a version conflict.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	kv, err := store.NewSQLStore(db)
	if err != nil {
		logger.Fatal("failed to initialize store", "error", err)
	}

	var unreadCache cache.UnreadCache = cache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Fatal("failed to initialize redis cache", "error", err)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Fatal("redis unreachable", "addr", cfg.Redis.Addr, "error", err)
		}
		unreadCache = redisCache
		logger.Info("unread cache enabled", "addr", cfg.Redis.Addr)
	} else {
		logger.Info("unread cache disabled, counts recomputed per request")
	}

	var mailer email.Provider = email.NewMockProvider()
	if cfg.Email.Enabled {
		smtp, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("failed to initialize smtp provider", "error", err)
		}
		mailer = smtp
	}

	bus := notify.NewBus()
	defer bus.Close()

	svc := services.NewServiceContainer(kv, unreadCache, bus, mailer)

	manager := ws.NewWebSocketManager()
	go manager.Run()

	worker := workers.NewUnreadWorker(svc.Unread, bus, manager,
		time.Duration(cfg.Notifications.PollInterval)*time.Second)
	worker.Start(ctx)

	wsHandler := ws.NewWebSocketHandler(manager, func(userID string) {
		worker.Refresh(ctx, userID)
	})

	router := routes.SetupRouter(handlers.NewAppHandlers(svc), wsHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
