package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"clearview-web/internal/config"
	"clearview-web/internal/domain"
	"clearview-web/internal/handler"
	"clearview-web/internal/mail"
	"clearview-web/internal/middleware"
	"clearview-web/internal/observability"
	"clearview-web/internal/security"
	"clearview-web/internal/service"
	redisstore "clearview-web/internal/store/redis"
)

func main() {
	cfg := config.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}
	observability.InitLogger(logLevel, logFormat)

	slog.Info("starting web server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokenStore, rateStore := buildStores(ctx, cfg)

	var transport mail.Transport
	if cfg.MailConfigured() {
		var err error
		transport, err = mail.NewSMTPTransport(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
		if err != nil {
			slog.Error("failed to create smtp transport", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("mail transport configured", slog.String("host", cfg.SMTPHost))
	} else {
		slog.Warn("mail credentials not set, contact endpoint disabled")
	}

	contactService := service.NewContactService(transport, cfg.MailFrom, cfg.NotifyAddress)

	go startTokenSweep(ctx, tokenStore)
	slog.Info("token sweep task started")

	router := handler.NewRouter(handler.RouterDeps{
		Tokens:         tokenStore,
		Window:         rateStore,
		Contact:        contactService,
		GlobalLimiter:  middleware.NewRateLimiter(ctx, 20, 50),
		AllowedOrigins: middleware.ParseOrigins(cfg.AllowedOrigins),
		StaticDir:      cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("web server listening", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}

	cancel()

	slog.Info("server stopped gracefully")
}

// buildStores picks the token and rate-window backends: in-process maps by
// default, redis when REDIS_ADDR is set so multiple instances share state.
func buildStores(ctx context.Context, cfg *config.Config) (domain.TokenStore, domain.RateStore) {
	if cfg.RedisAddr == "" {
		return security.NewMemoryTokenStore(),
			security.NewMemoryRateStore(security.DefaultWindow, security.DefaultWindowLimit)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	defer pingCancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("redis ping failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("using redis-backed stores", slog.String("addr", cfg.RedisAddr))

	return redisstore.NewTokenStore(rdb), redisstore.NewRateStore(rdb)
}

// startTokenSweep runs a background task deleting expired CSRF tokens, so
// cleanup does not depend on how often tokens are issued.
func startTokenSweep(ctx context.Context, store domain.TokenStore) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("stopping token sweep task")
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			count, err := store.DeleteExpired(sweepCtx)
			if err != nil {
				slog.Error("token sweep failed", slog.String("error", err.Error()))
			} else if count > 0 {
				slog.Info("token sweep completed", slog.Int64("tokens_deleted", count))
			}
			cancel()
		}
	}
}
