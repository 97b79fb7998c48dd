package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fidelisagboli/tropicinfusions/internal/ai"
	"github.com/fidelisagboli/tropicinfusions/internal/config"
	"github.com/fidelisagboli/tropicinfusions/internal/conversation"
	"github.com/fidelisagboli/tropicinfusions/internal/httpapi"
	"github.com/fidelisagboli/tropicinfusions/internal/httpapi/handlers"
	"github.com/fidelisagboli/tropicinfusions/internal/session"
	"github.com/fidelisagboli/tropicinfusions/internal/store/redisstore"
	"github.com/redis/go-redis/v9"
)

func buildRegistry(cfg config.Config) *ai.Registry {
	reg := ai.NewRegistry()

	reg.Register("openai", func(ctx context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OpenAIModel
		}
		return ai.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, m, cfg.OpenAITemperature), nil
	})

	// Keyless local development.
	reg.Register("ollama", func(ctx context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" {
			m = cfg.OllamaModel
		}
		return ai.NewOllamaProvider(cfg.OllamaBaseURL, m), nil
	})

	return reg
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	st := redisstore.New(rdb)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := st.Ping(ctx); err != nil {
		logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}

	provider, err := buildRegistry(cfg).Get(ctx, cfg.AIProvider, "")
	if err != nil {
		logger.Error("provider setup failed", "provider", cfg.AIProvider, "error", err)
		os.Exit(1)
	}

	svc := conversation.NewService(st, provider, cfg.SessionTTL, logger)
	if err := svc.SeedPrompt(ctx); err != nil {
		logger.Error("prompt seed failed", "error", err)
		os.Exit(1)
	}

	resolver := session.NewCookieResolver(cfg.CookieName, cfg.SessionTTL, cfg.CookieSecure)
	h := handlers.NewHandler(svc, resolver, logger)
	router := httpapi.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "site_dir", cfg.SiteDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	if err := st.Close(); err != nil {
		logger.Error("store close error", "error", err)
	}
}
