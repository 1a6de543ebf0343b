package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reddit-assistant/config"
	_ "reddit-assistant/docs" // Swagger docs
	chatHTTP "reddit-assistant/internal/chat/delivery/http"
	chatUC "reddit-assistant/internal/chat/usecase"
	"reddit-assistant/internal/content"
	"reddit-assistant/internal/httpserver"
	"reddit-assistant/internal/middleware"
	"reddit-assistant/internal/model"
	"reddit-assistant/internal/router"
	"reddit-assistant/internal/session"
	"reddit-assistant/internal/summary"
	"reddit-assistant/internal/test"
	"reddit-assistant/pkg/cache"
	"reddit-assistant/pkg/llmprovider"
	"reddit-assistant/pkg/log"
	"reddit-assistant/pkg/reddit"
)

// @title       Reddit Assistant API
// @description Conversational front-end for Reddit: list posts, summarize threads and discuss them with an LLM.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Reddit Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Resource cache, shared by the fetcher and the summarizer
	resources, err := cache.New[any](cfg.Cache.Capacity)
	if err != nil {
		logger.Error(ctx, "Failed to create cache: ", err)
		return
	}

	// 4. Reddit client
	redditClient, err := reddit.New(reddit.Config{
		ClientID:          cfg.Reddit.ClientID,
		ClientSecret:      cfg.Reddit.ClientSecret,
		UserAgent:         cfg.Reddit.UserAgent,
		BaseURL:           cfg.Reddit.BaseURL,
		TokenURL:          cfg.Reddit.TokenURL,
		RequestsPerMinute: cfg.Reddit.RequestsPerMin,
		Timeout:           cfg.Reddit.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create Reddit client: ", err)
		return
	}

	// 5. LLM providers
	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	// 6. Conversation core
	fetcher := content.New(redditClient, resources, logger, content.Config{
		Workers:      cfg.Fetcher.Workers,
		FilterPinned: cfg.Reddit.FilterPinned,
	})
	summarizer := summary.New(fetcher, llm, resources, logger)
	conv := router.New(fetcher, summarizer, llm, logger, router.Config{
		DefaultPosts: cfg.Fetcher.DefaultPosts,
		MaxPosts:     cfg.Fetcher.MaxPosts,
	})

	sessions := session.New(logger, session.Config{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	})
	uc := chatUC.New(conv, sessions, logger, chatUC.Config{OverviewPosts: cfg.Fetcher.OverviewPosts})

	// 7. HTTP Server
	production := cfg.Environment.Name == string(model.EnvironmentProduction)
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		CookieName:      cfg.Session.CookieName,
		CookieMaxAge:    int(cfg.Session.TTL.Seconds()),
		SecureCookie:    production,
	})

	var testHandler test.Handler
	if !production {
		testHandler = test.New(logger, uc)
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		Stats: func() map[string]int {
			return map[string]int{"cached_resources": resources.Len(), "sessions": sessions.Len()}
		},
		ChatHandler: chatHTTP.New(logger, uc),
		TestHandler: testHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
