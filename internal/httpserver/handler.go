package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "reddit-assistant/internal/chat/delivery/http"
	"reddit-assistant/internal/model"
	"reddit-assistant/internal/test"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID(), srv.middleware.AccessLog())

	srv.l.Infof(context.Background(), "HTTP server mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	chatHTTP.RegisterRoutes(srv.gin.Group(""), srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat routes registered at POST /chat, /subreddit_overview, /summarize_post")

	if srv.testHandler == nil || srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Test endpoints disabled")
		return nil
	}
	test.RegisterRoutes(srv.gin.Group("/test"), srv.testHandler, srv.middleware)
	srv.l.Infof(ctx, "Test routes registered under /test")

	return nil
}
