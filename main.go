package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dentalsite/backend/handlers"
	"github.com/dentalsite/backend/internal/config"
	contenthandler "github.com/dentalsite/backend/internal/content/handler"
	contentrepo "github.com/dentalsite/backend/internal/content/repository"
	contentservice "github.com/dentalsite/backend/internal/content/service"
	"github.com/dentalsite/backend/internal/database"
	leadshandler "github.com/dentalsite/backend/internal/leads/handler"
	leadsrepo "github.com/dentalsite/backend/internal/leads/repository"
	leadsservice "github.com/dentalsite/backend/internal/leads/service"
	statushandler "github.com/dentalsite/backend/internal/status/handler"
	statusrepo "github.com/dentalsite/backend/internal/status/repository"
	statusservice "github.com/dentalsite/backend/internal/status/service"
	"github.com/dentalsite/backend/pkg/logger"
	"github.com/dentalsite/backend/pkg/metrics"
	"github.com/dentalsite/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: db=%s origins=%v", cfg.MongoDB.Database, cfg.CORS.Origins)

	// the Mongo client is the single process-wide resource: acquired here,
	// shared by every request, released on shutdown
	ctx := context.Background()
	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}

	db := client.Database(cfg.MongoDB.Database)
	statusSvc := statusservice.NewService(statusrepo.NewMongoRepo(db.Collection("status_checks")))
	contentSvc := contentservice.NewService(contentrepo.NewMongoRepo(db.Collection("site_content")))
	leadsSvc := leadsservice.NewService(leadsrepo.NewMongoRepo(
		db.Collection("contact_messages"),
		db.Collection("appointment_requests"),
	))

	r := gin.New()
	r.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the document store answers a ping
	r.GET("/ready", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "uptime": time.Since(startTime).String()})
	})

	api := r.Group("/api")
	handlers.RegisterRoot(api)
	statushandler.RegisterRoutes(api, statusSvc)
	contenthandler.RegisterRoutes(api, contentSvc)
	leadshandler.RegisterRoutes(api, leadsSvc)

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("starting site backend on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Infof("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Errorf("mongo disconnect: %v", err)
	}
	logger.Infof("shutdown complete")
}
