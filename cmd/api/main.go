package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/netutil"

	httpadapter "github.com/kirillkom/content-analyzer/internal/adapters/http"
	"github.com/kirillkom/content-analyzer/internal/bootstrap"
	"github.com/kirillkom/content-analyzer/internal/config"
	"github.com/kirillkom/content-analyzer/internal/observability/logging"
	"github.com/kirillkom/content-analyzer/internal/observability/metrics"
)

const serviceName = "content-analyzer-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLogger(serviceName, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := httpadapter.LoadOpenAPI(ctx); err != nil {
		logger.Error("openapi_invalid", "error", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPServerMetrics(serviceName, httpadapter.Routes()...)
	app, err := bootstrap.New(ctx, cfg, serviceName, httpMetrics.Registry(), logger)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	router := httpadapter.NewRouter(cfg, app.Pipeline, app.Store, httpMetrics, logger).Handler()
	server := &http.Server{
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.OCRTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Error("listen_failed", "port", cfg.Port, "error", err)
		os.Exit(1)
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	go func() {
		logger.Info("api_listening", "port", cfg.Port, "upload_dir", app.Store.BasePath(), "max_connections", cfg.MaxConnections)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api_server_error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api_shutdown_error", "error", err)
	}
}
