package main

import (
	"context"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	mcpadapter "github.com/kirillkom/content-analyzer/internal/adapters/mcp"
	"github.com/kirillkom/content-analyzer/internal/bootstrap"
	"github.com/kirillkom/content-analyzer/internal/config"
	"github.com/kirillkom/content-analyzer/internal/observability/logging"
)

const serviceName = "content-analyzer-mcp"

// stdout carries the protocol, so logs go to stderr.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.NewJSONLoggerTo(os.Stderr, serviceName, cfg.LogLevel)

	app, err := bootstrap.New(context.Background(), cfg, serviceName, nil, logger)
	if err != nil {
		logger.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := mcpadapter.NewServer(app.Analyzer, app.Pipeline, app.Store, logger)
	if err := server.ServeStdio(srv.MCPServer()); err != nil {
		logger.Error("mcp_server_error", "error", err)
	}
}
