// Package mcpadapter exposes the analyzer as Model Context Protocol tools.
package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/core/ports"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/storage/localfs"
)

const (
	serverName    = "content-analyzer"
	serverVersion = "1.0.0"
)

type Server struct {
	analyzer ports.ContentAnalyzer
	pipeline ports.DocumentAnalyzer
	store    ports.UploadStore
	logger   *slog.Logger
}

func NewServer(analyzer ports.ContentAnalyzer, pipeline ports.DocumentAnalyzer, store ports.UploadStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		analyzer: analyzer,
		pipeline: pipeline,
		store:    store,
		logger:   logger,
	}
}

func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	srv.AddTool(mcp.NewTool("analyze_text",
		mcp.WithDescription("Score a social media post for engagement and suggest improvements."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Post text to analyze")),
	), s.analyzeText)

	srv.AddTool(mcp.NewTool("analyze_document",
		mcp.WithDescription("Extract text from a local PDF or image file and analyze it. The file itself is left untouched."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Absolute path of a PDF, PNG or JPEG file")),
		mcp.WithString("media_type", mcp.Description("Media type of the file; detected from content when omitted")),
	), s.analyzeDocument)

	return srv
}

func (s *Server) analyzeText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return resultJSON(s.analyzer.Analyze(text))
}

// analyzeDocument runs the pipeline on a copy in the upload store; the
// pipeline deletes its input, never the caller's file.
func (s *Server) analyzeDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mediaType := strings.TrimSpace(request.GetString("media_type", ""))

	doc, err := s.stage(ctx, path, mediaType)
	if err != nil {
		s.logger.Warn("mcp_stage_failed", "path", path, "error", err)
		return mcp.NewToolResultError(domain.UserMessage(err)), nil
	}

	result, err := s.pipeline.Run(ctx, doc)
	if err != nil {
		s.logger.Warn("mcp_analyze_failed", "path", path, "kind", domain.KindName(err), "error", err)
		return mcp.NewToolResultError(domain.UserMessage(err)), nil
	}
	return resultJSON(result)
}

func (s *Server) stage(ctx context.Context, path, mediaType string) (*domain.UploadedDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewError(domain.ErrNoFile, "stage document", path)
		}
		return nil, domain.WrapError(domain.ErrNoFile, "stage document", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return nil, domain.NewError(domain.ErrNoFile, "stage document", "path is a directory")
	}

	var ext string
	if mediaType == "" {
		detected, err := mimetype.DetectReader(f)
		if err != nil {
			return nil, fmt.Errorf("detect media type: %w", err)
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("rewind document: %w", err)
		}
		mediaType = detected.String()
		ext = detected.Extension()
	}
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}
	if ext == "" {
		if known := mimetype.Lookup(mediaType); known != nil {
			ext = known.Extension()
		}
	}

	name := localfs.WithExtension(filepath.Base(path), ext)
	staged, err := s.store.Save(ctx, name, f)
	if err != nil {
		return nil, fmt.Errorf("stage document: %w", err)
	}
	return &domain.UploadedDocument{
		Path:      staged,
		MediaType: mediaType,
		SizeBytes: info.Size(),
		Filename:  name,
	}, nil
}

func resultJSON(result domain.AnalysisResult) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
