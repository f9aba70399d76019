package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kirillkom/content-analyzer/internal/config"
	"github.com/kirillkom/content-analyzer/internal/core/ports"
	"github.com/kirillkom/content-analyzer/internal/observability/metrics"
)

const serviceName = "content-analyzer-api"

var routes = []string{"/api", "/api/health", "/api/analyze", "/api/openapi.yaml", "/metrics"}

type Router struct {
	cfg      config.Config
	analyzer ports.DocumentAnalyzer
	store    ports.UploadStore
	metrics  *metrics.HTTPServerMetrics
	logger   *slog.Logger
	now      func() time.Time
}

// NewRouter builds the HTTP surface. httpMetrics and logger may be nil.
func NewRouter(
	cfg config.Config,
	analyzer ports.DocumentAnalyzer,
	store ports.UploadStore,
	httpMetrics *metrics.HTTPServerMetrics,
	logger *slog.Logger,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		cfg:      cfg,
		analyzer: analyzer,
		store:    store,
		metrics:  httpMetrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Routes lists the paths served by Handler, for metrics path labelling.
func Routes() []string {
	return append([]string(nil), routes...)
}

func (rt *Router) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api", rt.listEndpoints)
	api.HandleFunc("GET /api/health", rt.health)
	api.HandleFunc("GET /api/openapi.yaml", rt.openAPI)
	api.HandleFunc("POST /api/analyze", rt.analyze)
	api.HandleFunc("/api/", rt.notFound)

	limiter := newClientRateLimiter(rt.cfg.RateLimitMax, rt.cfg.RateLimitWindow)
	onLimited := func() {
		if rt.metrics != nil {
			rt.metrics.RecordRateLimited(serviceName)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/api", rateLimitMiddleware(limiter, onLimited, api))
	mux.Handle("/api/", rateLimitMiddleware(limiter, onLimited, api))
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = corsMiddleware(rt.cfg.CORSOrigin, handler)
	handler = securityHeadersMiddleware(handler)
	handler = recoveryMiddleware(rt.logger, handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(rt.logger, handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) listEndpoints(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Social Media Content Analyzer API",
		"endpoints": map[string]string{
			"POST /api/analyze":     "Analyze PDF or image files for engagement suggestions",
			"GET /api/health":       "Check server status",
			"GET /api/openapi.yaml": "OpenAPI document",
		},
	})
}

func (rt *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": rt.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

func (rt *Router) openAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

func (rt *Router) notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
