package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kirillkom/content-analyzer/internal/config"
	"github.com/kirillkom/content-analyzer/internal/core/analysis"
	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/content-analyzer/internal/observability/metrics"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type analyzerFake struct {
	text    string
	err     error
	panics  bool
	calls   int
	lastDoc domain.UploadedDocument
	existed bool
}

func (f *analyzerFake) Run(_ context.Context, doc *domain.UploadedDocument) (domain.AnalysisResult, error) {
	f.calls++
	f.lastDoc = *doc
	_, statErr := os.Stat(doc.Path)
	f.existed = statErr == nil
	_ = os.Remove(doc.Path)

	if f.panics {
		panic("analyzer bug")
	}
	if f.err != nil {
		return domain.AnalysisResult{}, f.err
	}
	return analysis.Analyze(f.text), nil
}

func testConfig() config.Config {
	return config.Config{
		UploadMaxSize:   1024,
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
		CORSOrigin:      "*",
	}
}

func newTestHandler(t *testing.T, cfg config.Config, fake *analyzerFake) http.Handler {
	t.Helper()
	store, err := localfs.New(t.TempDir())
	require.NoError(t, err)
	httpMetrics := metrics.NewHTTPServerMetrics(serviceName, Routes()...)
	return NewRouter(cfg, fake, store, httpMetrics, nil).Handler()
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func postUpload(t *testing.T, handler http.Handler, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, formType := multipartBody(t, "file", filename, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", formType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func decodeError(t *testing.T, res *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	return payload["error"]
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{})
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, res.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	require.Equal(t, "OK", payload["status"])
	_, err := time.Parse(time.RFC3339, payload["timestamp"])
	require.NoError(t, err)
}

func TestListEndpoints(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{})
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.Contains(t, res.Body.String(), "POST /api/analyze")
}

func TestUnknownAPIPathReturns404(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{})

	for _, target := range []string{"/api/nope", "/api/analyze/extra"} {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusNotFound, res.Code, target)
		require.Equal(t, "Endpoint not found", decodeError(t, res))
	}
}

func TestAnalyzePDFSuccess(t *testing.T) {
	req := require.New(t)
	fake := &analyzerFake{text: "Big launch today! What do you think? #launch #product"}
	handler := newTestHandler(t, testConfig(), fake)

	res := postUpload(t, handler, "post.pdf", "application/pdf", pdfBytes)

	req.Equal(http.StatusOK, res.Code, res.Body.String())
	req.Equal(1, fake.calls)
	req.True(fake.existed)
	req.Equal(domain.MediaTypePDF, fake.lastDoc.MediaType)
	req.Equal("post.pdf", fake.lastDoc.Filename)
	req.Equal(int64(len(pdfBytes)), fake.lastDoc.SizeBytes)

	doc, err := LoadOpenAPI(context.Background())
	req.NoError(err)
	schema := doc.Paths.Value("/api/analyze").Post.Responses.Status(http.StatusOK).Value.Content.Get("application/json").Schema.Value
	var body any
	req.NoError(json.Unmarshal(res.Body.Bytes(), &body))
	req.NoError(schema.VisitJSON(body))
}

func TestAnalyzeSniffsGenericContentType(t *testing.T) {
	fake := &analyzerFake{text: "hello"}
	handler := newTestHandler(t, testConfig(), fake)

	res := postUpload(t, handler, "post.pdf", "application/octet-stream", pdfBytes)

	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	require.Equal(t, domain.MediaTypePDF, fake.lastDoc.MediaType)
}

func TestAnalyzeGatekeeping(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		status      int
		message     string
	}{
		{name: "text file", filename: "notes.txt", contentType: "text/plain", data: []byte("hello"), status: http.StatusBadRequest, message: msgNotAllowedType},
		{name: "extension mismatch", filename: "anim.gif", contentType: "image/png", data: []byte("\x89PNG"), status: http.StatusBadRequest, message: msgNotAllowedType},
		{name: "mime mismatch", filename: "post.pdf", contentType: "application/zip", data: pdfBytes, status: http.StatusBadRequest, message: msgNotAllowedType},
		{name: "too large", filename: "big.pdf", contentType: "application/pdf", data: bytes.Repeat([]byte("a"), 2048), status: http.StatusRequestEntityTooLarge, message: msgFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &analyzerFake{text: "hello"}
			handler := newTestHandler(t, testConfig(), fake)

			res := postUpload(t, handler, tt.filename, tt.contentType, tt.data)

			require.Equal(t, tt.status, res.Code)
			require.Equal(t, tt.message, decodeError(t, res))
			require.Zero(t, fake.calls)
		})
	}
}

func TestAnalyzeBodyOverLimitReturns413(t *testing.T) {
	cfg := testConfig()
	fake := &analyzerFake{text: "hello"}
	handler := newTestHandler(t, cfg, fake)

	res := postUpload(t, handler, "huge.pdf", "application/pdf", bytes.Repeat([]byte("a"), multipartOverhead+2048))

	require.Equal(t, http.StatusRequestEntityTooLarge, res.Code)
	require.Equal(t, msgFileTooLarge, decodeError(t, res))
}

func TestAnalyzeWithoutFile(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{})

	body, formType := multipartBody(t, "attachment", "post.pdf", "application/pdf", pdfBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", formType)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "No file uploaded", decodeError(t, res))

	req = httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewBufferString("plain"))
	req.Header.Set("Content-Type", "text/plain")
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestAnalyzeMapsPipelineErrors(t *testing.T) {
	extraction := func(inner error) error {
		return domain.WrapError(domain.ErrExtractionFailed, "extract text", inner)
	}
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "no file", err: domain.NewError(domain.ErrNoFile, "validate upload", "missing"), status: http.StatusBadRequest, message: "No file uploaded"},
		{name: "unsupported", err: domain.NewError(domain.ErrUnsupportedMediaType, "route", "text/plain"), status: http.StatusUnsupportedMediaType, message: "Unsupported file type"},
		{name: "no text", err: extraction(domain.NewError(domain.ErrNoTextFound, "extract pdf", "")), status: http.StatusUnprocessableEntity, message: "No text could be extracted from the file"},
		{name: "pdf too large", err: extraction(domain.NewError(domain.ErrTooLarge, "validate pdf", "")), status: http.StatusRequestEntityTooLarge, message: "File too large"},
		{name: "parse failure", err: extraction(domain.NewError(domain.ErrParseFailure, "parse pdf", "bad xref")), status: http.StatusUnprocessableEntity, message: "Failed to process PDF file"},
		{name: "timeout", err: extraction(&domain.TimeoutError{Duration: time.Second}), status: http.StatusUnprocessableEntity, message: "Image processing timed out"},
		{name: "recognition", err: extraction(domain.NewError(domain.ErrRecognitionFailure, "tesseract", "")), status: http.StatusUnprocessableEntity, message: "Failed to process image"},
		{name: "internal", err: errors.New("PDF exploded"), status: http.StatusInternalServerError, message: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t, testConfig(), &analyzerFake{err: tt.err})

			res := postUpload(t, handler, "post.pdf", "application/pdf", pdfBytes)

			require.Equal(t, tt.status, res.Code)
			require.Equal(t, tt.message, decodeError(t, res))
		})
	}
}

func TestPanicIsRecoveredAs500(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{panics: true})

	res := postUpload(t, handler, "post.pdf", "application/pdf", pdfBytes)

	require.Equal(t, http.StatusInternalServerError, res.Code)
	require.Equal(t, "Internal server error", decodeError(t, res))
}

func TestRateLimitReturns429WithRetryAfter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitMax = 1
	cfg.RateLimitWindow = time.Minute
	handler := newTestHandler(t, cfg, &analyzerFake{})

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	require.NotEmpty(t, second.Header().Get("Retry-After"))

	scrape := httptest.NewRecorder()
	handler.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, scrape.Code)
	require.Contains(t, scrape.Body.String(), "content_analyzer_http_rate_limited_total")
}

func TestClientRateLimiterSeparatesClientsAndRefills(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	limiter := newClientRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	ok, _ := limiter.allow("10.0.0.1")
	require.True(t, ok)
	ok, _ = limiter.allow("10.0.0.1")
	require.True(t, ok)
	ok, wait := limiter.allow("10.0.0.1")
	require.False(t, ok)
	require.InDelta(t, float64(30*time.Second), float64(wait), float64(time.Millisecond))

	ok, _ = limiter.allow("10.0.0.2")
	require.True(t, ok)

	now = now.Add(31 * time.Second)
	ok, _ = limiter.allow("10.0.0.1")
	require.True(t, ok)
}

func TestResponsesCarrySecurityHeadersAndRequestID(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "req-42")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, "req-42", res.Header().Get(requestIDHeader))
	require.Equal(t, "nosniff", res.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "SAMEORIGIN", res.Header().Get("X-Frame-Options"))
	require.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NotEmpty(t, res.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t, testConfig(), &analyzerFake{})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusNoContent, res.Code)
	require.Contains(t, res.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestOpenAPIDocumentCoversRoutes(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	for _, route := range Routes() {
		if route == "/metrics" {
			continue
		}
		require.NotNil(t, doc.Paths.Value(route), route)
	}

	handler := newTestHandler(t, testConfig(), &analyzerFake{})
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "application/yaml", res.Header().Get("Content-Type"))
	require.Contains(t, res.Body.String(), "openapi: 3.0.3")
}

func TestErrorStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, mapErrorToHTTPStatus(errors.New("boom")))
	require.Equal(t, http.StatusUnprocessableEntity, mapErrorToHTTPStatus(domain.WrapError(domain.ErrExtractionFailed, "extract", errors.New("x"))))
}
