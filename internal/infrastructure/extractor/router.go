// Package extractor routes uploads to the text extractor for their declared media type.
package extractor

import (
	"context"
	"mime"
	"strings"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/core/ports"
)

type Router struct {
	pdf   ports.TextExtractor
	image ports.TextExtractor
}

func NewRouter(pdf, image ports.TextExtractor) *Router {
	return &Router{pdf: pdf, image: image}
}

// Route trusts the declared media type; content is never inspected here.
func (r *Router) Route(mediaType string) (ports.TextExtractor, error) {
	normalized := normalizeMediaType(mediaType)
	switch {
	case normalized == domain.MediaTypePDF && r.pdf != nil:
		return r.pdf, nil
	case strings.HasPrefix(normalized, "image/") && r.image != nil:
		return r.image, nil
	default:
		return nil, domain.NewError(domain.ErrUnsupportedMediaType, "route extractor", mediaType)
	}
}

func (r *Router) Extract(ctx context.Context, doc *domain.UploadedDocument) (domain.ExtractionResult, error) {
	if doc == nil {
		return domain.ExtractionResult{}, domain.NewError(domain.ErrNoFile, "route extractor", "no document")
	}
	extractor, err := r.Route(doc.MediaType)
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	return extractor.Extract(ctx, doc)
}

func normalizeMediaType(mediaType string) string {
	mediaType = strings.TrimSpace(mediaType)
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		return parsed
	}
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
