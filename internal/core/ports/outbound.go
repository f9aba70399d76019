package ports

import (
	"context"
	"io"
	"time"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

//go:generate mockgen -source=outbound.go -destination=mocks/outbound_mock.go -package=mocks

// TextExtractor extracts plain text from a persisted upload.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.UploadedDocument) (domain.ExtractionResult, error)
}

// ExtractorRouter selects the extractor for a declared media type.
type ExtractorRouter interface {
	Route(mediaType string) (TextExtractor, error)
}

// Recognizer runs optical text recognition on an image file. It must stop
// and release its resources when ctx is cancelled.
type Recognizer interface {
	Recognize(ctx context.Context, path, language string, progress domain.ProgressFunc) (string, error)
}

// UploadStore persists uploads for the lifetime of one request.
type UploadStore interface {
	Save(ctx context.Context, filename string, data io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// EventPublisher announces finished pipeline runs.
type EventPublisher interface {
	PublishAnalysisCompleted(ctx context.Context, event domain.AnalysisEvent) error
}

// PipelineObserver records pipeline runs.
type PipelineObserver interface {
	StartPipeline()
	FinishPipeline(mediaType, outcome string, duration time.Duration)
}
