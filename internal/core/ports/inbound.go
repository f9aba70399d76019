package ports

import (
	"context"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

// DocumentAnalyzer is the inbound contract for running one upload through the pipeline.
type DocumentAnalyzer interface {
	Run(ctx context.Context, doc *domain.UploadedDocument) (domain.AnalysisResult, error)
}

// ContentAnalyzer scores plain text. Implementations are pure.
type ContentAnalyzer interface {
	Analyze(text string) domain.AnalysisResult
}
