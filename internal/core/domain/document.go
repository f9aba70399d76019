package domain

import "time"

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeJPEG = "image/jpeg"
	MediaTypePNG  = "image/png"
)

// UploadedDocument is an upload already persisted by the transport layer.
// It belongs to exactly one pipeline run, which deletes the file on exit.
type UploadedDocument struct {
	Path      string `json:"path" validate:"required"`
	MediaType string `json:"media_type"`
	SizeBytes int64  `json:"size_bytes" validate:"gte=0"`
	Filename  string `json:"filename,omitempty"`
}

type ExtractionResult struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count,omitempty"`
}

type PDFMetadata struct {
	Pages   int               `json:"pages"`
	Version string            `json:"version,omitempty"`
	Info    map[string]string `json:"info,omitempty"`
}

type PipelineState string

const (
	StateReceived   PipelineState = "received"
	StateValidated  PipelineState = "validated"
	StateExtracting PipelineState = "extracting"
	StateAnalyzing  PipelineState = "analyzing"
	StateCompleted  PipelineState = "completed"
	StateFailed     PipelineState = "failed"
)

// ProgressFunc receives advisory recognition progress. fraction is in [0,1].
type ProgressFunc func(stage string, fraction float64)

// AnalysisEvent is published after every pipeline run. It never carries the text.
type AnalysisEvent struct {
	RequestID  string           `json:"request_id,omitempty"`
	MediaType  string           `json:"media_type"`
	Outcome    string           `json:"outcome"`
	Score      int              `json:"score,omitempty"`
	Metrics    *AnalysisMetrics `json:"metrics,omitempty"`
	DurationMS int64            `json:"duration_ms"`
	OccurredAt time.Time        `json:"occurred_at"`
}
