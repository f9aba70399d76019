package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/core/ports"
)

const cleanupTimeout = 5 * time.Second

type PipelineUseCase struct {
	router    ports.ExtractorRouter
	analyzer  ports.ContentAnalyzer
	store     ports.UploadStore
	publisher ports.EventPublisher
	observer  ports.PipelineObserver
	logger    *slog.Logger
	validate  *validator.Validate
	now       func() time.Time
}

// NewPipelineUseCase wires one extraction-and-analysis pipeline. publisher,
// observer and logger are optional.
func NewPipelineUseCase(
	router ports.ExtractorRouter,
	analyzer ports.ContentAnalyzer,
	store ports.UploadStore,
	publisher ports.EventPublisher,
	observer ports.PipelineObserver,
	logger *slog.Logger,
) *PipelineUseCase {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineUseCase{
		router:    router,
		analyzer:  analyzer,
		store:     store,
		publisher: publisher,
		observer:  observer,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}
}

// Run moves doc through received → validated → extracting → analyzing →
// completed. The uploaded file is removed exactly once on every path.
func (uc *PipelineUseCase) Run(ctx context.Context, doc *domain.UploadedDocument) (result domain.AnalysisResult, err error) {
	start := uc.now()
	mediaType := ""
	if doc != nil {
		mediaType = doc.MediaType
	}
	logger := uc.logger.With(
		"request_id", domain.RequestIDFromContext(ctx),
		"media_type", mediaType,
	)

	uc.observer.StartPipeline()
	state := domain.StateReceived
	logger.Debug("pipeline_state", "state", state)

	defer func() {
		uc.cleanup(ctx, doc, logger)
		uc.finish(ctx, logger, mediaType, state, start, result, err)
	}()

	if err = uc.validateDocument(doc); err != nil {
		return domain.AnalysisResult{}, err
	}
	state = domain.StateValidated
	logger.Debug("pipeline_state", "state", state)

	extractor, err := uc.router.Route(doc.MediaType)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("route document: %w", err)
	}

	state = domain.StateExtracting
	logger.Debug("pipeline_state", "state", state)
	extraction, err := extractor.Extract(ctx, doc)
	if err != nil {
		return domain.AnalysisResult{}, domain.WrapError(domain.ErrExtractionFailed, "extract text", err)
	}

	state = domain.StateAnalyzing
	logger.Debug("pipeline_state", "state", state, "characters", len(extraction.Text))
	result = uc.analyzer.Analyze(extraction.Text)

	state = domain.StateCompleted
	return result, nil
}

func (uc *PipelineUseCase) validateDocument(doc *domain.UploadedDocument) error {
	if doc == nil {
		return domain.NewError(domain.ErrNoFile, "validate upload", "no document")
	}
	if err := uc.validate.Struct(doc); err != nil {
		return domain.WrapError(domain.ErrNoFile, "validate upload", err)
	}
	if _, err := os.Stat(doc.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewError(domain.ErrNoFile, "validate upload", "uploaded file is missing")
		}
		return domain.WrapError(domain.ErrNoFile, "validate upload", err)
	}
	return nil
}

func (uc *PipelineUseCase) cleanup(ctx context.Context, doc *domain.UploadedDocument, logger *slog.Logger) {
	if doc == nil || doc.Path == "" {
		return
	}
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := uc.store.Remove(cleanupCtx, doc.Path); err != nil {
		logger.Warn("upload_cleanup_failed", "path", doc.Path, "error", err)
	}
}

func (uc *PipelineUseCase) finish(
	ctx context.Context,
	logger *slog.Logger,
	mediaType string,
	state domain.PipelineState,
	start time.Time,
	result domain.AnalysisResult,
	err error,
) {
	duration := uc.now().Sub(start)
	outcome := domain.KindName(err)
	uc.observer.FinishPipeline(mediaType, outcome, duration)

	event := domain.AnalysisEvent{
		RequestID:  domain.RequestIDFromContext(ctx),
		MediaType:  mediaType,
		Outcome:    outcome,
		DurationMS: duration.Milliseconds(),
		OccurredAt: uc.now().UTC(),
	}

	if err != nil {
		logger.Warn("pipeline_failed",
			"state", domain.StateFailed,
			"failed_in", state,
			"kind", outcome,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
	} else {
		metrics := result.Metrics
		event.Score = result.Score
		event.Metrics = &metrics
		logger.Info("pipeline_completed",
			"state", state,
			"score", result.Score,
			"duration_ms", duration.Milliseconds(),
		)
	}

	if pubErr := uc.publisher.PublishAnalysisCompleted(context.WithoutCancel(ctx), event); pubErr != nil {
		logger.Warn("analysis_event_publish_failed", "error", pubErr)
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishAnalysisCompleted(context.Context, domain.AnalysisEvent) error { return nil }

type noopObserver struct{}

func (noopObserver) StartPipeline() {}

func (noopObserver) FinishPipeline(string, string, time.Duration) {}
