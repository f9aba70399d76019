package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kirillkom/content-analyzer/internal/config"
	"github.com/kirillkom/content-analyzer/internal/core/analysis"
	"github.com/kirillkom/content-analyzer/internal/core/ports"
	"github.com/kirillkom/content-analyzer/internal/core/usecase"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/extractor"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/extractor/imagetext"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/extractor/pdftext"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/ocr/tesseract"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/queue/nats"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/resilience"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/content-analyzer/internal/observability/metrics"
)

type App struct {
	Config config.Config

	Store     *localfs.Storage
	Analyzer  ports.ContentAnalyzer
	PDF       *pdftext.Extractor
	Image     *imagetext.Extractor
	Router    *extractor.Router
	Publisher ports.EventPublisher
	Pipeline  *usecase.PipelineUseCase

	closeFn func()
}

// New wires the pipeline. Pipeline metrics are registered on registerer when
// it is non-nil; otherwise they stay private to the process.
func New(_ context.Context, cfg config.Config, service string, registerer prometheus.Registerer, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store, err := localfs.New(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage: %w", err)
	}

	ocr := tesseract.New(tesseract.Options{
		Binary:   cfg.TesseractPath,
		Executor: resilience.NewExecutor(resilience.BreakerOnlyConfig(), logger),
		Logger:   logger,
	})
	pdf := pdftext.NewExtractor(cfg.MaxPDFSize)
	image := imagetext.NewExtractor(ocr, imagetext.Options{
		Language: cfg.OCRLanguage,
		Timeout:  cfg.OCRTimeout,
	})
	router := extractor.NewRouter(pdf, image)

	var publisher ports.EventPublisher = nats.Noop{}
	closeFn := func() {}
	if cfg.NATSURL != "" {
		queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
			ResilienceExecutor: resilience.NewExecutor(resilience.DefaultConfig(), logger),
			Logger:             logger,
		})
		if err != nil {
			return nil, fmt.Errorf("init event publisher: %w", err)
		}
		publisher = queue
		closeFn = queue.Close
	}

	analyzer := analysis.NewAnalyzer()
	pipeline := usecase.NewPipelineUseCase(
		router,
		analyzer,
		store,
		publisher,
		metrics.NewPipelineMetrics(service, registerer),
		logger,
	)

	return &App{
		Config:    cfg,
		Store:     store,
		Analyzer:  analyzer,
		PDF:       pdf,
		Image:     image,
		Router:    router,
		Publisher: publisher,
		Pipeline:  pipeline,
		closeFn:   closeFn,
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
