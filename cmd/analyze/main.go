// Command analyze scores a local PDF or image file, or a literal text with -text.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/kirillkom/content-analyzer/internal/bootstrap"
	"github.com/kirillkom/content-analyzer/internal/config"
	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/content-analyzer/internal/observability/logging"
)

const serviceName = "content-analyzer-cli"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.String("lang", "", "tesseract language for images (default from OCR_LANGUAGE)")
	timeout := fs.Duration("timeout", 0, "recognition timeout for images (default from OCR_TIMEOUT_MS)")
	asJSON := fs.Bool("json", false, "print the raw analysis result as JSON")
	text := fs.String("text", "", "analyze this text instead of a file")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: analyze [flags] <file.pdf|file.png|file.jpg>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *text == "" && fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one file")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *lang != "" {
		cfg.OCRLanguage = *lang
	}
	if *timeout > 0 {
		cfg.OCRTimeout = *timeout
	}
	logger := logging.NewJSONLoggerTo(stderr, serviceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, serviceName, nil, logger)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer app.Close()

	var result domain.AnalysisResult
	if *text != "" {
		result = app.Analyzer.Analyze(*text)
	} else {
		doc, err := stageFile(ctx, app, fs.Arg(0))
		if err != nil {
			return err
		}
		started := time.Now()
		result, err = app.Pipeline.Run(ctx, doc)
		if err != nil {
			return fmt.Errorf("%s (%s)", domain.UserMessage(err), domain.KindName(err))
		}
		logger.Debug("analysis_finished", "duration_ms", time.Since(started).Milliseconds())
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	renderResult(stdout, result)
	return nil
}

// stageFile copies path into the upload store, since a pipeline run
// deletes its input.
func stageFile(ctx context.Context, app *bootstrap.App, path string) (*domain.UploadedDocument, error) {
	kind, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect media type: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	name := localfs.WithExtension(filepath.Base(path), kind.Extension())
	staged, err := app.Store.Save(ctx, name, f)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", path, err)
	}
	return &domain.UploadedDocument{
		Path:      staged,
		MediaType: mediaTypeOf(kind),
		SizeBytes: info.Size(),
		Filename:  name,
	}, nil
}

func mediaTypeOf(kind *mimetype.MIME) string {
	for m := kind; m != nil; m = m.Parent() {
		switch m.String() {
		case domain.MediaTypePDF, domain.MediaTypePNG, domain.MediaTypeJPEG:
			return m.String()
		}
	}
	return kind.String()
}
