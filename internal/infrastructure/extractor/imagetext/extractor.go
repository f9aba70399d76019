// Package imagetext extracts text from raster images through a ports.Recognizer.
package imagetext

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/core/ports"
)

const (
	DefaultLanguage = "eng"
	DefaultTimeout  = 30 * time.Second
)

var supportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".webp"}

type Options struct {
	Language string
	Timeout  time.Duration
	Progress domain.ProgressFunc
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Language) == "" {
		o.Language = DefaultLanguage
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

type Extractor struct {
	recognizer ports.Recognizer
	defaults   Options
}

func NewExtractor(recognizer ports.Recognizer, defaults Options) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		defaults:   defaults.withDefaults(),
	}
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.UploadedDocument) (domain.ExtractionResult, error) {
	if doc == nil {
		return domain.ExtractionResult{}, domain.NewError(domain.ErrNotFound, "extract image", "no document")
	}
	text, err := e.ExtractWithOptions(ctx, doc.Path, e.defaults)
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	return domain.ExtractionResult{Text: text}, nil
}

type outcome struct {
	text string
	err  error
}

// ExtractWithOptions recognizes the text of the image at path. The first of
// result, failure or deadline settles the call; on deadline the recognizer's
// context is cancelled and its late result is discarded.
func (e *Extractor) ExtractWithOptions(ctx context.Context, path string, opts Options) (string, error) {
	opts = opts.withDefaults()
	if err := Validate(path); err != nil {
		return "", err
	}

	gate := newProgressGate(opts.Progress)
	defer gate.close()

	runCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		text, err := e.recognize(runCtx, path, opts.Language, gate.report)
		done <- outcome{text: text, err: err}
	}()

	var res outcome
	select {
	case res = <-done:
	case <-runCtx.Done():
		return "", interrupted(ctx, opts.Timeout)
	}

	if res.err != nil {
		if runCtx.Err() != nil {
			return "", interrupted(ctx, opts.Timeout)
		}
		if domain.KindOf(res.err) != nil {
			return "", res.err
		}
		return "", domain.WrapError(domain.ErrRecognitionFailure, "extract image", res.err)
	}
	if strings.TrimSpace(res.text) == "" {
		return "", domain.NewError(domain.ErrNoTextFound, "extract image", "no text recognized in image")
	}
	return res.text, nil
}

// interrupted reports a run whose context ended first: a timeout when our own
// deadline fired, a recognition failure when the caller cancelled.
func interrupted(parent context.Context, timeout time.Duration) error {
	if err := parent.Err(); err != nil {
		return domain.WrapError(domain.ErrRecognitionFailure, "extract image", err)
	}
	return fmt.Errorf("extract image: %w", &domain.TimeoutError{Duration: timeout})
}

func (e *Extractor) recognize(ctx context.Context, path, language string, progress domain.ProgressFunc) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewError(domain.ErrRecognitionFailure, "recognize", fmt.Sprint(r))
		}
	}()
	return e.recognizer.Recognize(ctx, path, language, progress)
}

// Validate checks existence and extension without reading the image.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewError(domain.ErrNotFound, "validate image", path)
		}
		return domain.WrapError(domain.ErrNotFound, "validate image", err)
	}
	if info.IsDir() {
		return domain.NewError(domain.ErrUnsupportedImageFormat, "validate image", "path is a directory")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(supportedExtensions, ext) {
		return domain.NewError(domain.ErrUnsupportedImageFormat, "validate image", fmt.Sprintf("extension %q", ext))
	}
	return nil
}
