// Package tesseract runs optical text recognition through the tesseract CLI.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
	"github.com/kirillkom/content-analyzer/internal/infrastructure/resilience"
)

const (
	DefaultBinary   = "tesseract"
	DefaultLanguage = "eng"

	maxStderrBytes = 4 << 10
	killGrace      = 2 * time.Second
)

type Options struct {
	Binary   string
	Executor *resilience.Executor
	Logger   *slog.Logger
}

type Engine struct {
	binary   string
	executor *resilience.Executor
	logger   *slog.Logger
}

func New(options Options) *Engine {
	binary := strings.TrimSpace(options.Binary)
	if binary == "" {
		binary = DefaultBinary
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		binary:   binary,
		executor: options.Executor,
		logger:   logger,
	}
}

// Recognize prints the recognized text of path to stdout and returns it.
// Cancelling ctx kills the tesseract process.
func (e *Engine) Recognize(ctx context.Context, path, language string, progress domain.ProgressFunc) (string, error) {
	if progress == nil {
		progress = func(string, float64) {}
	}
	language = strings.TrimSpace(language)
	if language == "" {
		language = DefaultLanguage
	}

	progress("initializing", 0)

	var text string
	call := func(ctx context.Context) error {
		out, err := e.run(ctx, path, language, progress)
		if err != nil {
			return err
		}
		text = out
		return nil
	}

	var err error
	if e.executor != nil {
		err = e.executor.Execute(ctx, "ocr.tesseract", call, resilience.UnavailableOnly)
	} else {
		err = call(ctx)
	}
	if err != nil {
		if resilience.IsCircuitOpen(err) {
			return "", domain.WrapError(domain.ErrRecognitionFailure, "tesseract", err)
		}
		return "", err
	}

	progress("done", 1)
	return text, nil
}

func (e *Engine) run(ctx context.Context, path, language string, progress domain.ProgressFunc) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, path, "stdout", "-l", language)
	cmd.WaitDelay = killGrace

	var stdout bytes.Buffer
	stderr := &limitedBuffer{limit: maxStderrBytes}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return "", domain.WrapError(domain.ErrRecognitionFailure, "start tesseract", resilience.Unavailable(err))
	}
	progress("recognizing text", 0.5)

	start := time.Now()
	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		e.logger.Debug("tesseract_cancelled", "path", path, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("tesseract: %w", ctxErr)
	}
	// A non-zero exit is usually caused by the image itself and is not held
	// against the breaker.
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", domain.NewError(domain.ErrRecognitionFailure, "tesseract", detail)
	}

	e.logger.Debug("tesseract_finished", "path", path, "language", language, "elapsed_ms", time.Since(start).Milliseconds())
	return stdout.String(), nil
}

type limitedBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *limitedBuffer) String() string {
	return b.buf.String()
}
