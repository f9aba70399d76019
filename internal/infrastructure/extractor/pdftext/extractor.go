// Package pdftext extracts the embedded text layer of PDF uploads.
// Scanned PDFs without a text layer fail with domain.ErrNoTextFound.
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

// DefaultMaxBytes is the largest PDF accepted when no limit is configured.
const DefaultMaxBytes int64 = 50 * 1024 * 1024

var headerSignature = []byte("%PDF-")

type Extractor struct {
	maxBytes int64
}

func NewExtractor(maxBytes int64) *Extractor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Extractor{maxBytes: maxBytes}
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.UploadedDocument) (domain.ExtractionResult, error) {
	if doc == nil {
		return domain.ExtractionResult{}, domain.NewError(domain.ErrNotFound, "extract pdf", "no document")
	}
	return e.ExtractFile(ctx, doc.Path)
}

// ExtractFile validates path and returns the text of every page joined by newlines.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (domain.ExtractionResult, error) {
	info, err := e.Validate(path)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	text, pages, err := readText(ctx, path, info.Size())
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		return domain.ExtractionResult{}, domain.NewError(domain.ErrNoTextFound, "extract pdf", "no text layer in PDF")
	}
	return domain.ExtractionResult{Text: text, PageCount: pages}, nil
}

// Metadata returns page count, header version and the trailer Info strings
// without extracting page text.
func (e *Extractor) Metadata(ctx context.Context, path string) (domain.PDFMetadata, error) {
	info, err := e.Validate(path)
	if err != nil {
		return domain.PDFMetadata{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.PDFMetadata{}, fmt.Errorf("pdf metadata: %w", err)
	}
	return readMetadata(path, info.Size())
}

// Validate runs the cheap structural checks: existence, size and header
// signature. It never invokes the parser.
func (e *Extractor) Validate(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewError(domain.ErrNotFound, "validate pdf", path)
		}
		return nil, domain.WrapError(domain.ErrNotFound, "validate pdf", err)
	}
	if info.IsDir() {
		return nil, domain.NewError(domain.ErrInvalidFormat, "validate pdf", "path is a directory")
	}
	if info.Size() > e.maxBytes {
		return nil, domain.NewError(
			domain.ErrTooLarge,
			"validate pdf",
			fmt.Sprintf("%.2fMB exceeds %.2fMB", megabytes(info.Size()), megabytes(e.maxBytes)),
		)
	}

	header, err := readHeader(path, 8)
	if err != nil {
		return nil, domain.WrapError(domain.ErrNotFound, "validate pdf", err)
	}
	if !bytes.HasPrefix(header, headerSignature) {
		return nil, domain.NewError(domain.ErrInvalidFormat, "validate pdf", "file does not appear to be a valid PDF")
	}
	return info, nil
}

func readHeader(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return buf[:read], nil
}

func megabytes(n int64) float64 {
	return float64(n) / (1024 * 1024)
}
