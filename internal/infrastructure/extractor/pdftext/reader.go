package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

// The pdf library panics on some malformed inputs; both readers turn
// that into a parse failure.

func readText(ctx context.Context, path string, size int64) (text string, pages int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, domain.WrapError(domain.ErrNotFound, "open pdf", err)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = domain.NewError(domain.ErrParseFailure, "parse pdf", fmt.Sprint(r))
		}
	}()

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return "", 0, domain.WrapError(domain.ErrParseFailure, "parse pdf", err)
	}

	pages = reader.NumPage()
	fonts := make(map[string]*pdf.Font)
	parts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, fmt.Errorf("parse pdf: %w", err)
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := page.Font(name)
				fonts[name] = &font
			}
		}

		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", 0, domain.WrapError(domain.ErrParseFailure, fmt.Sprintf("parse pdf page %d", i), err)
		}
		parts = append(parts, pageText)
	}
	return strings.Join(parts, "\n"), pages, nil
}

func readMetadata(path string, size int64) (meta domain.PDFMetadata, err error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.PDFMetadata{}, domain.WrapError(domain.ErrNotFound, "open pdf", err)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			meta = domain.PDFMetadata{}
			err = domain.NewError(domain.ErrParseFailure, "pdf metadata", fmt.Sprint(r))
		}
	}()

	reader, err := pdf.NewReader(f, size)
	if err != nil {
		return domain.PDFMetadata{}, domain.WrapError(domain.ErrParseFailure, "pdf metadata", err)
	}

	meta = domain.PDFMetadata{
		Pages:   reader.NumPage(),
		Version: headerVersion(path),
		Info:    map[string]string{},
	}

	info := reader.Trailer().Key("Info")
	for _, key := range info.Keys() {
		value := info.Key(key)
		if value.Kind() != pdf.String {
			continue
		}
		if text := strings.TrimSpace(value.Text()); text != "" {
			meta.Info[key] = text
		}
	}
	return meta, nil
}

// headerVersion reads "1.7" out of a "%PDF-1.7" header.
func headerVersion(path string) string {
	header, err := readHeader(path, 16)
	if err != nil {
		return ""
	}
	rest := strings.TrimPrefix(string(header), string(headerSignature))
	if idx := strings.IndexAny(rest, "\r\n \t%"); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}
