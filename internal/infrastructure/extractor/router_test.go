package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

type stubExtractor struct {
	name  string
	calls int
}

func (s *stubExtractor) Extract(context.Context, *domain.UploadedDocument) (domain.ExtractionResult, error) {
	s.calls++
	return domain.ExtractionResult{Text: s.name}, nil
}

func TestRouteSelectsExtractorByMediaType(t *testing.T) {
	pdf := &stubExtractor{name: "pdf"}
	image := &stubExtractor{name: "image"}
	router := NewRouter(pdf, image)

	tests := []struct {
		mediaType string
		want      *stubExtractor
	}{
		{mediaType: "application/pdf", want: pdf},
		{mediaType: "Application/PDF", want: pdf},
		{mediaType: "application/pdf; charset=binary", want: pdf},
		{mediaType: "image/png", want: image},
		{mediaType: "image/jpeg", want: image},
		{mediaType: "IMAGE/WEBP", want: image},
		{mediaType: " image/tiff ", want: image},
	}
	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			got, err := router.Route(tt.mediaType)
			require.NoError(t, err)
			require.Same(t, tt.want, got)
		})
	}
}

func TestRouteRejectsUnsupportedMediaTypes(t *testing.T) {
	router := NewRouter(&stubExtractor{}, &stubExtractor{})

	for _, mediaType := range []string{"", "text/plain", "application/zip", "application/pdfx", "video/mp4"} {
		t.Run(mediaType, func(t *testing.T) {
			_, err := router.Route(mediaType)
			require.True(t, domain.IsKind(err, domain.ErrUnsupportedMediaType), "got %v", err)
		})
	}
}

func TestExtractDelegatesToRoutedExtractor(t *testing.T) {
	pdf := &stubExtractor{name: "pdf"}
	image := &stubExtractor{name: "image"}

	result, err := NewRouter(pdf, image).Extract(context.Background(), &domain.UploadedDocument{Path: "a.png", MediaType: "image/png"})

	require.NoError(t, err)
	require.Equal(t, "image", result.Text)
	require.Equal(t, 0, pdf.calls)
	require.Equal(t, 1, image.calls)
}
