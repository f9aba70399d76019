package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Error kinds. Every pipeline failure carries exactly one of these (plus
// ErrExtractionFailed around extractor kinds) somewhere in its chain.
var (
	ErrNoFile                 = errors.New("no file uploaded")
	ErrUnsupportedMediaType   = errors.New("unsupported media type")
	ErrNotFound               = errors.New("file not found")
	ErrInvalidFormat          = errors.New("invalid file format")
	ErrTooLarge               = errors.New("file too large")
	ErrParseFailure           = errors.New("parse failure")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	ErrTimeout                = errors.New("recognition timeout")
	ErrRecognitionFailure     = errors.New("recognition failure")
	ErrNoTextFound            = errors.New("no text found")
	ErrExtractionFailed       = errors.New("extraction failed")
)

// leafKinds is ordered from most to least specific; KindOf returns the first hit.
var leafKinds = []error{
	ErrNoFile,
	ErrUnsupportedMediaType,
	ErrTimeout,
	ErrNoTextFound,
	ErrTooLarge,
	ErrInvalidFormat,
	ErrUnsupportedImageFormat,
	ErrParseFailure,
	ErrRecognitionFailure,
	ErrNotFound,
	ErrExtractionFailed,
}

var kindNames = map[error]string{
	ErrNoFile:                 "no_file",
	ErrUnsupportedMediaType:   "unsupported_media_type",
	ErrNotFound:               "not_found",
	ErrInvalidFormat:          "invalid_format",
	ErrTooLarge:               "too_large",
	ErrParseFailure:           "parse_failure",
	ErrUnsupportedImageFormat: "unsupported_image_format",
	ErrTimeout:                "timeout",
	ErrRecognitionFailure:     "recognition_failure",
	ErrNoTextFound:            "no_text_found",
	ErrExtractionFailed:       "extraction_failed",
}

var userMessages = map[error]string{
	ErrNoFile:                 "No file uploaded",
	ErrUnsupportedMediaType:   "Unsupported file type",
	ErrNotFound:               "Uploaded file could not be read",
	ErrInvalidFormat:          "File does not appear to be a valid PDF",
	ErrTooLarge:               "File too large",
	ErrParseFailure:           "Failed to process PDF file",
	ErrUnsupportedImageFormat: "Unsupported image format",
	ErrTimeout:                "Image processing timed out",
	ErrRecognitionFailure:     "Failed to process image",
	ErrNoTextFound:            "No text could be extracted from the file",
	ErrExtractionFailed:       "Failed to extract text from the file",
}

const unexpectedErrorMessage = "An unexpected error occurred"

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

// NewError builds a kind-tagged error from a plain diagnostic detail.
func NewError(kind error, operation, detail string) error {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return fmt.Errorf("%s: %w", operation, kind)
	}
	return fmt.Errorf("%s: %w: %s", operation, kind, detail)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// KindOf returns the most specific kind in err's chain, or nil for untagged errors.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range leafKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// KindName is the stable snake_case label of err's kind, used in logs and metrics.
func KindName(err error) string {
	if err == nil {
		return "ok"
	}
	if name, ok := kindNames[KindOf(err)]; ok {
		return name
	}
	return "internal"
}

// UserMessage returns text that is safe to show to the caller. Untagged
// errors never leak their message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := userMessages[KindOf(err)]; ok {
		return msg
	}
	return unexpectedErrorMessage
}

// TimeoutError reports a recognition that did not settle within Duration.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("recognition timed out after %dms", e.Duration.Milliseconds())
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
