package httpadapter

import (
	"net/http"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

// mapErrorToHTTPStatus classifies by kind only; extraction kinds are checked
// before the generic ExtractionFailed wrapper.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrNoFile):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case domain.IsKind(err, domain.ErrNoTextFound):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case domain.IsKind(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
