package httpadapter

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

const (
	defaultUploadMaxSize = 10 * 1024 * 1024
	// multipartOverhead covers boundaries and part headers around the file.
	multipartOverhead = 1 << 20
	formMemory        = 1 << 20

	msgFileTooLarge   = "File too large"
	msgNotAllowedType = "Only PDF and image files (JPEG, PNG) are allowed"
)

var (
	allowedMediaTypes = []string{domain.MediaTypePDF, domain.MediaTypeJPEG, "image/jpg", domain.MediaTypePNG}
	allowedExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}
)

func (rt *Router) analyze(w http.ResponseWriter, r *http.Request) {
	maxSize := rt.cfg.UploadMaxSize
	if maxSize <= 0 {
		maxSize = defaultUploadMaxSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(formMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, domain.UserMessage(domain.ErrNoFile))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.UserMessage(domain.ErrNoFile))
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		writeError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		return
	}

	mediaType, err := declaredOrSniffedMediaType(file, header)
	if err != nil {
		rt.logger.Error("upload_sniff_failed", "request_id", domain.RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, domain.UserMessage(err))
		return
	}
	if !isAllowedUpload(mediaType, header.Filename) {
		writeError(w, http.StatusBadRequest, msgNotAllowedType)
		return
	}

	path, err := rt.store.Save(r.Context(), header.Filename, file)
	if err != nil {
		rt.logger.Error("upload_save_failed", "request_id", domain.RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, domain.UserMessage(err))
		return
	}

	result, err := rt.analyzer.Run(r.Context(), &domain.UploadedDocument{
		Path:      path,
		MediaType: mediaType,
		SizeBytes: header.Size,
		Filename:  header.Filename,
	})
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), domain.UserMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// declaredOrSniffedMediaType trusts the part's Content-Type unless it is
// missing or generic, in which case the leading bytes decide.
func declaredOrSniffedMediaType(file multipart.File, header *multipart.FileHeader) (string, error) {
	declared := strings.TrimSpace(header.Header.Get("Content-Type"))
	if parsed, _, err := mime.ParseMediaType(declared); err == nil {
		declared = parsed
	}
	if declared != "" && declared != "application/octet-stream" {
		return strings.ToLower(declared), nil
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	parsed, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return detected.String(), nil
	}
	return parsed, nil
}

func isAllowedUpload(mediaType, filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return lo.Contains(allowedMediaTypes, mediaType) && lo.Contains(allowedExtensions, ext)
}
