package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage keeps uploads in a flat directory for the lifetime of one request.
type Storage struct {
	basePath string
	now      func() time.Time
}

func New(basePath string) (*Storage, error) {
	if basePath == "" {
		basePath = "uploads"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	return &Storage{basePath: abs, now: time.Now}, nil
}

func (s *Storage) BasePath() string {
	return s.basePath
}

// Save writes data under a collision-free name derived from filename and
// returns the absolute path. A partial file is removed when the copy fails.
func (s *Storage) Save(ctx context.Context, filename string, data io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	name := fmt.Sprintf("%d-%s-%s", s.now().UnixNano(), uuid.NewString(), sanitizeFilename(filename))
	path := filepath.Join(s.basePath, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}
	return path, nil
}

// Remove deletes a file previously returned by Save. Removing a file that is
// already gone succeeds.
func (s *Storage) Remove(_ context.Context, path string) error {
	if !s.owns(path) {
		return fmt.Errorf("remove file: %q is outside the upload dir", path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (s *Storage) owns(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(s.basePath, abs)
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		base = ""
	}
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "upload.bin"
	}
	return base
}

// WithExtension appends ext to name when name has none, so a file whose type
// was sniffed from content still passes extension checks downstream.
func WithExtension(name, ext string) string {
	if ext == "" || filepath.Ext(name) != "" {
		return name
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return name + ext
}
