package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=debug info warn warning error"`

	UploadDir     string `validate:"required"`
	UploadMaxSize int64  `validate:"gt=0"`
	MaxPDFSize    int64  `validate:"gt=0"`

	OCRLanguage   string        `validate:"required"`
	OCRTimeout    time.Duration `validate:"gt=0"`
	TesseractPath string        `validate:"required"`

	RateLimitMax    int           `validate:"gt=0"`
	RateLimitWindow time.Duration `validate:"gt=0"`
	MaxConnections  int           `validate:"gte=0"`
	CORSOrigin      string        `validate:"required"`

	NATSURL     string `validate:"omitempty,url"`
	NATSSubject string `validate:"required"`
}

// Load resolves every key from the environment first, then from the YAML
// file named by CONFIG_FILE, then from the built-in default. A .env file in
// the working directory is merged into the environment without overriding it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	file, err := readFile(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return Config{}, err
	}
	src := source{file: file}

	cfg := Config{
		Port:     src.mustEnv("PORT", "5000"),
		LogLevel: strings.ToLower(src.mustEnv("LOG_LEVEL", "info")),

		UploadDir:     src.mustEnv("UPLOAD_DIR", "uploads"),
		UploadMaxSize: src.mustEnvInt64("UPLOAD_MAX_SIZE", 10*1024*1024),
		MaxPDFSize:    src.mustEnvInt64("MAX_PDF_SIZE", 50*1024*1024),

		OCRLanguage:   src.mustEnv("OCR_LANGUAGE", "eng"),
		OCRTimeout:    time.Duration(src.mustEnvInt("OCR_TIMEOUT_MS", 30000)) * time.Millisecond,
		TesseractPath: src.mustEnv("TESSERACT_PATH", "tesseract"),

		RateLimitMax:    src.mustEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: time.Duration(src.mustEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900)) * time.Second,
		MaxConnections:  src.mustEnvInt("MAX_CONNECTIONS", 256),
		CORSOrigin:      src.mustEnv("CORS_ORIGIN", "*"),

		NATSURL:     src.mustEnv("NATS_URL", ""),
		NATSSubject: src.mustEnv("NATS_SUBJECT", "analysis.completed"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readFile(path string) (map[string]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	out := make(map[string]string, len(values))
	for key, value := range values {
		if value == nil {
			continue
		}
		out[strings.ToUpper(strings.TrimSpace(key))] = fmt.Sprint(value)
	}
	return out, nil
}

type source struct {
	file map[string]string
}

func (s source) lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return s.file[key]
}

func (s source) mustEnv(key, fallback string) string {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	return v
}

func (s source) mustEnvInt(key string, fallback int) int {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (s source) mustEnvInt64(key string, fallback int64) int64 {
	v := s.lookup(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
