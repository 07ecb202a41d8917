package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/docsign-backend/internal/config"
)

// redactedKeys never reach the log output with their values. Signer access
// tokens are bearer credentials and signature images are personal data.
var redactedKeys = map[string]bool{
	"access_token":   true,
	"token":          true,
	"authorization":  true,
	"signature_data": true,
	"image_data":     true,
	"api_key":        true,
}

// NewLogger builds the process logger on stderr and installs it as the
// slog default. Format "json" is for production, "text" adds source
// locations for development.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redact,
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if redactedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "***")
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
