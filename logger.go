package storageclient

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with storage-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOpID tags the logger with a fresh operation id.
func (l *Logger) WithOpID() *Logger {
	return &Logger{
		Logger: l.Logger.With("op_id", uuid.NewString()),
	}
}

// WithTarget adds file type and path fields to the logger.
func (l *Logger) WithTarget(ft FileType, path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("file_type", ft.String(), "path", path),
	}
}

// LogExists logs an existence check.
func (l *Logger) LogExists(ctx context.Context, exists bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "exists failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "exists completed",
			"exists", exists,
		)
	}
}

// LogFetch logs a fetch operation.
func (l *Logger) LogFetch(ctx context.Context, resp *StorageFileResponse, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch failed",
			"error", err,
		)
		return
	}
	if !resp.Status {
		l.InfoContext(ctx, "fetch found nothing",
			"message", resp.Message,
		)
		return
	}
	l.DebugContext(ctx, "fetch completed",
		"content_type", resp.ContentType,
		"bytes", len(resp.RawData),
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(ctx context.Context, resp *FileResponse, err error) {
	if err != nil {
		l.ErrorContext(ctx, "delete failed",
			"error", err,
		)
		return
	}
	if !resp.Status {
		l.WarnContext(ctx, "delete not performed",
			"message", resp.Message,
		)
		return
	}
	l.DebugContext(ctx, "delete completed",
		"message", resp.Message,
	)
}

// LogUpload logs an upload operation.
// Failures are reported at warn level since Upload degrades them to false.
func (l *Logger) LogUpload(ctx context.Context, cause error) {
	if cause != nil {
		l.WarnContext(ctx, "upload failed",
			"error", cause,
		)
	} else {
		l.DebugContext(ctx, "upload completed")
	}
}
