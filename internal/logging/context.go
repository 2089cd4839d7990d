package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type contextKey int

const (
	loggerKey contextKey = iota
	fileKey
)

// FromContext returns the logger attached to ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLogger attaches logger to ctx. A nil ctx is treated as Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFile scopes ctx to one input file: the attached logger gains a path
// field, so every message logged while the file is processed names it.
func WithFile(ctx context.Context, path string) context.Context {
	ctx = WithLogger(ctx, FromContext(ctx).With(FieldPath, path))
	return context.WithValue(ctx, fileKey, path)
}

// FileFromContext returns the path set by WithFile, or "" outside a file scope.
func FileFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	path, _ := ctx.Value(fileKey).(string)
	return path
}
