package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	sourceDirKey contextKey = "source_dir"
)

// WithRunID annotates context with the invocation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the invocation identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSourceDir annotates context with the directory being organized.
func WithSourceDir(ctx context.Context, dir string) context.Context {
	if dir == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceDirKey, dir)
}

// SourceDirFromContext returns the directory being organized if present.
func SourceDirFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sourceDirKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
