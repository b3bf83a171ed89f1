package logging

import (
	"context"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	StreamKey    contextKey = "stream"
)

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

func WithStream(ctx context.Context, stream string) context.Context {
	return context.WithValue(ctx, StreamKey, stream)
}

func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

func GetStream(ctx context.Context) string {
	if stream, ok := ctx.Value(StreamKey).(string); ok {
		return stream
	}
	return ""
}

func GetLogFields(ctx context.Context) []interface{} {
	fields := make([]interface{}, 0, 4)

	if sessionID := GetSessionID(ctx); sessionID != "" {
		fields = append(fields, "session_id", sessionID)
	}

	if stream := GetStream(ctx); stream != "" {
		fields = append(fields, "stream", stream)
	}

	return fields
}
