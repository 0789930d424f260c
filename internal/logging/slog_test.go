package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug(context.Background(), "msg") }, "DEBUG"},
		{"info", func(l *SlogLogger) { l.Info(context.Background(), "msg") }, "INFO"},
		{"warn", func(l *SlogLogger) { l.Warn(context.Background(), "msg") }, "WARN"},
		{"error", func(l *SlogLogger) { l.Error(context.Background(), "msg") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger(t)
			tt.log(l)
			rec := lastRecord(t, buf)
			require.Equal(t, tt.level, rec["level"])
			require.Equal(t, "msg", rec["msg"])
		})
	}
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufLogger(t)
	child := l.With("module", "cache")
	child.Info(context.Background(), "hit", "key", "playlist-1")

	rec := lastRecord(t, buf)
	require.Equal(t, "cache", rec["module"])
	require.Equal(t, "playlist-1", rec["key"])
}
