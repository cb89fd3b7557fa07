package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContext_FieldsCarried(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	ctx := WithContext(context.Background(), zap.String("request_id", "r-1"))
	ctx = WithContext(ctx, zap.String("method", "GET"))
	Info(ctx, "request sent", zap.Int("status", 200))
	Warnf(ctx, "slow request: %dms", 1200)

	entries := logs.All()
	assert.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "r-1", fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, int64(200), fields["status"])

	assert.Equal(t, "slow request: 1200ms", entries[1].Message)
	assert.Equal(t, "r-1", entries[1].ContextMap()["request_id"])
}

func TestWithContext_NoFields(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithContext(ctx))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"unknown", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestInitLogger_File(t *testing.T) {
	defer SetLogger(nil)

	logFile := filepath.Join(t.TempDir(), "client.log")
	InitLogger(Config{LogFile: logFile, Level: "debug", MaxSize: 1})
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))

	Info(context.Background(), "hello")
	assert.NoError(t, Sync())
	assert.FileExists(t, logFile)
}
