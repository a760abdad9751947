package logger_test

import (
	"net/http/httptest"
	"testing"

	"line-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, zapcore.InvalidLevel},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"Warn", logger.Config{Level: "warn"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"Empty", logger.Config{}, zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.True(t, l.Core().Enabled(tt.enabled))
			if tt.off != zapcore.InvalidLevel {
				assert.False(t, l.Core().Enabled(tt.off))
			}
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "abc-123")
		logger.WithRayID(base, c).Info("with")
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0].ContextMap()[logger.RayIDKey])
	_, ok := entries[1].ContextMap()[logger.RayIDKey]
	assert.False(t, ok)
}
