package logger

import (
	"testing"

	"github.com/siamsupply/shop-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	app := &config.AppConfig{Name: "shop", Environment: "development"}

	log, err := NewLogger(&config.LoggingConfig{Level: "debug", Format: "console"}, app)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = NewLogger(&config.LoggingConfig{Level: "bogus", Format: "json"}, app)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestScopedLoggers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	WithRequest(base, "GET", "/api/products", "req-1").Info("request")
	WithCaller(base, "staff-7", "admin").Info("caller")
	ForJob(base, "quotation_expiry").Info("job")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "staff-7", entries[1].ContextMap()["caller"])
	assert.Equal(t, "job", entries[2].LoggerName)
	assert.Equal(t, "quotation_expiry", entries[2].ContextMap()["job"])
}
