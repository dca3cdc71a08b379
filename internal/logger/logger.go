// Package logger builds the zap logger shared by the API, the CLI and the jobs.
package logger

import (
	"fmt"
	"time"

	"github.com/siamsupply/shop-api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bangkok is used for console timestamps so local runs read in shop time
var bangkok = time.FixedZone("ICT", 7*60*60)

// NewLogger creates the application logger. Production and "json" format
// write JSON with UTC ISO-8601 timestamps; everything else writes coloured
// console output stamped in Bangkok time.
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" || appCfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "ts"
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
		zapCfg.Sampling = nil
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.In(bangkok).Format("15:04:05.000"))
		}
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapCfg.InitialFields = map[string]interface{}{
		"app":         appCfg.Name,
		"environment": appCfg.Environment,
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// WithRequest scopes a logger to one HTTP request
func WithRequest(log *zap.Logger, method, path, requestID string) *zap.Logger {
	return log.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)
}

// WithCaller adds the authenticated caller (token subject or "system" for the API key)
func WithCaller(log *zap.Logger, subject, role string) *zap.Logger {
	return log.With(
		zap.String("caller", subject),
		zap.String("role", role),
	)
}

// ForJob names a logger after a scheduled job
func ForJob(log *zap.Logger, job string) *zap.Logger {
	return log.Named("job").With(zap.String("job", job))
}
