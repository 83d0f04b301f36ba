package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/landmap/camellia/appenv"
)

func TestNew(t *testing.T) {
	for _, environment := range []string{appenv.Development, appenv.Production, "staging"} {
		t.Run(environment, func(t *testing.T) {
			logger, err := New(environment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if logger == nil {
				t.Fatalf("expected logger instance")
			}
			_ = logger.Sync()
		})
	}
}

func TestNewLevels(t *testing.T) {
	dev, err := New(appenv.Development)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug output in development")
	}

	prod, err := New(appenv.Production)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug output to be disabled outside development")
	}
}

func TestProductionConfigEncoding(t *testing.T) {
	cfg := productionConfig()
	if cfg.Encoding != "json" {
		t.Fatalf("expected json encoding, got %q", cfg.Encoding)
	}
	if cfg.EncoderConfig.TimeKey != "timestamp" {
		t.Fatalf("expected timestamp key, got %q", cfg.EncoderConfig.TimeKey)
	}
}
