package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"frontdesk/config"
	"frontdesk/shared/constant"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	ErrorWithStack(errors.New("failed to lock room 102"))

	assert.Contains(t, buf.String(), "failed to lock room 102")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{name: "configured", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "unset", level: "", wantLevel: zerolog.TraceLevel},
		{name: "unknown", level: "loud", wantLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			SetLogLevel(cfg)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_ProductionWritesJSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "frontdesk"

	var buf bytes.Buffer
	setLogLevel(cfg, &buf)

	log.Info().Str("booking_id", "SRH-20240510-ABC123").Msg("booking created")

	assert.Contains(t, buf.String(), `"app":"frontdesk"`)
	assert.Contains(t, buf.String(), `"booking_id":"SRH-20240510-ABC123"`)
}
