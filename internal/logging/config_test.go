package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw   string
		level zerolog.Level
		ok    bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{" DEBUG ", zerolog.DebugLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			level, ok := parseLevel(tt.raw)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")
	t.Setenv(EnvLogBypass, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	assert.Equal(t, Config{Level: zerolog.ErrorLevel, Timestamp: false, NoColor: true}, cfg)
	assert.True(t, NoColor())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Config{Level: zerolog.InfoLevel, Timestamp: true}, defaultConfig(ProfileRuntime))
	assert.Equal(t, Config{Level: zerolog.DebugLevel}, defaultConfig(ProfileTest))
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Bypass: true}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "fieldaccess_gen.go").Msg("written")

	assert.Equal(t, `{"level":"info","file":"fieldaccess_gen.go","message":"written"}`+"\n", buf.String())

	buf.Reset()
	console := New(Config{Level: zerolog.InfoLevel, NoColor: true}, &buf)
	console.Warn().Msg("careful")

	assert.Contains(t, buf.String(), "WRN careful")
}

func TestSetLevel(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	cfg := defaultConfig(ProfileRuntime)
	cfg.NoColor = true
	log.Logger = New(cfg, &buf)

	log.Debug().Msg("before")
	assert.Empty(t, buf.String())

	SetLevel(zerolog.DebugLevel)
	log.Debug().Msg("after")

	assert.Contains(t, buf.String(), "DBG after")
	assert.NotContains(t, buf.String(), "before")
}
