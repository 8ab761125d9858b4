package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		env       string
		wantLevel zerolog.Level
	}{
		{"default info level", 0, "", zerolog.InfoLevel},
		{"debug level", 1, "", zerolog.DebugLevel},
		{"trace level", 2, "", zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, "", zerolog.TraceLevel},
		{"env filter wins", 2, "warn", zerolog.WarnLevel},
		{"env filter is case insensitive", 0, "ERROR", zerolog.ErrorLevel},
		{"invalid env filter falls back to flag", 1, "loud", zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Setenv(EnvLogLevel, tt.env)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "lazysetup", "lazysetup.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "lazysetup", "lazysetup.log"), getLogFilePath())
}

func TestLogOperationStart(t *testing.T) {
	done := LogOperationStart(GetLogger("test"), "clone")
	assert.NotNil(t, done)
	done()
}

func TestSetupLogger_ClosesPreviousLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(EnvLogLevel, "")

	SetupLogger(0)
	first := logFile
	require.NotNil(t, first)

	SetupLogger(0)
	second := logFile
	require.NotNil(t, second)
	assert.NotSame(t, first, second)

	_, err := first.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	_, err = second.Write([]byte("{}\n"))
	assert.NoError(t, err)
}
