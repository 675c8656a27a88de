package log

import (
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevels(t *testing.T) {
	SetLogLevels("debug")
	for id, logger := range SubsystemLoggers {
		require.Equal(t, btclog.LevelDebug, logger.Level(), id)
	}

	SetLogLevel("HTTP", "warn")
	require.Equal(t, btclog.LevelWarn, HTTPLog.Level())

	// Unknown subsystems are ignored.
	SetLogLevel("NOPE", "trace")

	SetLogLevels("info")
}

func TestValidLogLevel(t *testing.T) {
	require.True(t, ValidLogLevel("trace"))
	require.True(t, ValidLogLevel("critical"))
	require.False(t, ValidLogLevel("loud"))
}

func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "hdwallet.log")
	require.NoError(t, InitLogRotator(logFile))
	t.Cleanup(func() {
		LogRotator.Close()
		LogRotator = nil
	})

	MainLog.Infof("rotator test")
}
