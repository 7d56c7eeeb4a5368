package observability

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accident_processing.log")
	cfg := &config.Config{LogLevel: "info", LogFormat: "text", LogFile: path}

	logger, closeFn, err := NewLogger(cfg)
	require.NoError(t, err)

	logger.Info("processing data", "year", 2021)
	logger.Debug("hidden at info level")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "processing data")
	assert.Contains(t, string(data), "year=2021")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewLogger_NoFile(t *testing.T) {
	logger, closeFn, err := NewLogger(&config.Config{LogFormat: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closeFn())
}

func TestNewLogger_BadPath(t *testing.T) {
	cfg := &config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "dir", "x.log")}
	_, _, err := NewLogger(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.FilesProcessed.Add(3)
	m.FilesSkipped.WithLabelValues("missing").Inc()
	m.RecordsKept.Add(42)

	assert.InDelta(t, 42.0, testutil.ToFloat64(m.RecordsKept), 0)

	path := filepath.Join(t.TempDir(), "accidents.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pedestrian_accidents_files_processed_total 3")
	assert.Contains(t, string(data), `pedestrian_accidents_files_skipped_total{reason="missing"} 1`)
	assert.Contains(t, string(data), "pedestrian_accidents_records_kept_total 42")
}

func TestMetrics_WriteTextfileDisabled(t *testing.T) {
	assert.NoError(t, NewMetrics().WriteTextfile(""))
}
