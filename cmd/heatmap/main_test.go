package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRunEnv(t *testing.T, outputDir string) (logFile, textfile string) {
	t.Helper()
	dir := t.TempDir()
	logFile = filepath.Join(dir, "accident_processing.log")
	textfile = filepath.Join(dir, "heatmap.prom")
	t.Setenv("OUTPUT_DIR", outputDir)
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("METRICS_TEXTFILE", textfile)
	return logFile, textfile
}

func TestRun_Success(t *testing.T) {
	outputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "PedestrianAccidents_2019_2023.csv"),
		[]byte("UJAHR,XGCSWGS84,YGCSWGS84\n2019,\"13,4\",\"52,5\"\n2020,\"9,99\",\"53,55\"\n"), 0o600))
	_, textfile := setRunEnv(t, outputDir)

	require.Equal(t, 0, run())

	assert.FileExists(t, filepath.Join(outputDir, "hotspots_map.html"))
	metrics, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "pedestrian_accidents_map_points 2")
}

func TestRun_MissingInputStillExportsMetricsAndClosesLog(t *testing.T) {
	outputDir := t.TempDir()
	logFile, textfile := setRunEnv(t, outputDir)

	require.Equal(t, 1, run())

	assert.NoFileExists(t, filepath.Join(outputDir, "hotspots_map.html"))
	assert.FileExists(t, textfile)

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `msg="heat map generation failed"`)
}
