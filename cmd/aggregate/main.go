// Command aggregate filters pedestrian accidents out of the yearly
// Unfallatlas extracts and writes them as one combined CSV.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/config"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/observability"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/pipeline"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Metrics are exported and the log file
// is closed whether or not the aggregation succeeds.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger, closeLog, err := observability.NewLogger(cfg)
	if err != nil {
		slog.Error("failed to open log", "error", err)
		return 1
	}
	logger = logger.With("job", "aggregate", "run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	source := csvfile.NewSourceReader(cfg.InputDir, cfg.SourcePattern, cfg.SourceCharset)
	outputPath := filepath.Join(cfg.OutputDir, cfg.CombinedFile)
	agg := pipeline.NewAggregator(source, csvfile.CombinedFile{}, cfg.Years(), outputPath, logger, metrics)

	summary, err := agg.Run(ctx)
	stop()

	code := 0
	if err != nil {
		logger.Error("aggregation failed", "error", err)
		code = 1
	} else {
		logger.Info("processing complete", "output", summary.OutputPath, "records", summary.Records)
	}

	if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
		logger.Warn("write metrics textfile failed", "path", cfg.MetricsTextfile, "error", err)
	}
	if err := closeLog(); err != nil {
		slog.Error("close log file", "error", err)
		code = 1
	}
	return code
}
