// Command heatmap renders the combined pedestrian accident dataset as an
// interactive HTML heat map.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/adapter/heatmap"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/config"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/observability"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/pipeline"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

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
	logger = logger.With("job", "heatmap", "run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	b := pipeline.NewMapBuilder(
		csvfile.CombinedFile{},
		heatmap.NewWriter(cfg.MapZoom, cfg.HeatRadius),
		filepath.Join(cfg.OutputDir, cfg.CombinedFile),
		filepath.Join(cfg.OutputDir, cfg.MapFile),
		logger,
		metrics,
	)

	result, err := b.Run(ctx)
	stop()

	code := 0
	if err != nil {
		logger.Error("heat map generation failed", "error", err)
		code = 1
	} else {
		logger.Info("heat map complete", "output", result.OutputPath, "points", result.Points)
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
