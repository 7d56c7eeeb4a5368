package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/observability"
)

// MapResult describes one rendered heat map.
type MapResult struct {
	OutputPath string
	Center     domain.HeatPoint
	Points     int
	Dropped    int
	Malformed  int
}

// MapBuilder turns the combined dataset into a heat map centered on the
// mean accident location.
type MapBuilder struct {
	store      CombinedStore
	writer     MapWriter
	inputPath  string
	outputPath string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewMapBuilder creates a MapBuilder reading inputPath and writing outputPath.
func NewMapBuilder(store CombinedStore, writer MapWriter, inputPath, outputPath string, logger *slog.Logger, metrics *observability.Metrics) *MapBuilder {
	return &MapBuilder{
		store:      store,
		writer:     writer,
		inputPath:  inputPath,
		outputPath: outputPath,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run loads the combined dataset, normalizes coordinates and writes the map.
// A missing input, an empty dataset and an undefined center are all fatal.
func (b *MapBuilder) Run(ctx context.Context) (MapResult, error) {
	start := clock.Now()
	result := MapResult{OutputPath: b.outputPath}

	table, malformed, err := b.store.Load(b.inputPath)
	if err != nil {
		return result, fmt.Errorf("load combined dataset: %w", err)
	}
	b.logger.Info("parsed header", "columns", table.Columns, "rows", len(table.Rows))

	if malformed > 0 {
		b.logger.Warn("skipped rows with unexpected field count", "count", malformed)
		b.metrics.RowsDropped.WithLabelValues("malformed").Add(float64(malformed))
	}
	result.Malformed = malformed

	points, dropped, err := domain.ExtractHeatPoints(table)
	if err != nil {
		return result, err
	}
	if dropped > 0 {
		b.logger.Info("dropped rows with missing coordinates", "count", dropped)
		b.metrics.RowsDropped.WithLabelValues("coordinates").Add(float64(dropped))
	}
	result.Dropped = dropped

	if len(points) == 0 {
		return result, fmt.Errorf("%w: check the CSV file format and conversion logic", domain.ErrNoValidRows)
	}

	center, err := domain.Centroid(points)
	if err != nil {
		return result, err
	}
	bounds := domain.Bounds(points)
	b.logger.Info("computed map center",
		"lat", center.Lat(),
		"lon", center.Lon(),
		"min_lat", bounds.Min.Lat(),
		"min_lon", bounds.Min.Lon(),
		"max_lat", bounds.Max.Lat(),
		"max_lon", bounds.Max.Lon(),
	)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := b.writer.WriteMap(b.outputPath, center, points); err != nil {
		return result, fmt.Errorf("write heat map: %w", err)
	}

	result.Center = center
	result.Points = len(points)
	b.metrics.MapPoints.Set(float64(len(points)))
	b.metrics.RunDuration.WithLabelValues("heatmap").Set(clock.Since(start).Seconds())
	b.logger.Info("heatmap saved", "path", b.outputPath, "points", len(points))
	return result, nil
}
