package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/observability"
)

// Summary describes one aggregation run.
type Summary struct {
	OutputPath     string
	Records        int
	PerYear        map[int]int
	FilesProcessed int
	FilesSkipped   int
	Duration       time.Duration
}

// Aggregator filters pedestrian accidents out of the yearly source files and
// writes them as one combined dataset.
type Aggregator struct {
	source     SourceReader
	store      CombinedStore
	years      []int
	outputPath string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewAggregator creates an Aggregator for the given target years.
func NewAggregator(source SourceReader, store CombinedStore, years []int, outputPath string, logger *slog.Logger, metrics *observability.Metrics) *Aggregator {
	return &Aggregator{
		source:     source,
		store:      store,
		years:      years,
		outputPath: outputPath,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run processes every target year and saves the combined dataset.
// Missing or unreadable files are logged and skipped; only discovery,
// cancellation and the final write are fatal.
func (a *Aggregator) Run(ctx context.Context) (Summary, error) {
	a.logger.Info("starting pedestrian accident data processing")
	start := clock.Now()

	records, summary, err := a.ProcessAll(ctx)
	if err != nil {
		return summary, err
	}

	if err := a.store.Save(a.outputPath, records); err != nil {
		return summary, fmt.Errorf("save combined dataset: %w", err)
	}
	a.logger.Info("saved output", "path", a.outputPath)

	summary.OutputPath = a.outputPath
	summary.Duration = clock.Since(start)
	a.metrics.RunDuration.WithLabelValues("aggregate").Set(summary.Duration.Seconds())

	a.logger.Info("processing completed",
		"duration", summary.Duration.Round(10*time.Millisecond),
		"records", summary.Records,
		"years", len(a.years),
	)
	return summary, nil
}

// ProcessAll filters each selected yearly file and concatenates the results
// in year order. An empty result is not an error.
func (a *Aggregator) ProcessAll(ctx context.Context) ([]domain.AccidentRecord, Summary, error) {
	summary := Summary{PerYear: make(map[int]int, len(a.years))}

	paths, err := a.source.Discover()
	if err != nil {
		return nil, summary, err
	}

	selected, missing := domain.SelectYearFiles(paths, a.years)
	for _, year := range missing {
		a.logger.Warn("no accident data file found", "year", year)
		a.metrics.FilesSkipped.WithLabelValues("missing").Inc()
		summary.FilesSkipped++
	}
	a.logger.Info("found input files", "count", len(selected))

	var combined []domain.AccidentRecord
	for _, yf := range selected {
		if err := ctx.Err(); err != nil {
			return nil, summary, err
		}

		records, err := a.processFile(yf)
		if err != nil {
			a.logger.Error("error processing file", "path", yf.Path, "year", yf.Year, "error", err)
			a.metrics.FilesSkipped.WithLabelValues("error").Inc()
			summary.FilesSkipped++
			continue
		}

		a.logger.Info("pedestrian accidents found", "year", yf.Year, "records", len(records))
		a.metrics.FilesProcessed.Inc()
		summary.FilesProcessed++
		summary.PerYear[yf.Year] += len(records)
		combined = append(combined, records...)
	}

	summary.Records = len(combined)
	a.metrics.RecordsKept.Add(float64(len(combined)))
	if len(combined) == 0 {
		a.logger.Warn("no valid data was processed")
		return []domain.AccidentRecord{}, summary, nil
	}
	a.logger.Info("combined data", "records", len(combined))
	return combined, summary, nil
}

func (a *Aggregator) processFile(yf domain.YearFile) ([]domain.AccidentRecord, error) {
	a.logger.Info("processing data", "year", yf.Year, "path", yf.Path)

	table, err := a.source.ReadTable(yf.Path)
	if err != nil {
		return nil, err
	}
	a.metrics.RowsRead.Add(float64(len(table.Rows)))

	return domain.ExtractPedestrianRecords(table, yf.Year)
}
