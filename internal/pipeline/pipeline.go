package pipeline

import (
	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
)

// SourceReader finds yearly source files and parses them into tables.
type SourceReader interface {
	Discover() ([]string, error)
	ReadTable(path string) (domain.Table, error)
}

// CombinedStore persists the combined dataset and reads it back. Load also
// reports how many rows were malformed and left out.
type CombinedStore interface {
	Save(path string, records []domain.AccidentRecord) error
	Load(path string) (domain.Table, int, error)
}

// MapWriter renders the heat map artifact.
type MapWriter interface {
	WriteMap(path string, center domain.HeatPoint, points []domain.HeatPoint) error
}
