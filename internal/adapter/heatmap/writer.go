package heatmap

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
)

//go:embed map.html.tmpl
var mapTemplate string

var tmpl = template.Must(template.New("map.html").Parse(mapTemplate))

const defaultTitle = "Pedestrian accident hotspots"

// Writer renders a Leaflet map with a leaflet.heat layer as a standalone
// HTML document. It implements pipeline.MapWriter.
type Writer struct {
	zoom   int
	radius int
	title  string
}

// NewWriter creates a heat map writer with the initial zoom level and the
// per-point influence radius in pixels.
func NewWriter(zoom, radius int) *Writer {
	return &Writer{zoom: zoom, radius: radius, title: defaultTitle}
}

type pageData struct {
	Title     string
	CenterLat float64
	CenterLon float64
	Zoom      int
	Radius    int
	Points    [][2]float64 // [lat, lon], the order leaflet.heat expects
}

// WriteMap renders the map to path, creating its directory if needed.
func (w *Writer) WriteMap(path string, center domain.HeatPoint, points []domain.HeatPoint) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close map file: %w", cerr)
		}
	}()

	return w.Render(f, center, points)
}

// Render executes the map template into out.
func (w *Writer) Render(out io.Writer, center domain.HeatPoint, points []domain.HeatPoint) error {
	data := pageData{
		Title:     w.title,
		CenterLat: center.Lat(),
		CenterLon: center.Lon(),
		Zoom:      w.zoom,
		Radius:    w.radius,
		Points:    make([][2]float64, len(points)),
	}
	for i, p := range points {
		data.Points[i] = [2]float64{p.Lat(), p.Lon()}
	}

	if err := tmpl.Execute(out, data); err != nil {
		return fmt.Errorf("render heat map: %w", err)
	}
	return nil
}
