package domain

import (
	"errors"

	"github.com/paulmach/orb"
)

// Column names of the Unfallatlas extracts.
const (
	ColumnYear       = "UJAHR"
	ColumnPedestrian = "IstFuss"
	ColumnLongitude  = "XGCSWGS84"
	ColumnLatitude   = "YGCSWGS84"
)

// CombinedColumns is the header of the combined dataset, in output order.
var CombinedColumns = []string{ColumnYear, ColumnLongitude, ColumnLatitude}

var (
	// ErrMissingColumn is returned when a required column is absent from a header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyInput is returned when a file has no header line.
	ErrEmptyInput = errors.New("input has no header")

	// ErrNoValidRows is returned when no row survives coordinate filtering.
	ErrNoValidRows = errors.New("no valid data rows after processing")

	// ErrUndefinedCenter is returned when the map center cannot be computed.
	ErrUndefinedCenter = errors.New("computed map center is undefined")
)

// AccidentRecord is one pedestrian accident projected to year and raw
// coordinates. Coordinates keep the source's comma-decimal text.
type AccidentRecord struct {
	Year      int
	Longitude string
	Latitude  string
}

// Table is a parsed delimited file: a header and rows of string fields.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of each column name in the header.
func (t Table) Index() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}

// YearFile pairs a target year with the source file selected for it.
type YearFile struct {
	Year int
	Path string
}

// HeatPoint is a WGS-84 coordinate stored in orb order [lon, lat].
type HeatPoint orb.Point

// NewHeatPoint builds a point from latitude and longitude.
func NewHeatPoint(lat, lon float64) HeatPoint {
	return HeatPoint{lon, lat}
}

// Lat returns the latitude in degrees.
func (p HeatPoint) Lat() float64 { return p[1] }

// Lon returns the longitude in degrees.
func (p HeatPoint) Lon() float64 { return p[0] }
