package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ParseDecimal converts a coordinate string to a float, accepting a comma
// decimal mark ("52,52" -> 52.52). It returns false for empty, malformed or
// non-finite values.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// ExtractHeatPoints converts the longitude and latitude columns of a combined
// table to points, dropping rows where either coordinate is missing.
// It returns the points and the number of dropped rows.
func ExtractHeatPoints(t Table) ([]HeatPoint, int, error) {
	idx := t.Index()
	lonIdx, ok := idx[ColumnLongitude]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnLongitude)
	}
	latIdx, ok := idx[ColumnLatitude]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnLatitude)
	}

	points := make([]HeatPoint, 0, len(t.Rows))
	dropped := 0
	for _, row := range t.Rows {
		lon, okLon := ParseDecimal(field(row, lonIdx))
		lat, okLat := ParseDecimal(field(row, latIdx))
		if !okLon || !okLat {
			dropped++
			continue
		}
		points = append(points, NewHeatPoint(lat, lon))
	}
	return points, dropped, nil
}

// Centroid returns the arithmetic mean of the points' latitudes and
// longitudes. An empty set yields ErrNoValidRows and a NaN or infinite mean
// yields ErrUndefinedCenter.
func Centroid(points []HeatPoint) (HeatPoint, error) {
	if len(points) == 0 {
		return HeatPoint{}, ErrNoValidRows
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat()
		sumLon += p.Lon()
	}
	n := float64(len(points))
	center := NewHeatPoint(sumLat/n, sumLon/n)

	if !isFinite(center.Lat()) || !isFinite(center.Lon()) {
		return HeatPoint{}, ErrUndefinedCenter
	}
	return center, nil
}

// Bounds returns the bounding box of the points.
func Bounds(points []HeatPoint) orb.Bound {
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = orb.Point(p)
	}
	return mp.Bound()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
