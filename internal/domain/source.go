package domain

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// SelectYearFiles picks, for each year in order, the first path whose base
// name contains the 4-digit year. Years without a match are returned in
// missing. Paths are expected in a stable (sorted) order.
func SelectYearFiles(paths []string, years []int) (selected []YearFile, missing []int) {
	for _, year := range years {
		path, ok := firstContainingYear(paths, year)
		if !ok {
			missing = append(missing, year)
			continue
		}
		selected = append(selected, YearFile{Year: year, Path: path})
	}
	return selected, missing
}

func firstContainingYear(paths []string, year int) (string, bool) {
	y := strconv.Itoa(year)
	for _, p := range paths {
		if strings.Contains(filepath.Base(p), y) {
			return p, true
		}
	}
	return "", false
}

// ExtractPedestrianRecords keeps the rows of a yearly source table whose
// pedestrian flag is set and projects them to year and raw coordinates.
// A year column that does not parse falls back to fallbackYear.
func ExtractPedestrianRecords(t Table, fallbackYear int) ([]AccidentRecord, error) {
	idx := t.Index()
	cols := make(map[string]int, 4)
	for _, name := range []string{ColumnPedestrian, ColumnYear, ColumnLongitude, ColumnLatitude} {
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		cols[name] = i
	}

	var records []AccidentRecord
	for _, row := range t.Rows {
		if !IsPedestrian(field(row, cols[ColumnPedestrian])) {
			continue
		}
		records = append(records, AccidentRecord{
			Year:      parseYear(field(row, cols[ColumnYear]), fallbackYear),
			Longitude: field(row, cols[ColumnLongitude]),
			Latitude:  field(row, cols[ColumnLatitude]),
		})
	}
	return records, nil
}

// IsPedestrian reports whether an IstFuss value marks pedestrian involvement.
// The extracts use 1; some re-exports write 1.0 or true.
func IsPedestrian(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "1.0", "true":
		return true
	default:
		return false
	}
}

func parseYear(s string, fallback int) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return y
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
