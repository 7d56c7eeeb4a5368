package csvfile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
)

// WriteCombined writes the combined dataset as comma-delimited CSV with the
// UJAHR,XGCSWGS84,YGCSWGS84 header. An empty slice yields a header-only file.
func WriteCombined(path string, records []domain.AccidentRecord) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create combined csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close combined csv: %w", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(domain.CombinedColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write([]string{strconv.Itoa(rec.Year), rec.Longitude, rec.Latitude}); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush combined csv: %w", err)
	}
	return nil
}

// ReadCombined parses a combined dataset. The first line is read on its own:
// surrounding quotes are stripped and it is split on commas to get the column
// names. The remaining lines are parsed as quoted CSV; a stray quote inside an
// unquoted field is kept as a literal character. Rows that fail to parse or
// whose field count differs from the header are counted in malformed and left
// out; a field count mismatch is the mark of a decimal comma that was not
// quoted.
func ReadCombined(path string) (table domain.Table, malformed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, 0, fmt.Errorf("open combined csv: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return domain.Table{}, 0, fmt.Errorf("read header line: %w", err)
	}
	columns := ParseHeaderLine(line)
	if len(columns) == 0 {
		return domain.Table{}, 0, domain.ErrEmptyInput
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			malformed++
			continue
		}
		if err != nil {
			return domain.Table{}, 0, fmt.Errorf("read combined rows: %w", err)
		}
		if len(row) != len(columns) {
			malformed++
			continue
		}
		rows = append(rows, row)
	}

	return domain.Table{Columns: columns, Rows: rows}, malformed, nil
}

// ParseHeaderLine splits a header line that may be wrapped in a pair of
// single or double quotes. It returns nil for a blank line.
func ParseHeaderLine(line string) []string {
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if len(line) >= 2 {
		first, last := line[0], line[len(line)-1]
		if (first == '\'' || first == '"') && first == last {
			line = line[1 : len(line)-1]
		}
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	parts := strings.Split(line, ",")
	columns := make([]string, len(parts))
	for i, p := range parts {
		columns[i] = strings.Trim(strings.TrimSpace(p), `"'`)
	}
	return columns
}

// CombinedFile exposes WriteCombined and ReadCombined as a
// pipeline.CombinedStore.
type CombinedFile struct{}

func (CombinedFile) Save(path string, records []domain.AccidentRecord) error {
	return WriteCombined(path, records)
}

func (CombinedFile) Load(path string) (domain.Table, int, error) {
	return ReadCombined(path)
}
