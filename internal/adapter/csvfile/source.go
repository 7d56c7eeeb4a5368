package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SourceReader finds and parses the yearly semicolon-delimited extracts.
// It implements pipeline.SourceReader.
type SourceReader struct {
	dir     string
	pattern string
	charset string
}

// NewSourceReader creates a reader for files matching pattern in dir.
// charset is "utf-8" or "windows-1252"; a leading UTF-8 BOM is always honored.
func NewSourceReader(dir, pattern, charset string) *SourceReader {
	return &SourceReader{dir: dir, pattern: pattern, charset: charset}
}

// Discover lists the candidate source files sorted by name.
func (r *SourceReader) Discover() ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(r.dir, r.pattern))
	if err != nil {
		return nil, fmt.Errorf("glob source files: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadTable parses one source file into a header and rows.
func (r *SourceReader) ReadTable(path string) (domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, r.decoder()))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Table{}, domain.ErrEmptyInput
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("read source header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("read source rows: %w", err)
	}

	return domain.Table{Columns: trimAll(header), Rows: rows}, nil
}

func (r *SourceReader) decoder() transform.Transformer {
	if r.charset == "windows-1252" {
		return unicode.BOMOverride(charmap.Windows1252.NewDecoder())
	}
	return unicode.BOMOverride(unicode.UTF8.NewDecoder())
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
