// Command genmock writes synthetic yearly Unfallatlas extracts for local
// runs of the aggregate and heatmap jobs. Output is deterministic for a given
// seed, uses semicolon delimiters and comma decimal marks like the published
// files, and scatters accidents around a handful of German cities.
//
// Usage:
//
//	go run ./cmd/genmock -out data/input -rows 2000 -first 2019 -last 2023
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/pedestrian-accident-heatmap/internal/domain"
)

type city struct {
	name   string
	lat    float64
	lon    float64
	weight int
}

var cities = []city{
	{name: "Berlin", lat: 52.5200, lon: 13.4050, weight: 5},
	{name: "Hamburg", lat: 53.5511, lon: 9.9937, weight: 3},
	{name: "München", lat: 48.1374, lon: 11.5755, weight: 3},
	{name: "Köln", lat: 50.9375, lon: 6.9603, weight: 2},
	{name: "Frankfurt am Main", lat: 50.1109, lon: 8.6821, weight: 2},
	{name: "Leipzig", lat: 51.3397, lon: 12.3731, weight: 1},
}

var header = []string{
	"OBJECTID", "UJAHR", "UMONAT", "USTUNDE", "UKATEGORIE",
	"IstRad", "IstPKW", domain.ColumnPedestrian, "IstKrad",
	domain.ColumnLongitude, domain.ColumnLatitude,
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "data/input", "directory for the generated extracts")
	rows := flag.Int("rows", 2000, "rows per year")
	first := flag.Int("first", 2019, "first year")
	last := flag.Int("last", 2023, "last year")
	share := flag.Float64("pedestrian-share", 0.12, "fraction of rows with IstFuss=1")
	seed := flag.Uint64("seed", 42, "random seed")
	flag.Parse()

	if *rows <= 0 || *last < *first || *share < 0 || *share > 1 {
		flag.Usage()
		return fmt.Errorf("invalid flags")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(*seed, uint64(*first)))
	total := 0
	for year := *first; year <= *last; year++ {
		path := filepath.Join(*outDir, fmt.Sprintf("Unfallorte%d_LinRef.csv", year))
		n, err := writeYear(path, year, *rows, *share, rng)
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		total += n
		log.Printf("%d: %d rows, %d pedestrian", year, *rows, n)
	}

	log.Printf("total pedestrian rows: %d", total)
	return nil
}

func writeYear(path string, year, rows int, share float64, rng *rand.Rand) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return 0, err
	}

	pedestrians := 0
	for i := range rows {
		c := pickCity(rng)
		pedestrian := rng.Float64() < share
		if pedestrian {
			pedestrians++
		}
		record := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(year),
			strconv.Itoa(rng.IntN(12) + 1),
			strconv.Itoa(rng.IntN(24)),
			strconv.Itoa(rng.IntN(3) + 1),
			flag01(!pedestrian && rng.Float64() < 0.3),
			flag01(rng.Float64() < 0.7),
			flag01(pedestrian),
			flag01(!pedestrian && rng.Float64() < 0.1),
			commaDecimal(c.lon + rng.NormFloat64()*0.05),
			commaDecimal(c.lat + rng.NormFloat64()*0.03),
		}
		if err := w.Write(record); err != nil {
			return 0, err
		}
	}

	w.Flush()
	return pedestrians, w.Error()
}

func pickCity(rng *rand.Rand) city {
	sum := 0
	for _, c := range cities {
		sum += c.weight
	}
	n := rng.IntN(sum)
	for _, c := range cities {
		if n < c.weight {
			return c
		}
		n -= c.weight
	}
	return cities[0]
}

func flag01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func commaDecimal(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 8, 64), ".", ",", 1)
}
