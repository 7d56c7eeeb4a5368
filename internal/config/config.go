package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all pipeline settings, populated from environment variables.
// Defaults reproduce the fixed data/input and data/output layout.
type Config struct {
	InputDir      string
	OutputDir     string
	SourcePattern string
	SourceCharset string
	FirstYear     int
	LastYear      int

	CombinedFile string
	MapFile      string
	HeatRadius   int
	MapZoom      int

	LogLevel        string
	LogFormat       string
	LogFile         string
	MetricsTextfile string
}

// Load reads configuration from an optional .env file and the environment,
// applying defaults where unset.
func Load() (*Config, error) {
	// A missing .env is the normal case; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	firstYear, err := parsePositiveInt("FIRST_YEAR", 2019)
	if err != nil {
		return nil, err
	}
	lastYear, err := parsePositiveInt("LAST_YEAR", 2023)
	if err != nil {
		return nil, err
	}
	heatRadius, err := parsePositiveInt("HEAT_RADIUS", 10)
	if err != nil {
		return nil, err
	}
	mapZoom, err := parsePositiveInt("MAP_ZOOM", 12)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputDir:      sharedcfg.EnvOrDefault("INPUT_DIR", "data/input"),
		OutputDir:     sharedcfg.EnvOrDefault("OUTPUT_DIR", "data/output"),
		SourcePattern: sharedcfg.EnvOrDefault("SOURCE_PATTERN", "Unfallorte*_LinRef.csv"),
		SourceCharset: strings.ToLower(sharedcfg.EnvOrDefault("SOURCE_CHARSET", "utf-8")),
		FirstYear:     firstYear,
		LastYear:      lastYear,

		CombinedFile: sharedcfg.EnvOrDefault("COMBINED_FILE", "PedestrianAccidents_2019_2023.csv"),
		MapFile:      sharedcfg.EnvOrDefault("MAP_FILE", "hotspots_map.html"),
		HeatRadius:   heatRadius,
		MapZoom:      mapZoom,

		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		LogFile:         logFile(),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	if cfg.LastYear < cfg.FirstYear {
		return nil, errors.New("LAST_YEAR must not be before FIRST_YEAR")
	}
	if cfg.MapZoom > 19 {
		return nil, errors.New("invalid MAP_ZOOM: must be between 1 and 19")
	}
	switch cfg.SourceCharset {
	case "utf-8", "windows-1252":
	default:
		return nil, fmt.Errorf("invalid SOURCE_CHARSET %q: expected utf-8 or windows-1252", cfg.SourceCharset)
	}

	return cfg, nil
}

// Years lists the target years in processing order.
func (c *Config) Years() []int {
	years := make([]int, 0, c.LastYear-c.FirstYear+1)
	for y := c.FirstYear; y <= c.LastYear; y++ {
		years = append(years, y)
	}
	return years
}

// logFile distinguishes an unset LOG_FILE (default file) from an explicitly
// empty one (file logging disabled).
func logFile() string {
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		return v
	}
	return "accident_processing.log"
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
