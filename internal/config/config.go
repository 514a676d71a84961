// Package config holds the settings of a classification run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
)

// EnvConfigPath names a config file when no --config flag is given.
const EnvConfigPath = "QUARTILES_CONFIG"

// Paths locates the input tables and the outputs.
type Paths struct {
	Sources    string `yaml:"sources" toml:"sources"`
	References string `yaml:"references" toml:"references"`
	Thresholds string `yaml:"thresholds" toml:"thresholds"`
	Output     string `yaml:"output" toml:"output"`
	Summary    string `yaml:"summary" toml:"summary"` // optional
}

// Config describes one run.
type Config struct {
	Year       int    `yaml:"year" toml:"year"`
	RecordType string `yaml:"record_type" toml:"record_type"`

	// StripSourceHyphens removes hyphens from source identifiers before the
	// join. Off by default: source lists are expected to carry bare digits.
	StripSourceHyphens bool `yaml:"strip_source_hyphens" toml:"strip_source_hyphens"`

	Paths            Paths                    `yaml:"paths" toml:"paths"`
	SourceColumns    dataset.SourceColumns    `yaml:"source_columns" toml:"source_columns"`
	ReferenceColumns dataset.ReferenceColumns `yaml:"reference_columns" toml:"reference_columns"`
	ThresholdColumns dataset.ThresholdColumns `yaml:"threshold_columns" toml:"threshold_columns"`
}

// Default returns the settings of the 2020 Scopus / CWTS run.
func Default() Config {
	return Config{
		Year:       2020,
		RecordType: "Journal",
		Paths: Paths{
			Sources:    "data/scopus-sources-2020.csv",
			References: "data/cwts-journal-indicators.csv",
			Thresholds: "data/snip-thresholds.csv",
			Output:     "data/result_scopus_sources_with_quartiles.csv",
		},
		SourceColumns:    dataset.DefaultSourceColumns(),
		ReferenceColumns: dataset.DefaultReferenceColumns(),
		ThresholdColumns: dataset.DefaultThresholdColumns(),
	}
}

// Load reads path over the defaults. An empty path falls back to the
// QUARTILES_CONFIG environment variable, then to the defaults alone.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (supported: .yaml, .yml, .toml)", ext)
	}

	return &cfg, nil
}

// Validate reports every missing setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Year <= 0 {
		errs = append(errs, fmt.Errorf("year must be positive, got %d", c.Year))
	}
	if strings.TrimSpace(c.RecordType) == "" {
		errs = append(errs, errors.New("record_type is required"))
	}

	required := []struct{ name, value string }{
		{"paths.sources", c.Paths.Sources},
		{"paths.references", c.Paths.References},
		{"paths.thresholds", c.Paths.Thresholds},
		{"paths.output", c.Paths.Output},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	return errors.Join(errs...)
}
