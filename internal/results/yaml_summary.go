package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
)

// RunConfig echoes the inputs of a run
type RunConfig struct {
	Year               int    `yaml:"year"`
	RecordType         string `yaml:"recordtype"`
	StripSourceHyphens bool   `yaml:"stripsourcehyphens"`
	Sources            string `yaml:"sources"`
	References         string `yaml:"references"`
	Thresholds         string `yaml:"thresholds"`
	Output             string `yaml:"output"`
}

// RunStats are the join statistics of a run
type RunStats struct {
	SourceRows        int     `yaml:"sourcerows"`
	Records           int     `yaml:"records"`
	EligibleRefs      int     `yaml:"eligiblereferences"`
	PrintKeys         int     `yaml:"printkeys"`
	ElectronicKeys    int     `yaml:"electronickeys"`
	MatchedPrint      int     `yaml:"matchedprint"`
	MatchedElectronic int     `yaml:"matchedelectronic"`
	Unmatched         int     `yaml:"unmatched"`
	Q1Threshold       float64 `yaml:"q1threshold"`
	Q2Threshold       float64 `yaml:"q2threshold"`
}

// RunSummary is the YAML document written after a run
type RunSummary struct {
	RunID     string                `yaml:"runid"`
	Timestamp string                `yaml:"timestamp"`
	Config    RunConfig             `yaml:"config"`
	Stats     RunStats              `yaml:"stats"`
	Quartiles []quartile.LabelCount `yaml:"quartiles"`
}

// NewRunSummary builds a summary for res stamped with a fresh run id.
func NewRunSummary(cfg RunConfig, res *quartile.Result) RunSummary {
	return RunSummary{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		Config:    cfg,
		Stats: RunStats{
			SourceRows:        res.SourceRows,
			Records:           len(res.Records),
			EligibleRefs:      res.EligibleRefs,
			PrintKeys:         res.PrintKeys,
			ElectronicKeys:    res.ElectronicKeys,
			MatchedPrint:      res.MatchedPrint,
			MatchedElectronic: res.MatchedElectronic,
			Unmatched:         res.Unmatched,
			Q1Threshold:       res.Threshold.Q1,
			Q2Threshold:       res.Threshold.Q2,
		},
		Quartiles: res.Counts,
	}
}

// SaveSummaryYAML writes summary to path, creating parent directories.
func SaveSummaryYAML(path string, summary RunSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create summary directory: %w", err)
	}

	data, err := yaml.Marshal(&summary)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}
