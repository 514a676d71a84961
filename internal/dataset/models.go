package dataset

// SourceRecord is one journal row of the source list (Scopus sources).
// Identifier fields hold a space separated list or the absent marker "-".
type SourceRecord struct {
	SourceID       string
	Title          string
	Metric         float64 // NaN when the cell was blank
	PrintISSN      string
	ElectronicISSN string
}

// ReferenceRecord is one row of the indicator table (CWTS journal indicators).
// Identifiers are in hyphenated form, e.g. "1234-5678".
type ReferenceRecord struct {
	Title          string
	PrintISSN      string
	ElectronicISSN string
	Metric         float64
	LowerBound     float64
	Type           string
	Year           int
}

// Threshold holds the quartile boundaries for one year.
type Threshold struct {
	Year int
	Q1   float64 // 25th-percentile-equivalent boundary
	Q2   float64 // 50th-percentile-equivalent boundary
}

// Thresholds maps a year to its boundaries.
type Thresholds map[int]Threshold

// SourceColumns names the source table columns.
type SourceColumns struct {
	ID             string `yaml:"id" toml:"id"`
	Title          string `yaml:"title" toml:"title"`
	Metric         string `yaml:"metric" toml:"metric"`
	PrintISSN      string `yaml:"print_issn" toml:"print_issn"`
	ElectronicISSN string `yaml:"electronic_issn" toml:"electronic_issn"`
}

// ReferenceColumns names the reference table columns.
type ReferenceColumns struct {
	Title          string `yaml:"title" toml:"title"`
	PrintISSN      string `yaml:"print_issn" toml:"print_issn"`
	ElectronicISSN string `yaml:"electronic_issn" toml:"electronic_issn"`
	Metric         string `yaml:"metric" toml:"metric"`
	LowerBound     string `yaml:"lower_bound" toml:"lower_bound"`
	Type           string `yaml:"type" toml:"type"`
	Year           string `yaml:"year" toml:"year"`
}

// ThresholdColumns names the threshold table columns.
type ThresholdColumns struct {
	Year string `yaml:"year" toml:"year"`
	Q1   string `yaml:"q1" toml:"q1"`
	Q2   string `yaml:"q2" toml:"q2"`
}

// DefaultSourceColumns matches the Scopus source list export.
func DefaultSourceColumns() SourceColumns {
	return SourceColumns{
		ID:             "Scopus Source ID",
		Title:          "Title",
		Metric:         "SNIP",
		PrintISSN:      "Print ISSN",
		ElectronicISSN: "E-ISSN",
	}
}

// DefaultReferenceColumns matches the CWTS Journal Indicators export.
func DefaultReferenceColumns() ReferenceColumns {
	return ReferenceColumns{
		Title:          "Source title",
		PrintISSN:      "Print ISSN",
		ElectronicISSN: "Electronic ISSN",
		Metric:         "SNIP",
		LowerBound:     "SNIP (lower bound)",
		Type:           "Source type",
		Year:           "Year",
	}
}

// DefaultThresholdColumns matches the SNIP threshold table.
func DefaultThresholdColumns() ThresholdColumns {
	return ThresholdColumns{
		Year: "year",
		Q1:   "threshvalue25",
		Q2:   "threshvalue50",
	}
}
