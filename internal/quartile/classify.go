package quartile

import (
	"errors"
	"fmt"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
)

// ErrUnknownYear is returned when the threshold table has no row for the target year.
var ErrUnknownYear = errors.New("year not found in threshold table")

// Label is a quartile classification.
type Label string

// The star suffix marks a label earned by the point estimate rather than the lower bound.
const (
	Q1     Label = "Q1"
	Q1Star Label = "Q1*"
	Q2     Label = "Q2"
	Q2Star Label = "Q2*"
	Other  Label = "Other"
)

// Classify assigns a label. Boundaries are inclusive and the first rule that
// holds wins. NaN values never satisfy a rule.
func Classify(e Entry, t dataset.Threshold) Label {
	switch {
	case e.LowerBound >= t.Q1:
		return Q1
	case e.Metric >= t.Q1:
		return Q1Star
	case e.LowerBound >= t.Q2:
		return Q2
	case e.Metric >= t.Q2:
		return Q2Star
	default:
		return Other
	}
}

// ThresholdFor returns the boundaries for year.
func ThresholdFor(thresholds dataset.Thresholds, year int) (dataset.Threshold, error) {
	t, ok := thresholds[year]
	if !ok {
		return dataset.Threshold{}, fmt.Errorf("%w: %d", ErrUnknownYear, year)
	}
	return t, nil
}
