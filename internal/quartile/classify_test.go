package quartile

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
)

func TestClassifyBoundaries(t *testing.T) {
	threshold := dataset.Threshold{Year: 2020, Q1: 3.0, Q2: 1.5}

	tests := []struct {
		name     string
		entry    Entry
		expected Label
	}{
		{name: "lower bound on q1 boundary", entry: Entry{Metric: 3.2, LowerBound: 3.0}, expected: Q1},
		{name: "metric on q1 boundary", entry: Entry{Metric: 3.0, LowerBound: 2.9}, expected: Q1Star},
		{name: "lower bound on q2 boundary", entry: Entry{Metric: 1.4, LowerBound: 1.5}, expected: Q2},
		{name: "metric on q2 boundary", entry: Entry{Metric: 1.5, LowerBound: 1.0}, expected: Q2Star},
		{name: "below both", entry: Entry{Metric: 0.5, LowerBound: 0.5}, expected: Other},
		{name: "unmatched zeros", entry: Entry{}, expected: Other},
		{name: "nan values", entry: Entry{Metric: math.NaN(), LowerBound: math.NaN()}, expected: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.entry, threshold))
		})
	}
}

func TestThresholdFor(t *testing.T) {
	thresholds := dataset.Thresholds{2020: {Year: 2020, Q1: 3.0, Q2: 1.5}}

	got, err := ThresholdFor(thresholds, 2020)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Q1)

	_, err = ThresholdFor(thresholds, 2021)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownYear))
	assert.Contains(t, err.Error(), "2021")
}

func TestCountLabels(t *testing.T) {
	got := CountLabels([]Label{Q2, Other, Q1, Q1Star, Other, Q1, Q2Star})

	assert.Equal(t, []LabelCount{
		{Label: Other, Count: 2},
		{Label: Q1, Count: 2},
		{Label: Q1Star, Count: 1},
		{Label: Q2, Count: 1},
		{Label: Q2Star, Count: 1},
	}, got)
}

func TestCountLabelsOmitsMissing(t *testing.T) {
	got := CountLabels([]Label{Other, Other})

	assert.Equal(t, []LabelCount{{Label: Other, Count: 2}}, got)
	assert.Empty(t, CountLabels(nil))
}
