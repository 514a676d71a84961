package quartile

import "sort"

// LabelCount is the number of records carrying a label.
type LabelCount struct {
	Label Label `json:"quartile" yaml:"quartile"`
	Count int   `json:"count" yaml:"count"`
}

// CountLabels groups labels and orders the groups by label. Labels that do
// not occur are omitted.
func CountLabels(labels []Label) []LabelCount {
	counts := make(map[Label]int)
	for _, l := range labels {
		counts[l]++
	}

	out := make([]LabelCount, 0, len(counts))
	for l, n := range counts {
		out = append(out, LabelCount{Label: l, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Summarize counts annotated records per label.
func Summarize(records []AnnotatedRecord) []LabelCount {
	labels := make([]Label, len(records))
	for i, r := range records {
		labels[i] = r.Label
	}
	return CountLabels(labels)
}
