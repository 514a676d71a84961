package quartile

import (
	"log/slog"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
)

// AnnotatedRecord is a source record with its joined indicators and label.
type AnnotatedRecord struct {
	dataset.SourceRecord
	Match Match
	Label Label
}

// Joined returns the indicators taken from the matching index entry, or zeros.
func (r AnnotatedRecord) Joined() Entry {
	return r.Match.Entry
}

// Options selects the reference rows and identifier handling for a run.
type Options struct {
	Year       int
	RecordType string

	// StripSourceHyphens removes hyphens from source identifiers before padding.
	StripSourceHyphens bool
}

// Result is the outcome of a classification run.
type Result struct {
	Threshold dataset.Threshold
	Records   []AnnotatedRecord
	Counts    []LabelCount

	SourceRows        int
	EligibleRefs      int
	PrintKeys         int
	ElectronicKeys    int
	MatchedPrint      int
	MatchedElectronic int
	Unmatched         int
}

// Annotate joins every source against the indices and labels it.
func Annotate(sources []dataset.SourceRecord, ix Indices, t dataset.Threshold) []AnnotatedRecord {
	out := make([]AnnotatedRecord, len(sources))
	for i, src := range sources {
		m := ix.Lookup(src.PrintISSN, src.ElectronicISSN)
		out[i] = AnnotatedRecord{
			SourceRecord: src,
			Match:        m,
			Label:        Classify(m.Entry, t),
		}
	}
	return out
}

// Run executes the whole transformation in memory. It fails before doing any
// work when the target year has no thresholds.
func Run(sources []dataset.SourceRecord, refs []dataset.ReferenceRecord, thresholds dataset.Thresholds, opts Options) (*Result, error) {
	threshold, err := ThresholdFor(thresholds, opts.Year)
	if err != nil {
		return nil, err
	}

	slog.Info("Using thresholds", "year", opts.Year, "q1", threshold.Q1, "q2", threshold.Q2)

	eligible := Eligible(refs, opts.RecordType, opts.Year)
	ix := BuildIndices(eligible)

	slog.Info("Indices built",
		"reference_rows", len(refs),
		"eligible", len(eligible),
		"print_keys", len(ix.Print),
		"electronic_keys", len(ix.Electronic))

	deduped := DedupeSources(sources)
	if dropped := len(sources) - len(deduped); dropped > 0 {
		slog.Debug("Dropped duplicate sources", "count", dropped)
	}

	records := Annotate(NormalizeSources(deduped, opts.StripSourceHyphens), ix, threshold)

	res := &Result{
		Threshold:      threshold,
		Records:        records,
		Counts:         Summarize(records),
		SourceRows:     len(sources),
		EligibleRefs:   len(eligible),
		PrintKeys:      len(ix.Print),
		ElectronicKeys: len(ix.Electronic),
	}
	for _, r := range records {
		switch r.Match.Via {
		case ViaPrint:
			res.MatchedPrint++
		case ViaElectronic:
			res.MatchedElectronic++
		default:
			res.Unmatched++
		}
	}

	slog.Info("Sources classified",
		"records", len(records),
		"matched_print", res.MatchedPrint,
		"matched_electronic", res.MatchedElectronic,
		"unmatched", res.Unmatched)

	return res, nil
}

// Find returns the annotated record with the given source id.
func (r *Result) Find(sourceID string) (AnnotatedRecord, bool) {
	for _, rec := range r.Records {
		if rec.SourceID == sourceID {
			return rec, true
		}
	}
	return AnnotatedRecord{}, false
}
