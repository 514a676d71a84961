// Package quartile joins journal sources against indicator data by ISSN and
// assigns SNIP quartile labels.
package quartile

import (
	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
	"github.com/lehigh-university-libraries/quartiles/internal/issn"
)

// Entry is the indicator pair carried by an index key.
type Entry struct {
	Metric     float64 `json:"snip" yaml:"snip"`
	LowerBound float64 `json:"lower_bound" yaml:"lower_bound"`
}

// Index maps a hyphen-free identifier to its indicators.
type Index map[string]Entry

// Add stores e under key unless key is empty or already present.
// It reports whether the entry was stored.
func (ix Index) Add(key string, e Entry) bool {
	if key == "" {
		return false
	}
	if _, exists := ix[key]; exists {
		return false
	}
	ix[key] = e
	return true
}

// Indices keeps print and electronic identifiers in separate namespaces.
type Indices struct {
	Print      Index
	Electronic Index
}

// Eligible returns the reference records of the given type and year, in order.
func Eligible(refs []dataset.ReferenceRecord, recordType string, year int) []dataset.ReferenceRecord {
	out := make([]dataset.ReferenceRecord, 0, len(refs))
	for _, ref := range refs {
		if ref.Type == recordType && ref.Year == year {
			out = append(out, ref)
		}
	}
	return out
}

// BuildIndices indexes refs by print and electronic identifier. The first
// record seen for a key wins; later duplicates are dropped.
func BuildIndices(refs []dataset.ReferenceRecord) Indices {
	ix := Indices{
		Print:      make(Index, len(refs)),
		Electronic: make(Index, len(refs)),
	}
	for _, ref := range refs {
		e := Entry{Metric: ref.Metric, LowerBound: ref.LowerBound}
		ix.Print.Add(issn.Key(ref.PrintISSN), e)
		ix.Electronic.Add(issn.Key(ref.ElectronicISSN), e)
	}
	return ix
}
