package quartile

import (
	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
	"github.com/lehigh-university-libraries/quartiles/internal/issn"
)

// Via names the index that produced a match.
type Via string

const (
	ViaNone       Via = "none"
	ViaPrint      Via = "print"
	ViaElectronic Via = "electronic"
)

// Match is the outcome of looking a source record up in the indices.
// Unmatched records carry the zero Entry.
type Match struct {
	Via   Via
	Key   string
	Entry Entry
}

// Lookup checks the print identifiers in order, then the electronic ones.
// The first hit wins.
func (ix Indices) Lookup(printField, electronicField string) Match {
	if m, ok := lookupList(ix.Print, issn.Split(printField)); ok {
		m.Via = ViaPrint
		return m
	}
	if m, ok := lookupList(ix.Electronic, issn.Split(electronicField)); ok {
		m.Via = ViaElectronic
		return m
	}
	return Match{Via: ViaNone}
}

func lookupList(index Index, keys []string) (Match, bool) {
	for _, key := range keys {
		if e, ok := index[key]; ok {
			return Match{Key: key, Entry: e}, true
		}
	}
	return Match{}, false
}

// DedupeSources keeps the first record for each source id, preserving order.
func DedupeSources(sources []dataset.SourceRecord) []dataset.SourceRecord {
	seen := make(map[string]struct{}, len(sources))
	out := make([]dataset.SourceRecord, 0, len(sources))
	for _, src := range sources {
		if _, dup := seen[src.SourceID]; dup {
			continue
		}
		seen[src.SourceID] = struct{}{}
		out = append(out, src)
	}
	return out
}

// NormalizeSources returns a copy of sources with canonical identifier fields.
func NormalizeSources(sources []dataset.SourceRecord, stripHyphens bool) []dataset.SourceRecord {
	out := make([]dataset.SourceRecord, len(sources))
	for i, src := range sources {
		src.PrintISSN = issn.NormalizeField(src.PrintISSN, stripHyphens)
		src.ElectronicISSN = issn.NormalizeField(src.ElectronicISSN, stripHyphens)
		out[i] = src
	}
	return out
}
