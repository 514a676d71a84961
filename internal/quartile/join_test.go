package quartile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
)

func TestLookupFallback(t *testing.T) {
	ix := BuildIndices([]dataset.ReferenceRecord{
		ref("1111-1111", "2222-2222", 4.0, 3.5),
		ref("3333-3333", "4444-4444", 2.0, 1.0),
	})

	tests := []struct {
		name       string
		print      string
		electronic string
		via        Via
		key        string
		entry      Entry
	}{
		{name: "print match", print: "11111111", electronic: "-", via: ViaPrint, key: "11111111", entry: Entry{4.0, 3.5}},
		{name: "electronic fallback", print: "99999999", electronic: "44444444", via: ViaElectronic, key: "44444444", entry: Entry{2.0, 1.0}},
		{name: "print takes priority", print: "33333333", electronic: "22222222", via: ViaPrint, key: "33333333", entry: Entry{2.0, 1.0}},
		{name: "second print token", print: "99999999 11111111", electronic: "-", via: ViaPrint, key: "11111111", entry: Entry{4.0, 3.5}},
		{name: "first print token wins", print: "33333333 11111111", electronic: "-", via: ViaPrint, key: "33333333", entry: Entry{2.0, 1.0}},
		{name: "absent print skipped", print: "-", electronic: "22222222", via: ViaElectronic, key: "22222222", entry: Entry{4.0, 3.5}},
		{name: "no match", print: "-", electronic: "-", via: ViaNone},
		{name: "electronic key not in print index", print: "22222222", electronic: "-", via: ViaNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ix.Lookup(tt.print, tt.electronic)
			assert.Equal(t, tt.via, m.Via)
			assert.Equal(t, tt.key, m.Key)
			assert.Equal(t, tt.entry, m.Entry)
		})
	}
}

func TestDedupeSources(t *testing.T) {
	sources := []dataset.SourceRecord{
		{SourceID: "3", Title: "C"},
		{SourceID: "1", Title: "A"},
		{SourceID: "3", Title: "C duplicate"},
		{SourceID: "2", Title: "B"},
		{SourceID: "1", Title: "A duplicate"},
	}

	got := DedupeSources(sources)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{got[0].Title, got[1].Title, got[2].Title})
	assert.Len(t, sources, 5, "input must not be modified")
}

func TestNormalizeSources(t *testing.T) {
	sources := []dataset.SourceRecord{
		{SourceID: "1", PrintISSN: "1234567", ElectronicISSN: "-"},
		{SourceID: "2", PrintISSN: "1234-5678", ElectronicISSN: "123 87654321"},
	}

	got := NormalizeSources(sources, false)
	assert.Equal(t, "01234567", got[0].PrintISSN)
	assert.Equal(t, "-", got[0].ElectronicISSN)
	assert.Equal(t, "1234-5678", got[1].PrintISSN)
	assert.Equal(t, "00000123 87654321", got[1].ElectronicISSN)
	assert.Equal(t, "1234567", sources[0].PrintISSN, "input must not be modified")

	stripped := NormalizeSources(sources, true)
	assert.Equal(t, "12345678", stripped[1].PrintISSN)
}
