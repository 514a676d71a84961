package results

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/quartiles/internal/dataset"
	"github.com/lehigh-university-libraries/quartiles/internal/quartile"
	"github.com/lehigh-university-libraries/quartiles/internal/table"
)

func sampleRecords() []quartile.AnnotatedRecord {
	return []quartile.AnnotatedRecord{
		{
			SourceRecord: dataset.SourceRecord{SourceID: "1", Title: "Acta Testica", Metric: 1.25, PrintISSN: "12345678", ElectronicISSN: "-"},
			Match:        quartile.Match{Via: quartile.ViaPrint, Key: "12345678", Entry: quartile.Entry{Metric: 4.0, LowerBound: 3.5}},
			Label:        quartile.Q1,
		},
		{
			SourceRecord: dataset.SourceRecord{SourceID: "2", Title: "Annals, Second Series", Metric: math.NaN(), PrintISSN: "00001234", ElectronicISSN: "87654321 11112222"},
			Match:        quartile.Match{Via: quartile.ViaNone},
			Label:        quartile.Other,
		},
		{
			SourceRecord: dataset.SourceRecord{SourceID: "3", Title: "Journal of Boundaries", Metric: 2.0, PrintISSN: "-", ElectronicISSN: "87654321"},
			Match:        quartile.Match{Via: quartile.ViaElectronic, Key: "87654321", Entry: quartile.Entry{Metric: 1.5, LowerBound: 1.2}},
			Label:        quartile.Q2Star,
		},
	}
}

func TestWriteCSVGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, dataset.DefaultSourceColumns(), sampleRecords()))

	g := goldie.New(t)
	g.Assert(t, "annotated_csv", buf.Bytes())
}

func TestSaveCSVReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.csv")

	require.NoError(t, Save(path, dataset.DefaultSourceColumns(), sampleRecords()))

	tbl, err := table.Read(path)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	col, ok := tbl.Column(ColumnQuartile)
	require.True(t, ok)
	assert.Equal(t, "Q2*", tbl.Rows[2][col])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestSaveParquetReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.parquet")

	require.NoError(t, Save(path, dataset.DefaultSourceColumns(), sampleRecords()))

	tbl, err := table.Read(path)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	idCol, ok := tbl.Column("source_id")
	require.True(t, ok)
	snipCol, ok := tbl.Column("cwts_snip")
	require.True(t, ok)
	quartileCol, ok := tbl.Column("quartile")
	require.True(t, ok)

	assert.Equal(t, "1", tbl.Rows[0][idCol])
	assert.Equal(t, "4", tbl.Rows[0][snipCol])
	assert.Equal(t, "Other", tbl.Rows[1][quartileCol])
}

func TestSaveParquetBlankMetricMatchesCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "result.csv")
	parquetPath := filepath.Join(dir, "result.parquet")

	require.NoError(t, Save(csvPath, dataset.DefaultSourceColumns(), sampleRecords()))
	require.NoError(t, Save(parquetPath, dataset.DefaultSourceColumns(), sampleRecords()))

	csvTbl, err := table.Read(csvPath)
	require.NoError(t, err)
	parquetTbl, err := table.Read(parquetPath)
	require.NoError(t, err)

	csvCol, ok := csvTbl.Column("SNIP")
	require.True(t, ok)
	parquetCol, ok := parquetTbl.Column("snip")
	require.True(t, ok)

	assert.Equal(t, "", csvTbl.Rows[1][csvCol])
	assert.Equal(t, csvTbl.Rows[1][csvCol], parquetTbl.Rows[1][parquetCol])
	assert.Equal(t, "1.25", parquetTbl.Rows[0][parquetCol])
}

func TestSaveSummaryYAML(t *testing.T) {
	res := &quartile.Result{
		Threshold:    dataset.Threshold{Year: 2020, Q1: 3.0, Q2: 1.5},
		Records:      sampleRecords(),
		Counts:       quartile.Summarize(sampleRecords()),
		SourceRows:   4,
		MatchedPrint: 1,
		Unmatched:    1,
	}
	summary := NewRunSummary(RunConfig{Year: 2020, RecordType: "Journal"}, res)
	path := filepath.Join(t.TempDir(), "summary.yaml")

	require.NoError(t, SaveSummaryYAML(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got RunSummary
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, 2020, got.Config.Year)
	assert.Equal(t, 3, got.Stats.Records)
	assert.Equal(t, 4, got.Stats.SourceRows)
	assert.Equal(t, 3.0, got.Stats.Q1Threshold)
	require.Len(t, got.Quartiles, 3)
	assert.Equal(t, quartile.Other, got.Quartiles[0].Label)
}
