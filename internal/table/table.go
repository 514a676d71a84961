// Package table reads delimited and columnar files into an in-memory grid of
// string cells addressed by header name.
package table

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is a header row plus data rows. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// New builds a table from a header and rows, indexing the header names.
// When a header name repeats, the first column wins.
func New(header []string, rows [][]string) *Table {
	t := &Table{
		Header: header,
		Rows:   rows,
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, exists := t.index[name]; !exists {
			t.index[name] = i
		}
	}
	return t
}

// Column returns the position of the named column.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[strings.TrimSpace(name)]
	return i, ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Read loads a table from path, choosing the reader by file extension.
func Read(path string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv", ".tab":
		return readDelimited(path, '\t')
	case ".parquet":
		return readParquet(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .tsv, .parquet)", ext)
	}
}
