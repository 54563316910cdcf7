// Package source abstracts the tabular inputs the parser reads: a source
// yields positional rows of cells, where an absent cell is distinguishable
// from a present-but-empty one.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Cell is one positional value of a row. Present is false for cells the
// source never produced (short rows, blank spreadsheet cells).
type Cell struct {
	Raw     string
	Present bool
}

// Row is an ordered sequence of cells addressed by 0-based position.
type Row []Cell

// Cell returns the cell at pos, or an absent cell when the row is shorter
// than the requested position.
func (r Row) Cell(pos int) Cell {
	if pos < 0 || pos >= len(r) {
		return Cell{}
	}
	return r[pos]
}

// Source materializes all data rows of one tabular input. The single leading
// physical header row of the fixed Acuity layout is consumed by the source
// and never surfaces as a data row. Any error is a file-level failure.
type Source interface {
	Rows() ([]Row, error)
}

// Open picks a source implementation by file extension.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return OpenXLSX(path), nil
	case ".html", ".htm":
		return OpenHTMLTable(path), nil
	default:
		return nil, fmt.Errorf("unsupported input file: %s", filepath.Base(path))
	}
}

// FromAttachment picks a source for an in-memory mail attachment.
func FromAttachment(filename string, content []byte) (Source, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return XLSXFromBytes(content), true
	case ".html", ".htm":
		return HTMLTableFromBytes(content), true
	default:
		return nil, false
	}
}

func cellOf(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	return Cell{Raw: raw, Present: trimmed != ""}
}
