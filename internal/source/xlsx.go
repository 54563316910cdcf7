package source

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSX reads the first worksheet of an Excel workbook. Blank spreadsheet
// cells surface as absent, matching the missing-value semantics of the
// upstream Acuity export.
type XLSX struct {
	path string
	blob []byte
}

func OpenXLSX(path string) *XLSX { return &XLSX{path: path} }

func XLSXFromBytes(blob []byte) *XLSX { return &XLSX{blob: blob} }

func (s *XLSX) Rows() ([]Row, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(raw) <= 1 {
		return nil, nil
	}

	// raw[0] is the column-header row of the fixed layout.
	out := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(Row, len(cells))
		for i, c := range cells {
			row[i] = cellOf(c)
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *XLSX) open() (*excelize.File, error) {
	if s.blob != nil {
		return excelize.OpenReader(bytes.NewReader(s.blob))
	}
	return excelize.OpenFile(s.path)
}
