package source

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func mkXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	if _, err := f.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestXLSXRows(t *testing.T) {
	blob := mkXLSX(t, [][]any{
		{"SKU", "Qty", "Unit"},
		{"ABC", 10, "PZS"},
		{"DEF", 5, "KGS"},
	})

	rows, err := XLSXFromBytes(blob).Rows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d", len(rows))
	}
	if rows[0].Cell(0).Raw != "ABC" || rows[1].Cell(0).Raw != "DEF" {
		t.Fatalf("rows: %v", rows)
	}
	if rows[0].Cell(1).Raw != "10" {
		t.Fatalf("qty=%q", rows[0].Cell(1).Raw)
	}
}

func TestXLSXBlankCellIsAbsent(t *testing.T) {
	blob := mkXLSX(t, [][]any{
		{"SKU", "Qty", "Unit"},
		{"ABC", nil, "PZS"},
	})

	rows, err := XLSXFromBytes(blob).Rows()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].Cell(1).Present {
		t.Fatalf("blank cell flagged present: %+v", rows[0].Cell(1))
	}
	if !rows[0].Cell(2).Present {
		t.Fatal("unit cell should be present")
	}
	// Past the row width is absent too.
	if rows[0].Cell(99).Present {
		t.Fatal("out-of-range cell flagged present")
	}
}

func TestXLSXHeaderOnly(t *testing.T) {
	blob := mkXLSX(t, [][]any{{"SKU", "Qty"}})

	rows, err := XLSXFromBytes(blob).Rows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("len=%d", len(rows))
	}
}

func TestXLSXBadBlob(t *testing.T) {
	if _, err := XLSXFromBytes([]byte("not a workbook")).Rows(); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenDispatch(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "a.xlsx")); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(filepath.Join(dir, "a.html")); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(filepath.Join(dir, "a.pdf")); err == nil {
		t.Fatal("pdf should be rejected")
	}
}

func TestFromAttachment(t *testing.T) {
	if _, ok := FromAttachment("invoice.XLSX", nil); !ok {
		t.Fatal("xlsx attachment rejected")
	}
	if _, ok := FromAttachment("invoice.htm", nil); !ok {
		t.Fatal("htm attachment rejected")
	}
	if _, ok := FromAttachment("notes.txt", nil); ok {
		t.Fatal("txt attachment accepted")
	}
}
