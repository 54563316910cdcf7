package export

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"acuity/internal"
)

// BuildWorkbook renders a parse result as a workbook with Line Items,
// Metadata and Summary sheets.
func BuildWorkbook(result internal.ParseResult) *excelize.File {
	f := excelize.NewFile()
	items := f.GetSheetName(0)
	_ = f.SetSheetName(items, "Line Items")

	for i, h := range TemplateHeaders {
		setCell(f, "Line Items", i+1, 1, h)
	}
	for r, item := range result.Items {
		writeItemRow(f, r+2, item)
	}

	if len(result.Metadata) > 0 {
		_, _ = f.NewSheet("Metadata")
		keys := make([]string, 0, len(result.Metadata))
		for k := range result.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for r, k := range keys {
			setCell(f, "Metadata", 1, r+1, k)
			setCell(f, "Metadata", 2, r+1, result.Metadata[k])
		}
	}

	_, _ = f.NewSheet("Summary")
	writeSummary(f, result.Summary)
	return f
}

// WriteXLSXFile saves the workbook, creating the output directory as needed.
func WriteXLSXFile(result internal.ParseResult, outputPath string) error {
	f := BuildWorkbook(result)
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeItemRow(f *excelize.File, row int, item internal.LineItem) {
	set := func(col int, value any) {
		setCell(f, "Line Items", col, row, value)
	}
	set(1, item.SKU)
	set(2, item.Description)
	set(3, item.HTS)
	set(4, item.CountryOfOrigin)
	set(5, "")
	set(6, numValue(item.Quantity))
	set(7, numValue(item.NetWeight))
	set(8, numValue(item.GrossWeight))
	set(9, numValue(item.UnitPrice))
	set(10, numValue(item.Value))
	set(11, item.QtyUnit)
	set(12, "")
	set(13, "")
	set(14, "")
	set(15, "")
}

func writeSummary(f *excelize.File, s internal.ParseSummary) {
	rows := []struct {
		label string
		value any
	}{
		{"total_items", s.TotalItems},
		{"total_quantity", s.TotalQuantity},
		{"total_value", s.TotalValue},
		{"total_weight_kg", s.TotalWeight},
		{"unique_skus", s.UniqueSKUs},
		{"unique_hts_codes", s.UniqueHTS},
		{"unique_origins", s.UniqueOrigins},
	}
	for r, row := range rows {
		setCell(f, "Summary", 1, r+1, row.label)
		setCell(f, "Summary", 2, r+1, row.value)
	}
}

func setCell(f *excelize.File, sheet string, col, row int, value any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, value)
}

func numValue(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
