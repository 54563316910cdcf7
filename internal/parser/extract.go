package parser

import (
	"strings"

	"acuity/internal"
	"acuity/internal/source"
)

// Extractor maps raw rows onto named line items using a fixed column schema.
type Extractor struct {
	schema Schema
}

func NewExtractor(schema Schema) *Extractor {
	return &Extractor{schema: schema}
}

// Extract builds a line item from one data row. Rows whose SKU cell is blank
// are not line items (separator and filler rows) and yield nil. A single
// malformed cell never discards the row; the bad field just ends up nil or
// empty.
func (e *Extractor) Extract(row source.Row, rowIndex int) *internal.LineItem {
	sku := strings.TrimSpace(row.Cell(e.schema.SKU).Raw)
	if sku == "" {
		return nil
	}

	return &internal.LineItem{
		LineNumber:      rowIndex + 1,
		SKU:             sku,
		Description:     trimmed(row.Cell(e.schema.Description)),
		HTS:             trimmed(row.Cell(e.schema.HTS)),
		CountryOfOrigin: NormalizeCountry(row.Cell(e.schema.Origin)),
		Quantity:        CleanNumeric(row.Cell(e.schema.Quantity)),
		QtyUnit:         NormalizeUnit(row.Cell(e.schema.QtyUnit)),
		NetWeight:       CleanNumeric(row.Cell(e.schema.NetWeight)),
		GrossWeight:     CleanNumeric(row.Cell(e.schema.GrossWeight)),
		UnitPrice:       CleanNumeric(row.Cell(e.schema.UnitPrice)),
		Value:           CleanNumeric(row.Cell(e.schema.Value)),
	}
}

func trimmed(c source.Cell) string {
	if !c.Present {
		return ""
	}
	return strings.TrimSpace(c.Raw)
}
