package parser

import (
	"testing"

	"acuity/internal/source"
)

// rowAt builds a row with values at the given 0-based positions; every other
// position is an absent cell.
func rowAt(values map[int]string) source.Row {
	width := 0
	for pos := range values {
		if pos >= width {
			width = pos + 1
		}
	}
	row := make(source.Row, width)
	for pos, v := range values {
		row[pos] = source.Cell{Raw: v, Present: true}
	}
	return row
}

func itemRow(sku, qty, unit, desc, unitPrice, value, net, gross, origin, hts string) source.Row {
	return rowAt(map[int]string{
		AcuitySchema.SKU:         sku,
		AcuitySchema.Quantity:    qty,
		AcuitySchema.QtyUnit:     unit,
		AcuitySchema.Description: desc,
		AcuitySchema.UnitPrice:   unitPrice,
		AcuitySchema.Value:       value,
		AcuitySchema.NetWeight:   net,
		AcuitySchema.GrossWeight: gross,
		AcuitySchema.Origin:      origin,
		AcuitySchema.HTS:         hts,
	})
}

func TestExtract(t *testing.T) {
	ext := NewExtractor(AcuitySchema)
	row := itemRow("ABC123", "10", "PZS", "Steel widget", "10.00", "100.00", "5.5", "6.0", "MEX", "8481.80.90")

	item := ext.Extract(row, 1)
	if item == nil {
		t.Fatal("item is nil")
	}
	if item.LineNumber != 2 {
		t.Fatalf("line=%d", item.LineNumber)
	}
	if item.SKU != "ABC123" || item.Description != "Steel widget" || item.HTS != "8481.80.90" {
		t.Fatalf("strings: %+v", item)
	}
	if item.CountryOfOrigin != "MX" || item.QtyUnit != "PCS" {
		t.Fatalf("normalized: origin=%q unit=%q", item.CountryOfOrigin, item.QtyUnit)
	}
	if item.Quantity == nil || *item.Quantity != 10 {
		t.Fatalf("qty=%v", item.Quantity)
	}
	if item.Value == nil || *item.Value != 100 {
		t.Fatalf("value=%v", item.Value)
	}
	if item.NetWeight == nil || *item.NetWeight != 5.5 {
		t.Fatalf("net=%v", item.NetWeight)
	}
}

func TestExtractSkipsBlankSKU(t *testing.T) {
	ext := NewExtractor(AcuitySchema)
	if item := ext.Extract(rowAt(map[int]string{AcuitySchema.Quantity: "5"}), 0); item != nil {
		t.Fatalf("absent SKU: got %+v", item)
	}
	if item := ext.Extract(rowAt(map[int]string{AcuitySchema.SKU: "   "}), 0); item != nil {
		t.Fatalf("whitespace SKU: got %+v", item)
	}
}

func TestExtractShortRow(t *testing.T) {
	ext := NewExtractor(AcuitySchema)
	// SKU present but the row ends before every numeric column.
	row := rowAt(map[int]string{AcuitySchema.SKU: "SHORT-1"})

	item := ext.Extract(row, 0)
	if item == nil {
		t.Fatal("item is nil")
	}
	if item.Quantity != nil || item.Value != nil || item.UnitPrice != nil {
		t.Fatalf("short row should leave numerics nil: %+v", item)
	}
	if item.CountryOfOrigin != "" || item.HTS != "" {
		t.Fatalf("short row should leave strings empty: %+v", item)
	}
}

func TestExtractTrimsFields(t *testing.T) {
	ext := NewExtractor(AcuitySchema)
	row := itemRow("  ABC  ", "1", "PZS", "  desc  ", "1", "1", "", "", "MEX", "  99  ")

	item := ext.Extract(row, 0)
	if item == nil {
		t.Fatal("item is nil")
	}
	if item.SKU != "ABC" || item.Description != "desc" || item.HTS != "99" {
		t.Fatalf("trimming: %+v", item)
	}
}

func TestExtractKeepsBadNumericAsNil(t *testing.T) {
	ext := NewExtractor(AcuitySchema)
	row := itemRow("ABC", "N/A", "PZS", "d", "1", "abc", "", "", "MEX", "99")

	item := ext.Extract(row, 0)
	if item == nil {
		t.Fatal("item dropped over a bad cell")
	}
	if item.Quantity != nil {
		t.Fatalf("qty=%v", *item.Quantity)
	}
	if item.Value != nil {
		t.Fatalf("value=%v", *item.Value)
	}
}
