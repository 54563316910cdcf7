package parser

import (
	"testing"

	"acuity/internal"
	"acuity/internal/util"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalItems != 0 || s.TotalQuantity != 0 || s.TotalValue != 0 || s.TotalWeight != 0 {
		t.Fatalf("totals: %+v", s)
	}
	if s.UniqueSKUs != 0 || s.UniqueHTS != 0 || s.UniqueOrigins != 0 {
		t.Fatalf("counts: %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	items := []internal.LineItem{
		{SKU: "A", HTS: "1111", CountryOfOrigin: "MX", Quantity: util.FloatPtr(10), Value: util.FloatPtr(100.104), NetWeight: util.FloatPtr(1.5)},
		{SKU: "B", HTS: "1111", CountryOfOrigin: "US", Quantity: util.FloatPtr(2.333), Value: util.FloatPtr(20), NetWeight: nil},
		{SKU: "A", HTS: "", CountryOfOrigin: "MX", Quantity: nil, Value: util.FloatPtr(5)},
	}

	s := Summarize(items)
	if s.TotalItems != 3 {
		t.Fatalf("items=%d", s.TotalItems)
	}
	if s.TotalQuantity != 12.33 {
		t.Fatalf("qty=%v", s.TotalQuantity)
	}
	if s.TotalValue != 125.1 {
		t.Fatalf("value=%v", s.TotalValue)
	}
	if s.TotalWeight != 1.5 {
		t.Fatalf("weight=%v", s.TotalWeight)
	}
	if s.UniqueSKUs != 2 {
		t.Fatalf("skus=%d", s.UniqueSKUs)
	}
	if s.UniqueHTS != 1 {
		t.Fatalf("hts=%d", s.UniqueHTS)
	}
	if s.UniqueOrigins != 2 {
		t.Fatalf("origins=%d", s.UniqueOrigins)
	}
}
