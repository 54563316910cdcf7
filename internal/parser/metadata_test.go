package parser

import (
	"testing"
)

func TestExtractMetadata(t *testing.T) {
	header := rowAt(map[int]string{
		AcuityHeaderSchema.Pedimento:     "21 47 3901 1234567",
		AcuityHeaderSchema.InvoiceNumber: "INV-001",
		AcuityHeaderSchema.Cove:          "COVE123",
		AcuityHeaderSchema.Date:          "2024-01-15",
		AcuityHeaderSchema.Vendor:        "ACME Corp",
		AcuityHeaderSchema.Incoterm:      "DAP",
		AcuityHeaderSchema.Currency:      "USD",
		AcuityHeaderSchema.TotalValue:    "15000.00",
	})

	meta := ExtractMetadata(header, AcuityHeaderSchema)
	want := map[string]string{
		"pedimento":      "21 47 3901 1234567",
		"invoice_number": "INV-001",
		"cove":           "COVE123",
		"date":           "2024-01-15",
		"vendor":         "ACME Corp",
		"incoterm":       "DAP",
		"currency":       "USD",
		"total_value":    "15000.00",
	}
	for k, v := range want {
		if meta[k] != v {
			t.Fatalf("%s: got %q want %q", k, meta[k], v)
		}
	}
}

func TestExtractMetadataSkipsAbsent(t *testing.T) {
	header := rowAt(map[int]string{
		AcuityHeaderSchema.InvoiceNumber: "INV-002",
	})

	meta := ExtractMetadata(header, AcuityHeaderSchema)
	if len(meta) != 1 {
		t.Fatalf("meta=%v", meta)
	}
	if _, ok := meta["pedimento"]; ok {
		t.Fatal("absent pedimento should not appear")
	}
}
