package parser

import (
	"strings"

	"acuity/internal"
	"acuity/internal/source"
)

// ExtractMetadata pulls invoice-level fields from the designated header row
// (the first data row of the export, which repeats the invoice header on
// every line). Absent positions are left out of the map entirely.
func ExtractMetadata(header source.Row, schema HeaderSchema) internal.InvoiceMetadata {
	meta := internal.InvoiceMetadata{}
	put := func(key string, pos int) {
		c := header.Cell(pos)
		if c.Present {
			meta[key] = strings.TrimSpace(c.Raw)
		}
	}

	put("pedimento", schema.Pedimento)
	put("invoice_number", schema.InvoiceNumber)
	put("cove", schema.Cove)
	put("date", schema.Date)
	put("vendor", schema.Vendor)
	put("incoterm", schema.Incoterm)
	put("currency", schema.Currency)
	put("total_value", schema.TotalValue)
	return meta
}
