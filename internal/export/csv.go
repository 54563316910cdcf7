// Package export writes parsed line items in the Invoice Tab template shape.
// The template carries packaging and PO columns the Acuity export does not
// populate; those are emitted as empty placeholders.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"acuity/internal"
)

// TemplateHeaders is the Invoice Tab column order, display names included.
var TemplateHeaders = []string{
	"SKU", "DESCRIPTION", "HTS", "COUNTRY OF ORIGIN", "NO. OF PACKAGE",
	"QUANTITY", "NET WEIGHT", "GROSS WEIGHT", "UNIT PRICE", "VALUE",
	"QTY UNIT", "PACKAGE TYPE", "CONTAINER NUMBER", "PO NUMBER", "PO REFERENCE",
}

// WriteCSV streams items as Invoice Tab CSV. Nil numerics become empty
// fields, never zeros.
func WriteCSV(w io.Writer, items []internal.LineItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TemplateHeaders); err != nil {
		return err
	}
	for _, item := range items {
		if err := cw.Write(record(item)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(item internal.LineItem) []string {
	return []string{
		item.SKU,
		item.Description,
		item.HTS,
		item.CountryOfOrigin,
		"", // no_of_package
		numField(item.Quantity),
		numField(item.NetWeight),
		numField(item.GrossWeight),
		numField(item.UnitPrice),
		numField(item.Value),
		item.QtyUnit,
		"", // package_type
		"", // container_number
		"", // po_number
		"", // po_reference
	}
}

func numField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
