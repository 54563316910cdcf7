package parser

// Schema maps the logical line-item fields to 0-based column positions of
// one fixed tabular layout. It is plain data so an alternate layout can be
// swapped in without touching extraction.
type Schema struct {
	SKU         int
	Quantity    int
	QtyUnit     int
	Description int
	UnitPrice   int
	Value       int
	NetWeight   int
	GrossWeight int
	Origin      int
	HTS         int
}

// HeaderSchema maps invoice-level metadata fields to column positions of the
// designated header row.
type HeaderSchema struct {
	Pedimento     int
	InvoiceNumber int
	Cove          int
	Date          int
	Vendor        int
	Incoterm      int
	Currency      int
	TotalValue    int
}

// AcuitySchema is the column layout of the Acuity pedimento export.
var AcuitySchema = Schema{
	SKU:         19, // T: Numero_de_parte
	Quantity:    20, // U: Cantidad
	QtyUnit:     21, // V: UM
	Description: 23, // X: Descripcion_Ingles
	UnitPrice:   25, // Z: Costo_unitario
	Value:       28, // AC: Valor_de_partida
	NetWeight:   33, // AH: Neto
	GrossWeight: 34, // AI: Bruto
	Origin:      38, // AM: Origen
	HTS:         42, // AQ: HTS
}

var AcuityHeaderSchema = HeaderSchema{
	Pedimento:     0,  // A: Pedimento
	InvoiceNumber: 1,  // B: Factura
	Cove:          2,  // C: COVE
	Date:          3,  // D: Fecha
	Vendor:        7,  // H: Nombre
	Incoterm:      14, // O: Incoterm
	Currency:      15, // P: Moneda
	TotalValue:    16, // Q: Dolares
}
