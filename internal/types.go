package internal

// LineItem is one customs-invoice line in the Invoice Tab shape. Numeric
// fields are pointers so an unparseable or absent cell stays distinguishable
// from a legitimate zero.
type LineItem struct {
	LineNumber      int      `json:"line_number"`
	SKU             string   `json:"sku"`
	Description     string   `json:"description"`
	HTS             string   `json:"hts"`
	CountryOfOrigin string   `json:"country_of_origin"`
	Quantity        *float64 `json:"quantity"`
	QtyUnit         string   `json:"qty_unit"`
	NetWeight       *float64 `json:"net_weight"`
	GrossWeight     *float64 `json:"gross_weight"`
	UnitPrice       *float64 `json:"unit_price"`
	Value           *float64 `json:"value"`
}

type IssueKind string

const (
	IssueMissingSKU      IssueKind = "missing_sku"
	IssueMissingHTS      IssueKind = "missing_hts"
	IssueMissingOrigin   IssueKind = "missing_origin"
	IssueMissingQuantity IssueKind = "missing_quantity"
	IssueInvalidQuantity IssueKind = "invalid_quantity"
	IssueMissingValue    IssueKind = "missing_value"
	IssueInvalidValue    IssueKind = "invalid_value"
	IssueRowError        IssueKind = "row_error"
)

// ValidationIssue is advisory: the offending line item stays in the output.
type ValidationIssue struct {
	LineNumber int       `json:"line_number"`
	Kind       IssueKind `json:"kind"`
	Detail     string    `json:"detail"`
}

// InvoiceMetadata holds header-row fields keyed by name. Positions that are
// absent in the source are simply not present in the map.
type InvoiceMetadata map[string]string

type ParseSummary struct {
	TotalItems    int     `json:"total_items"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
	TotalWeight   float64 `json:"total_weight_kg"`
	UniqueSKUs    int     `json:"unique_skus"`
	UniqueHTS     int     `json:"unique_hts_codes"`
	UniqueOrigins int     `json:"unique_origins"`
}

// ParseResult is the whole-parse envelope. On a source-level failure only
// Success, Error and Timestamp carry meaning.
type ParseResult struct {
	Success    bool              `json:"success"`
	Items      []LineItem        `json:"items"`
	Metadata   InvoiceMetadata   `json:"metadata,omitempty"`
	Summary    ParseSummary      `json:"summary"`
	Errors     []ValidationIssue `json:"errors"`
	Aggregated bool              `json:"aggregated"`
	Timestamp  string            `json:"timestamp"`
	Error      string            `json:"error,omitempty"`
}

type EmailRow struct {
	ID         int
	Provider   string
	MessageID  string
	Subject    string
	Sender     string
	ReceivedAt string
	Hash       string
	Status     string
	RawRef     string
}

type FetchedMailMessage struct {
	Provider   string
	MessageID  string
	Subject    string
	From       string
	ReceivedAt string
	Raw        []byte
}

// AttachmentRow records one parsed spreadsheet attachment of an ingested email.
type AttachmentRow struct {
	ID         int
	EmailID    int
	Filename   string
	Status     string
	ItemCount  int
	IssueCount int
	ExportRef  string
}
