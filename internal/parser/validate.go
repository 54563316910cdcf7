package parser

import "acuity/internal"

// Validate checks one line item against the required-field and range rules.
// It never rejects the item; each broken rule becomes one issue and an item
// may accumulate several.
func Validate(item internal.LineItem) []internal.ValidationIssue {
	var issues []internal.ValidationIssue
	add := func(kind internal.IssueKind, detail string) {
		issues = append(issues, internal.ValidationIssue{LineNumber: item.LineNumber, Kind: kind, Detail: detail})
	}

	if item.SKU == "" {
		add(internal.IssueMissingSKU, "missing SKU")
	}
	if item.HTS == "" {
		add(internal.IssueMissingHTS, "missing HTS code")
	}
	if item.CountryOfOrigin == "" {
		add(internal.IssueMissingOrigin, "missing country of origin")
	}

	switch {
	case item.Quantity == nil:
		add(internal.IssueMissingQuantity, "missing quantity")
	case *item.Quantity <= 0:
		add(internal.IssueInvalidQuantity, "quantity must be > 0")
	}

	switch {
	case item.Value == nil:
		add(internal.IssueMissingValue, "missing value")
	case *item.Value < 0:
		add(internal.IssueInvalidValue, "value must be >= 0")
	}

	return issues
}
