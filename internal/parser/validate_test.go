package parser

import (
	"testing"

	"acuity/internal"
	"acuity/internal/util"
)

func validItem() internal.LineItem {
	return internal.LineItem{
		LineNumber:      1,
		SKU:             "ABC",
		HTS:             "8481.80.90",
		CountryOfOrigin: "MX",
		Quantity:        util.FloatPtr(10),
		Value:           util.FloatPtr(100),
	}
}

func kinds(issues []internal.ValidationIssue) []internal.IssueKind {
	out := make([]internal.IssueKind, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Kind)
	}
	return out
}

func TestValidateCleanItem(t *testing.T) {
	if issues := Validate(validItem()); len(issues) != 0 {
		t.Fatalf("issues=%v", kinds(issues))
	}
}

func TestValidateRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*internal.LineItem)
		want   internal.IssueKind
	}{
		{name: "missing sku", mutate: func(i *internal.LineItem) { i.SKU = "" }, want: internal.IssueMissingSKU},
		{name: "missing hts", mutate: func(i *internal.LineItem) { i.HTS = "" }, want: internal.IssueMissingHTS},
		{name: "missing origin", mutate: func(i *internal.LineItem) { i.CountryOfOrigin = "" }, want: internal.IssueMissingOrigin},
		{name: "missing quantity", mutate: func(i *internal.LineItem) { i.Quantity = nil }, want: internal.IssueMissingQuantity},
		{name: "zero quantity", mutate: func(i *internal.LineItem) { i.Quantity = util.FloatPtr(0) }, want: internal.IssueInvalidQuantity},
		{name: "negative quantity", mutate: func(i *internal.LineItem) { i.Quantity = util.FloatPtr(-2) }, want: internal.IssueInvalidQuantity},
		{name: "missing value", mutate: func(i *internal.LineItem) { i.Value = nil }, want: internal.IssueMissingValue},
		{name: "negative value", mutate: func(i *internal.LineItem) { i.Value = util.FloatPtr(-1) }, want: internal.IssueInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := validItem()
			tc.mutate(&item)
			issues := Validate(item)
			if len(issues) != 1 {
				t.Fatalf("issues=%v", kinds(issues))
			}
			if issues[0].Kind != tc.want {
				t.Fatalf("kind=%s want %s", issues[0].Kind, tc.want)
			}
			if issues[0].LineNumber != item.LineNumber {
				t.Fatalf("line=%d", issues[0].LineNumber)
			}
		})
	}
}

func TestValidateZeroValueIsFine(t *testing.T) {
	item := validItem()
	item.Value = util.FloatPtr(0)
	if issues := Validate(item); len(issues) != 0 {
		t.Fatalf("zero value flagged: %v", kinds(issues))
	}
}

func TestValidateAccumulates(t *testing.T) {
	item := validItem()
	item.HTS = ""
	item.CountryOfOrigin = ""
	item.Quantity = nil

	issues := Validate(item)
	if len(issues) != 3 {
		t.Fatalf("issues=%v", kinds(issues))
	}
}
