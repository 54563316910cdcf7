package parser

import (
	"math"

	"acuity/internal"
	"acuity/internal/util"
)

// Summarize reduces the final item set to aggregate statistics. Nil numerics
// count as zero; distinct counts ignore empty values. An empty item set
// yields an all-zero summary.
func Summarize(items []internal.LineItem) internal.ParseSummary {
	s := internal.ParseSummary{TotalItems: len(items)}

	skus := map[string]struct{}{}
	hts := map[string]struct{}{}
	origins := map[string]struct{}{}
	var qty, value, weight float64

	for _, item := range items {
		qty += util.DerefFloat(item.Quantity)
		value += util.DerefFloat(item.Value)
		weight += util.DerefFloat(item.NetWeight)
		if item.SKU != "" {
			skus[item.SKU] = struct{}{}
		}
		if item.HTS != "" {
			hts[item.HTS] = struct{}{}
		}
		if item.CountryOfOrigin != "" {
			origins[item.CountryOfOrigin] = struct{}{}
		}
	}

	s.TotalQuantity = round2(qty)
	s.TotalValue = round2(value)
	s.TotalWeight = round2(weight)
	s.UniqueSKUs = len(skus)
	s.UniqueHTS = len(hts)
	s.UniqueOrigins = len(origins)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
