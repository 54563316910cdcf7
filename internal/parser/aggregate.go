package parser

import (
	"acuity/internal"
	"acuity/internal/util"
)

// Aggregate merges line items sharing an identical SKU (case-sensitive, as
// trimmed at extraction). Additive fields are summed with nil counted as
// zero, string fields keep the first-seen value, and the unit price is
// recomputed from the summed totals when the summed quantity is positive.
// When it is not, the first member's unit price is kept as-is even though it
// no longer matches the totals. Groups emit in first-appearance order and
// line numbers restart at 1.
func Aggregate(items []internal.LineItem) []internal.LineItem {
	out := make([]internal.LineItem, 0, len(items))
	index := map[string]int{}

	for _, item := range items {
		i, seen := index[item.SKU]
		if !seen {
			merged := item
			merged.Quantity = util.FloatPtr(util.DerefFloat(item.Quantity))
			merged.NetWeight = util.FloatPtr(util.DerefFloat(item.NetWeight))
			merged.GrossWeight = util.FloatPtr(util.DerefFloat(item.GrossWeight))
			merged.Value = util.FloatPtr(util.DerefFloat(item.Value))
			if item.UnitPrice != nil {
				merged.UnitPrice = util.FloatPtr(*item.UnitPrice)
			}
			index[item.SKU] = len(out)
			out = append(out, merged)
			continue
		}

		g := &out[i]
		*g.Quantity += util.DerefFloat(item.Quantity)
		*g.NetWeight += util.DerefFloat(item.NetWeight)
		*g.GrossWeight += util.DerefFloat(item.GrossWeight)
		*g.Value += util.DerefFloat(item.Value)
	}

	for i := range out {
		if *out[i].Quantity > 0 {
			out[i].UnitPrice = util.FloatPtr(*out[i].Value / *out[i].Quantity)
		}
		out[i].LineNumber = i + 1
	}
	return out
}
