// Package tradedetect classifies claim line-item text into canonical trades.
// The routing module composes it to derive required trades from a claim's
// line items.
package tradedetect

import (
	"strings"

	"maxclaim_backend/internal/routing/scoring"
)

// categoryHints maps insurer line-item categories straight to trades when
// the item name itself is ambiguous.
var categoryHints = map[string]string{
	"rfg": "roofing",
	"plm": "plumbing",
	"ele": "electrical",
	"hvc": "hvac",
	"flr": "flooring",
	"dry": "drywall",
	"pnt": "painting",
	"wdw": "windows",
	"cab": "cabinets",
	"app": "appliances",
}

// DetectTrade converts one claim line item into a canonical trade, or ""
// when nothing matches. Item text wins over the category hint.
func DetectTrade(itemName, category string) string {
	if itemName != "" {
		if trade := scoring.NormalizeTrade(itemName); isCanonical(trade) {
			return trade
		}
	}

	if category != "" {
		key := strings.ToLower(strings.TrimSpace(category))
		if trade, ok := categoryHints[key]; ok {
			return trade
		}
		if trade := scoring.NormalizeTrade(category); isCanonical(trade) {
			return trade
		}
	}

	return ""
}

// DetectTrades classifies a batch of line items and deduplicates the result,
// preserving first-seen order. This is the shape RoutingCriteria.Trades
// expects.
func DetectTrades(items []LineItem) []string {
	seen := make(map[string]bool)
	var trades []string
	for _, item := range items {
		trade := DetectTrade(item.Name, item.Category)
		if trade == "" || seen[trade] {
			continue
		}
		seen[trade] = true
		trades = append(trades, trade)
	}
	return trades
}

// LineItem is one row of a parsed claim estimate.
type LineItem struct {
	Name     string
	Category string
}

func isCanonical(trade string) bool {
	switch trade {
	case "roofing", "flooring", "drywall", "painting", "plumbing", "electrical",
		"hvac", "windows", "doors", "appliances", "cabinets", scoring.TradeGeneral:
		return true
	default:
		return false
	}
}
