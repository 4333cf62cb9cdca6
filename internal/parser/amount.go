package parser

import (
	"strconv"
	"strings"

	"github.com/qiwei-han/invoice-extract/internal/patterns"
)

// amountCandidate is a parsed currency value plus the line it was found on.
// Duplicates are retained; the pool is consumed during classification.
type amountCandidate struct {
	value float64
	line  int
}

// extractAmounts classifies currency-marked values into tax and total.
// The grand total is structurally the largest monetary figure on an
// invoice; the tax amount carries no label of its own, so the first pool
// value inside the band is taken, scanning in original line order.
//
// Known limitation: an invoice whose tax falls outside the band, or whose
// largest printed figure is not the grand total, is misclassified.
func extractAmounts(lines []string) (tax, total string) {
	pool := collectAmounts(lines)
	if len(pool) == 0 {
		return "", ""
	}

	maxVal := pool[0].value
	for _, c := range pool[1:] {
		if c.value > maxVal {
			maxVal = c.value
		}
	}
	total = formatAmount(maxVal)

	for _, c := range pool {
		if c.value >= patterns.TaxBandLow && c.value <= patterns.TaxBandHigh {
			tax = formatAmount(c.value)
			break
		}
	}
	return tax, total
}

// collectAmounts parses every currency-marked token, skipping tokens that
// fail to parse (an extraction miss, not an error).
func collectAmounts(lines []string) []amountCandidate {
	var pool []amountCandidate
	for i, line := range lines {
		for _, m := range patterns.CurrencyAmount.AllSubmatches(strings.TrimSpace(line)) {
			v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
			if err != nil {
				continue
			}
			pool = append(pool, amountCandidate{value: v, line: i})
		}
	}
	return pool
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
