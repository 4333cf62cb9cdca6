package parser

import (
	"strings"

	"github.com/qiwei-han/invoice-extract/internal/patterns"
)

// Invoice numbers on this document class run 8-20 digits.
const (
	minIdentifierDigits = 8
	maxIdentifierDigits = 20
)

// Labels the regional layout prints near, but not on, the number line.
const (
	numberLabel     = "发票号码"
	numberCodeLabel = "发票代码"
)

// extractIdentifier returns the invoice number, trying library rules most
// specific first and stopping at the first candidate inside the length
// bounds. Candidates from one rule are consumed in text order.
func extractIdentifier(text string) string {
	for _, rule := range patterns.InvoiceNumber {
		for _, m := range rule.AllSubmatches(text) {
			if len(m) >= minIdentifierDigits && len(m) <= maxIdentifierDigits {
				return m
			}
		}
	}
	return ""
}

// identifierNearLabel handles layouts that separate the number from its
// label: it scans two lines either side of a label line for a digit run.
func identifierNearLabel(lines []string) string {
	for i, line := range lines {
		if !strings.Contains(line, numberLabel) && !strings.Contains(line, numberCodeLabel) {
			continue
		}
		lo := i - 2
		if lo < 0 {
			lo = 0
		}
		hi := i + 3
		if hi > len(lines) {
			hi = len(lines)
		}
		for j := lo; j < hi; j++ {
			if m, ok := patterns.BareDigitRun.FirstSubmatch(lines[j]); ok {
				return m
			}
		}
	}
	return ""
}
