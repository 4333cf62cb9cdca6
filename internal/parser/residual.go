package parser

import (
	"strings"

	"github.com/qiwei-han/invoice-extract/internal/patterns"
)

// extractResiduals fills the fields with no structured shape of their own:
// the line-item description, the unit specification token, and the name of
// the person who issued the invoice.
func extractResiduals(lines []string, text string) (item, spec, issuer string) {
	item = extractItemName(lines)
	spec = extractSpecToken(text)
	issuer = extractIssuerName(lines)
	return item, spec, issuer
}

// extractItemName returns the first line carrying the item-marker glyph
// together with a service/fee/sale keyword, as printed (marker included).
func extractItemName(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, "*") && containsAny(trimmed, patterns.ItemKeywords) {
			return trimmed
		}
	}
	return ""
}

// extractSpecToken probes the fixed unit-word list in order and returns the
// first word present anywhere in the text, not its surrounding context.
func extractSpecToken(text string) string {
	for _, w := range patterns.UnitWords {
		if strings.Contains(text, w) {
			return w
		}
	}
	return ""
}

// extractIssuerName looks for a standalone short CJK run shaped like a
// person name. Lines containing any field-label word are skipped, since
// the same shape covers labels like 合计 or 复核. No guessing happens when
// nothing matches; the field stays empty.
func extractIssuerName(lines []string) string {
	for _, line := range lines {
		cleaned := strings.TrimSpace(line)
		if !patterns.IssuerLine.MatchString(cleaned) {
			continue
		}
		if containsAny(cleaned, patterns.IssuerExclusions) {
			continue
		}
		return cleaned
	}
	return ""
}
