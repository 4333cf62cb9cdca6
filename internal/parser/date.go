package parser

import "github.com/qiwei-han/invoice-extract/internal/patterns"

// extractDate returns the issue date exactly as printed. Source formats
// vary by issuer and downstream consumers expect the literal, so the match
// is never normalized.
func extractDate(text string) string {
	for _, rule := range patterns.IssueDate {
		if m, ok := rule.FirstSubmatch(text); ok {
			return m
		}
	}
	return ""
}
