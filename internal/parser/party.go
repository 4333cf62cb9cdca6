package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/qiwei-han/invoice-extract/internal/patterns"
)

// Role-keyword proximity window, in lines around the keyword line.
const (
	roleWindowBefore = 3
	roleWindowAfter  = 5
)

// companyCandidate is a transient (name, originating line) pair awaiting
// role assignment. The pool lives only for one extraction.
type companyCandidate struct {
	name string
	line int
}

// partyFields is the buyer/seller slice of a record.
type partyFields struct {
	buyerName   string
	buyerTaxID  string
	sellerName  string
	sellerTaxID string
}

// extractParties discovers company-name and tax-identifier candidates, then
// disambiguates roles. Names are assigned by keyword proximity with a
// positional fallback; identifiers carry no distinguishing keyword in the
// text, so they are assigned positionally only.
func extractParties(lines []string) partyFields {
	var pf partyFields

	names := collectCompanyNames(lines)
	ids := collectTaxIDs(lines)

	pf.buyerName, pf.sellerName = assignRoles(lines, names)

	if len(ids) > 0 {
		pf.buyerTaxID = ids[0]
	}
	if len(ids) > 1 {
		pf.sellerTaxID = ids[1]
	}
	return pf
}

// collectCompanyNames scans every line with every name-shape rule and
// returns candidates deduplicated by exact string, first seen kept.
// Very short hits are noise from the loose mixed-script rule and dropped.
func collectCompanyNames(lines []string) []companyCandidate {
	seen := make(map[string]struct{})
	var out []companyCandidate
	for _, rule := range patterns.CompanyName {
		for i, line := range lines {
			for _, m := range rule.AllSubmatches(line) {
				if utf8.RuneCountInString(m) <= 5 {
					continue
				}
				if _, dup := seen[m]; dup {
					continue
				}
				seen[m] = struct{}{}
				out = append(out, companyCandidate{name: m, line: i})
			}
		}
	}
	return out
}

// collectTaxIDs returns alphanumeric identifier candidates in discovery
// order, deduplicated.
func collectTaxIDs(lines []string) []string {
	text := strings.Join(lines, "\n")
	seen := make(map[string]struct{})
	var out []string
	for _, rule := range patterns.TaxID {
		for _, m := range rule.AllSubmatches(text) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// assignRoles claims candidate names for the buyer and then the seller role
// by keyword proximity. The passes run in that order over one shared pool
// and a claimed name leaves the pool, so a name can never hold both roles
// and earlier keyword occurrences claim first. Whatever remains is assigned
// positionally: invoices in this document class print buyer details before
// seller details, so unclaimed names fill the still-empty roles in
// discovery order.
func assignRoles(lines []string, cands []companyCandidate) (buyer, seller string) {
	pool := make([]companyCandidate, len(cands))
	copy(pool, cands)

	buyer, pool = claimByKeyword(lines, pool, patterns.BuyerKeywords)
	seller, pool = claimByKeyword(lines, pool, patterns.SellerKeywords)

	next := 0
	if buyer == "" && next < len(pool) {
		buyer = pool[next].name
		next++
	}
	if seller == "" && next < len(pool) {
		seller = pool[next].name
	}
	return buyer, seller
}

// claimByKeyword finds the first line containing any of the role keywords
// and claims the pool candidate originating closest to the top of the
// window of roleWindowBefore lines above and roleWindowAfter below it.
// Returns the claimed name ("" when no keyword line has an in-window
// candidate) and the remaining pool.
func claimByKeyword(lines []string, pool []companyCandidate, keywords []string) (string, []companyCandidate) {
	for i, line := range lines {
		if !containsAny(line, keywords) {
			continue
		}
		lo := i - roleWindowBefore
		hi := i + roleWindowAfter
		best := -1
		for pi, cand := range pool {
			if cand.line < lo || cand.line > hi {
				continue
			}
			if best < 0 || cand.line < pool[best].line {
				best = pi
			}
		}
		if best >= 0 {
			name := pool[best].name
			return name, append(pool[:best:best], pool[best+1:]...)
		}
	}
	return "", pool
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
