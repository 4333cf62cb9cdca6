// Package patterns is the declarative recognition library for the field
// extractors. Each field family gets an ordered rule set; extractors scan
// rules in specificity order and never embed their own regexes, so a new
// layout only needs new rules here.
package patterns

import (
	"regexp"
	"sort"
)

// Rule is one recognition pattern, tagged with a specificity rank.
// Lower rank means more specific; rule sets are kept sorted by rank.
type Rule struct {
	Name        string
	Specificity int

	re *regexp.Regexp
}

func mustRule(name string, specificity int, expr string) Rule {
	return Rule{Name: name, Specificity: specificity, re: regexp.MustCompile(expr)}
}

// FirstSubmatch returns the first capture group of the first occurrence in
// text. Patterns without a capture group yield the whole match.
func (r Rule) FirstSubmatch(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return m[0], true
}

// AllSubmatches returns every occurrence's first capture group, in text order.
func (r Rule) AllSubmatches(text string) []string {
	ms := r.re.FindAllStringSubmatch(text, -1)
	if ms == nil {
		return nil
	}
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		if len(m) > 1 {
			out = append(out, m[1])
		} else {
			out = append(out, m[0])
		}
	}
	return out
}

// MatchString reports whether text matches the rule at all.
func (r Rule) MatchString(text string) bool {
	return r.re.MatchString(text)
}

// RuleSet is the ordered rule list for one field family.
type RuleSet []Rule

// NewRuleSet orders rules by specificity rank (stable, so rules sharing a
// rank keep their declared order).
func NewRuleSet(rules ...Rule) RuleSet {
	rs := RuleSet(rules)
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Specificity < rs[j].Specificity })
	return rs
}

// BareDigitRun is the least specific invoice-number rule. It doubles as the
// probe for the regional label-window search, and risks picking up a tax ID
// when used on whole text, so InvoiceNumber keeps it last.
var BareDigitRun = mustRule("bare-digit-run", 3, `(\d{8,20})`)

// InvoiceNumber rules, most specific first: explicit labels are unambiguous,
// the bare digit run is a deliberate last resort.
var InvoiceNumber = NewRuleSet(
	mustRule("labelled-number", 0, `发票号码[：:]\s*([0-9]+)`),
	mustRule("labelled-code", 1, `发票代码[：:]\s*([0-9]+)`),
	mustRule("labelled-english", 2, `(?i)Invoice\s*No[.:]?\s*([0-9]+)`),
	BareDigitRun,
)

// IssueDate rules. Matches are returned verbatim; the printed format is
// part of the value.
var IssueDate = NewRuleSet(
	mustRule("labelled-cjk", 0, `开票日期[：:]\s*(\d{4}年\d{1,2}月\d{1,2}日)`),
	mustRule("bare-cjk", 1, `(\d{4}年\d{1,2}月\d{1,2}日)`),
	mustRule("slash-separated", 2, `(\d{4}/\d{1,2}/\d{1,2})`),
	mustRule("dash-separated", 3, `(\d{4}-\d{1,2}-\d{1,2})`),
	mustRule("dot-separated", 4, `(\d{4}\.\d{1,2}\.\d{1,2})`),
)

// CompanyName rules describe organizational-entity name shapes. Both feed
// one candidate pool, so rank here is discovery order, not first-wins.
var CompanyName = NewRuleSet(
	mustRule("cjk-org-suffix", 0, `([\x{4e00}-\x{9fa5}]{4,}(?:有限责任公司|股份有限公司|公司|企业|集团))`),
	mustRule("mixed-org-suffix", 1, `([A-Za-z\x{4e00}-\x{9fa5}]{6,}(?:公司|企业|集团|有限|责任|股份))`),
)

// TaxID rules. All matches feed one pool in discovery order; the labelled
// forms are substrings of the bare form, so deduplication collapses them.
var TaxID = NewRuleSet(
	mustRule("bare-alnum", 0, `([A-Z0-9]{15,18})`),
	mustRule("labelled-uscc", 1, `统一社会信用代码[：:]\s*([A-Z0-9]{15,18})`),
	mustRule("labelled-taxpayer", 2, `纳税人识别号[：:]\s*([A-Z0-9]{15,18})`),
)

// CurrencyAmount matches a currency glyph immediately followed by a decimal
// number, thousands separators permitted.
var CurrencyAmount = mustRule("currency-amount", 0, `[¥￥]([\d,]+\.?\d*)`)

// IssuerLine matches a standalone run of 2-4 CJK characters, the shape of a
// printed person name.
var IssuerLine = mustRule("standalone-cjk-name", 0, `^[\x{4e00}-\x{9fa5}]{2,4}$`)

// Role keywords used for buyer/seller proximity assignment.
var (
	BuyerKeywords  = []string{"购买方", "买方", "收票方", "付款方"}
	SellerKeywords = []string{"销售方", "卖方", "开票方", "收款方"}
)

// ItemKeywords mark a line-item description next to the * marker glyph.
var ItemKeywords = []string{"服务", "费", "销售"}

// UnitWords is the fixed ordered list of count-unit glyphs probed for the
// specification token.
var UnitWords = []string{"次", "个", "件", "台", "套", "张", "份"}

// IssuerExclusions are field-label words that disqualify a short CJK line
// from being read as the issuer's name.
var IssuerExclusions = []string{
	"开票人", "复核", "收款", "销售", "购买", "合计", "税额", "金额", "单价", "数量",
}

// Band for the tax-amount heuristic: tax amounts for this document class
// empirically cluster here, while the grand total sits above it.
const (
	TaxBandLow  = 100.0
	TaxBandHigh = 1000.0
)
