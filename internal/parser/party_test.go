package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractParties_KeywordProximity(t *testing.T) {
	t.Parallel()

	lines := []string{
		"购买方",
		"名称：北京智云科技有限公司",
		"统一社会信用代码：91110108MA01C8Y23B",
		"销售方",
		"名称：上海恒达信息技术有限公司",
		"统一社会信用代码：91310115MA1K4PL92F",
	}

	pf := extractParties(lines)
	require.Equal(t, "北京智云科技有限公司", pf.buyerName)
	require.Equal(t, "上海恒达信息技术有限公司", pf.sellerName)
	require.Equal(t, "91110108MA01C8Y23B", pf.buyerTaxID)
	require.Equal(t, "91310115MA1K4PL92F", pf.sellerTaxID)
}

func TestExtractParties_PositionalFallbackForSeller(t *testing.T) {
	t.Parallel()

	// A buyer keyword sits next to the first name; no seller keyword exists
	// anywhere, so the second name falls to the seller positionally.
	lines := []string{
		"付款方",
		"北京智云科技有限公司",
		"",
		"",
		"",
		"",
		"",
		"上海恒达信息技术有限公司",
	}

	pf := extractParties(lines)
	require.Equal(t, "北京智云科技有限公司", pf.buyerName)
	require.Equal(t, "上海恒达信息技术有限公司", pf.sellerName)
}

func TestExtractParties_NoKeywordsAssignsByPosition(t *testing.T) {
	t.Parallel()

	lines := []string{
		"天津一方贸易有限公司",
		"广州二方实业集团",
	}

	pf := extractParties(lines)
	require.Equal(t, "天津一方贸易有限公司", pf.buyerName)
	require.Equal(t, "广州二方实业集团", pf.sellerName)
}

func TestExtractParties_SingleCandidateLeavesSellerEmpty(t *testing.T) {
	t.Parallel()

	pf := extractParties([]string{"北京智云科技有限公司"})
	require.Equal(t, "北京智云科技有限公司", pf.buyerName)
	require.Empty(t, pf.sellerName)
}

func TestExtractParties_NoCandidates(t *testing.T) {
	t.Parallel()

	pf := extractParties([]string{"没有任何公司出现", ""})
	require.Empty(t, pf.buyerName)
	require.Empty(t, pf.sellerName)
	require.Empty(t, pf.buyerTaxID)
	require.Empty(t, pf.sellerTaxID)
}

func TestCollectCompanyNames_DeduplicatesFirstSeen(t *testing.T) {
	t.Parallel()

	lines := []string{
		"北京智云科技有限公司",
		"其他内容",
		"北京智云科技有限公司",
	}

	cands := collectCompanyNames(lines)
	require.Len(t, cands, 1)
	require.Equal(t, "北京智云科技有限公司", cands[0].name)
	require.Equal(t, 0, cands[0].line)
}

func TestClaimByKeyword_RespectsWindow(t *testing.T) {
	t.Parallel()

	// The candidate sits 6 lines below the keyword, outside the +5 window.
	lines := make([]string, 10)
	lines[0] = "购买方"
	lines[6] = "北京智云科技有限公司"
	pool := []companyCandidate{{name: "北京智云科技有限公司", line: 6}}

	name, rest := claimByKeyword(lines, pool, []string{"购买方"})
	require.Empty(t, name)
	require.Len(t, rest, 1)

	// Move it inside the window and it gets claimed.
	pool[0].line = 5
	name, rest = claimByKeyword(lines, pool, []string{"购买方"})
	require.Equal(t, "北京智云科技有限公司", name)
	require.Empty(t, rest)
}

func TestCollectTaxIDs_OrderAndDedup(t *testing.T) {
	t.Parallel()

	lines := []string{
		"统一社会信用代码：91110108MA01C8Y23B",
		"纳税人识别号：91310115MA1K4PL92F",
		"again 91110108MA01C8Y23B",
	}

	ids := collectTaxIDs(lines)
	require.Equal(t, []string{"91110108MA01C8Y23B", "91310115MA1K4PL92F"}, ids)
}

func TestCollectTaxIDs_LengthBounds(t *testing.T) {
	t.Parallel()

	// 14 characters: too short for an identifier.
	ids := collectTaxIDs([]string{"91110108MA01C8"})
	require.Empty(t, ids)

	long := strings.Repeat("9", 18)
	ids = collectTaxIDs([]string{long})
	require.Equal(t, []string{long}, ids)
}
