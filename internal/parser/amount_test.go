package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractAmounts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		lines     []string
		wantTax   string
		wantTotal string
	}{
		{
			name:      "max is total and first in-band value is tax",
			lines:     []string{"¥3992.00", "¥225.96", "¥3766.04"},
			wantTax:   "225.96",
			wantTotal: "3992.00",
		},
		{
			name:      "line order decides tax among in-band values",
			lines:     []string{"¥500.00", "¥225.96", "¥3992.00"},
			wantTax:   "500.00",
			wantTotal: "3992.00",
		},
		{
			name:      "thousands separators",
			lines:     []string{"价税合计 ¥13,992.00", "税额 ￥805.17"},
			wantTax:   "805.17",
			wantTotal: "13992.00",
		},
		{
			name:      "no value inside band leaves tax empty",
			lines:     []string{"¥3992.00", "¥12.50"},
			wantTax:   "",
			wantTotal: "3992.00",
		},
		{
			name:      "band boundaries are inclusive",
			lines:     []string{"¥100", "¥1000"},
			wantTax:   "100.00",
			wantTotal: "1000.00",
		},
		{
			name:      "fullwidth currency glyph",
			lines:     []string{"￥225.96"},
			wantTax:   "225.96",
			wantTotal: "225.96",
		},
		{
			name:      "unmarked numbers are ignored",
			lines:     []string{"3992.00", "金额 225.96"},
			wantTax:   "",
			wantTotal: "",
		},
		{
			name:      "malformed token skipped",
			lines:     []string{"¥,", "¥225.96"},
			wantTax:   "225.96",
			wantTotal: "225.96",
		},
		{
			name:      "no amounts at all",
			lines:     []string{"没有金额"},
			wantTax:   "",
			wantTotal: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tax, total := extractAmounts(testCase.lines)
			require.Equal(t, testCase.wantTax, tax)
			require.Equal(t, testCase.wantTotal, total)
		})
	}
}
