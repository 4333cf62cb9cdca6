package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qiwei-han/invoice-extract/constants"
)

func TestDetectLayout(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want constants.LayoutProfile
	}{
		{
			name: "regional marker",
			text: "上海增值税普通发票\n发票号码",
			want: constants.ProfileRegional,
		},
		{
			name: "machine serial plus checksum",
			text: "机器编号：499098765432\n校验码：01234 56789",
			want: constants.ProfileComplex,
		},
		{
			name: "machine serial alone is not complex",
			text: "机器编号：499098765432",
			want: constants.ProfileGeneric,
		},
		{
			name: "standard electronic invoice",
			text: "电子发票（普通发票）\n发票号码：12345678901",
			want: constants.ProfileStandard,
		},
		{
			name: "regional outranks standard",
			text: "上海增值税\n电子发票（普通发票）",
			want: constants.ProfileRegional,
		},
		{
			name: "no marker",
			text: "一张看不出格式的票据",
			want: constants.ProfileGeneric,
		},
		{
			name: "empty text",
			text: "",
			want: constants.ProfileGeneric,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.want, DetectLayout(testCase.text))
		})
	}
}
