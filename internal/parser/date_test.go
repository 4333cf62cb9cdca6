package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "cjk date preserved verbatim",
			text: "开票日期：2024年3月5日",
			want: "2024年3月5日",
		},
		{
			name: "label outranks earlier bare cjk date",
			text: "2023年1月1日 成立\n开票日期：2024年3月5日",
			want: "2024年3月5日",
		},
		{
			name: "bare cjk date",
			text: "某某发票 2024年12月31日",
			want: "2024年12月31日",
		},
		{
			name: "slash separated",
			text: "Date: 2024/3/5",
			want: "2024/3/5",
		},
		{
			name: "dash separated",
			text: "date 2024-03-05 end",
			want: "2024-03-05",
		},
		{
			name: "dot separated",
			text: "2024.3.5",
			want: "2024.3.5",
		},
		{
			name: "no date",
			text: "没有日期",
			want: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.want, extractDate(testCase.text))
		})
	}
}
