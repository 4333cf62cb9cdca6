package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractIdentifier(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "labelled number",
			text: "电子发票\n发票号码：12345678901\n开票日期：2024年3月5日",
			want: "12345678901",
		},
		{
			name: "labelled code",
			text: "发票代码: 033001800211",
			want: "033001800211",
		},
		{
			name: "english label",
			text: "Invoice No: 987654321012",
			want: "987654321012",
		},
		{
			name: "bare digit run fallback",
			text: "some header\n1234567890\nfooter",
			want: "1234567890",
		},
		{
			name: "label outranks earlier bare run",
			text: "20240305123456\n发票号码：12345678901",
			want: "12345678901",
		},
		{
			name: "labelled value too short falls through",
			text: "发票号码：1234567",
			want: "",
		},
		{
			name: "no digits at all",
			text: "没有号码的文本",
			want: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.want, extractIdentifier(testCase.text))
		})
	}
}

func TestIdentifierNearLabel(t *testing.T) {
	t.Parallel()

	lines := []string{
		"03512345678",
		"发票号码",
		"上海增值税普通发票",
	}
	require.Equal(t, "03512345678", identifierNearLabel(lines))

	require.Equal(t, "", identifierNearLabel([]string{"没有标签", "12345678"}))

	// Number too far below the label line is out of the window.
	far := []string{"发票号码", "x", "x", "x", "12345678"}
	require.Equal(t, "", identifierNearLabel(far))
}
