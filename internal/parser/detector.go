package parser

import (
	"strings"

	"github.com/qiwei-han/invoice-extract/constants"
)

// Distinguishing substrings for layout detection.
const (
	markerRegional      = "上海增值税"
	markerMachineSerial = "机器编号"
	markerChecksum      = "校验码"
	markerEInvoice      = "电子发票（普通发票）"
)

// DetectLayout classifies text into a layout profile. Rules run most
// specific first and only the first match applies, so profiles are mutually
// exclusive. Pure function of the input text.
func DetectLayout(text string) constants.LayoutProfile {
	switch {
	case strings.Contains(text, markerRegional):
		return constants.ProfileRegional
	case strings.Contains(text, markerMachineSerial) && strings.Contains(text, markerChecksum):
		return constants.ProfileComplex
	case strings.Contains(text, markerEInvoice):
		return constants.ProfileStandard
	default:
		return constants.ProfileGeneric
	}
}
