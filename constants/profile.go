package constants

// LayoutProfile classifies the textual layout convention of an invoice.
// It is chosen once per document and selects which extractor variants run.
type LayoutProfile string

// Stable values (these exact strings appear in logs).
const (
	ProfileStandard LayoutProfile = "STANDARD"    // electronic general invoice
	ProfileRegional LayoutProfile = "REGIONAL_SH" // Shanghai VAT layout
	ProfileComplex  LayoutProfile = "COMPLEX"     // machine-coded layout with checksum block
	ProfileGeneric  LayoutProfile = "GENERIC"     // fallback when no marker matches
)
