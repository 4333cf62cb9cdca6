package constants

import "strings"

// AllowedExtensions holds the default file extensions scanned for invoices.
// PDF is the primary source format; TXT exists for pre-extracted text.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
