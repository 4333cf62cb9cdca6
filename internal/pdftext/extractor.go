// Package pdftext is the text-acquisition collaborator: it turns a document
// handle into page-ordered text and nothing else. The extraction engine
// never touches files itself.
package pdftext

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/qiwei-han/invoice-extract/internal/common"
)

// Extractor pulls text out of a PDF via MuPDF.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// ExtractText returns the concatenated text of every page, in page order,
// newlines preserved as the renderer emits them.
func (e *Extractor) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", common.NewAppError("PDF_OPEN", path, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", common.NewAppError("PDF_PAGE_TEXT", path, err)
		}
		sb.WriteString(pageText)
	}

	e.logger.Info("pdftext.ok",
		"file", filepath.Base(path),
		"pages", doc.NumPage(),
		"bytes", sb.Len(),
	)
	return sb.String(), nil
}
