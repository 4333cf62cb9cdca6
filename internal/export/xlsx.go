// Package export renders batch results for the tabular sinks: an XLSX
// workbook with one sheet per document, and an optional schema-validated
// JSON document.
package export

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/qiwei-han/invoice-extract/internal/batch"
)

// sheetNameLimit is imposed by the XLSX format.
const sheetNameLimit = 31

// Exporter writes extraction results to their output formats.
type Exporter struct {
	logger *slog.Logger
}

func NewExporter(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{logger: logger}
}

// WriteXLSX renders one sheet per result, named after the document key, and
// returns the workbook bytes. Each sheet is a two-column Field/Value table
// in record order.
func (e *Exporter) WriteXLSX(results []batch.Result) ([]byte, error) {
	f := excelize.NewFile()
	used := make(map[string]struct{}, len(results))

	for _, res := range results {
		sheet := sheetName(res.Key, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", sheet, err)
		}

		write := func(col, row int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, 1, "Field")
		write(2, 1, "Value")
		row := 2
		for _, fld := range res.Record.Fields() {
			write(1, row, fld.Name)
			write(2, row, fld.Value)
			row++
		}

		_ = f.SetColWidth(sheet, "A", "A", 25)
		_ = f.SetColWidth(sheet, "B", "B", 40)
	}

	// Drop the default sheet unless it is the only one left.
	if len(results) > 0 {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	e.logger.Info("export.xlsx.ok", "sheets", len(results), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// SaveXLSX writes the workbook to path.
func (e *Exporter) SaveXLSX(results []batch.Result, path string) error {
	b, err := e.WriteXLSX(results)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sheetName derives a sheet title from the document key, honoring the
// 31-character limit and deduplicating collisions with a numeric suffix.
func sheetName(key string, used map[string]struct{}) string {
	base := key
	if r := []rune(base); len(r) > sheetNameLimit {
		base = string(r[:sheetNameLimit])
	}
	if base == "" {
		base = "Document"
	}

	name := base
	for n := 2; ; n++ {
		if _, taken := used[name]; !taken {
			break
		}
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(base)
		if maxBase := sheetNameLimit - len([]rune(suffix)); len(r) > maxBase {
			r = r[:maxBase]
		}
		name = string(r) + suffix
	}
	used[name] = struct{}{}
	return name
}
