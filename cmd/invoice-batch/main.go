package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/qiwei-han/invoice-extract/constants"
	"github.com/qiwei-han/invoice-extract/internal/batch"
	"github.com/qiwei-han/invoice-extract/internal/common"
	"github.com/qiwei-han/invoice-extract/internal/export"
	"github.com/qiwei-han/invoice-extract/internal/ingest"
	"github.com/qiwei-han/invoice-extract/internal/parser"
	"github.com/qiwei-han/invoice-extract/internal/pdftext"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		dir     = flag.String("dir", "", "directory to scan for invoice PDFs (required)")
		out     = flag.String("out", "", "output XLSX path (default: timestamped file beside --dir)")
		jsonOut = flag.String("json", "", "optional JSON output path")
		workers = flag.Int("workers", 0, "parse workers (default from BATCH_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		name := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("20060102_150405"))
		*out = filepath.Join(filepath.Dir(*dir), name)
	}

	cfg := common.LoadConfig()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	files, err := ingest.ListFiles(*dir, nil, true)
	if err != nil {
		logger.Error("failed to list invoice files", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Warn("no invoice files found", "dir", *dir)
		os.Exit(1)
	}
	logger.Info("found invoice files", "dir", *dir, "count", len(files))

	// Text acquisition happens up front; the parse core never does I/O.
	extractor := pdftext.NewExtractor(logger)
	docs := make([]batch.Document, 0, len(files))
	for _, path := range files {
		key := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		text, err := readDocumentText(extractor, path)
		if err != nil {
			logger.Error("text extraction failed", "path", path, "error", err)
			// Keep the document so the batch stays one-output-per-input.
			docs = append(docs, batch.Document{Key: key})
			continue
		}
		docs = append(docs, batch.Document{Key: key, Text: text})
	}

	opts := []batch.Option{
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithParseTimeout(cfg.Batch.ParseTimeout),
	}
	if *workers > 0 {
		opts = append(opts, batch.WithWorkers(*workers))
	}
	runner := batch.NewRunner(parser.New(logger), logger, opts...)

	results, err := runner.Run(ctx, docs)
	if err != nil {
		logger.Error("batch extracted nothing", "error", err)
		os.Exit(1)
	}

	exporter := export.NewExporter(logger)
	if err := exporter.SaveXLSX(results, *out); err != nil {
		logger.Error("failed to write workbook", "out", *out, "error", common.WrapError(err, "export"))
		os.Exit(1)
	}
	logger.Info("workbook written", "out", *out, "documents", len(results))

	if *jsonOut != "" {
		b, err := exporter.WriteJSON(results)
		if err != nil {
			logger.Error("failed to render JSON output", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, b, 0o644); err != nil {
			logger.Error("failed to write JSON output", "json", *jsonOut, "error", err)
			os.Exit(1)
		}
		logger.Info("json written", "json", *jsonOut)
	}
}

// readDocumentText routes a file to its text source: PDFs go through the
// MuPDF extractor, pre-extracted .txt files are read directly.
func readDocumentText(extractor *pdftext.Extractor, path string) (string, error) {
	if constants.NormalizeExt(filepath.Ext(path)) == "txt" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(b), nil
	}
	return extractor.ExtractText(path)
}
