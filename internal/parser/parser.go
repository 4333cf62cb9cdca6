// Package parser is the field-extraction engine: layout detection followed
// by a pipeline of specialized extractors that read the same document text
// independently and merge their results into one InvoiceRecord.
package parser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/qiwei-han/invoice-extract/constants"
)

// Parser runs layout detection and the field extractors over one document.
// It holds no per-document state, so a single Parser may be used from any
// number of goroutines.
type Parser struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse extracts an InvoiceRecord from raw page-ordered text. It never
// fails: a field whose patterns do not match stays empty, and a cancelled
// context yields the partial record built so far. The same text always
// yields the same record.
func (p *Parser) Parse(ctx context.Context, text string) InvoiceRecord {
	var rec InvoiceRecord

	profile := DetectLayout(text)
	p.logger.Info("parse.start", "profile", string(profile), "bytes", len(text))

	lines := strings.Split(text, "\n")

	// The regional layout prints the invoice number away from its label, so
	// it gets a windowed search near the label line before the generic rules.
	if profile == constants.ProfileRegional {
		rec.InvoiceNumber = identifierNearLabel(lines)
	}
	if rec.InvoiceNumber == "" {
		rec.InvoiceNumber = extractIdentifier(text)
	}
	if ctx.Err() != nil {
		return rec
	}

	rec.IssueDate = extractDate(text)
	if ctx.Err() != nil {
		return rec
	}

	party := extractParties(lines)
	rec.BuyerName = party.buyerName
	rec.BuyerTaxID = party.buyerTaxID
	rec.SellerName = party.sellerName
	rec.SellerTaxID = party.sellerTaxID
	if ctx.Err() != nil {
		return rec
	}

	rec.TaxAmount, rec.TotalAmount = extractAmounts(lines)
	if ctx.Err() != nil {
		return rec
	}

	rec.ItemName, rec.SpecModel, rec.IssuerName = extractResiduals(lines, text)

	p.logger.Info("parse.done", "profile", string(profile), "empty", rec.IsEmpty())
	return rec
}
