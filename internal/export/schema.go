package export

import (
	"encoding/json"
	"fmt"

	"github.com/qiwei-han/invoice-extract/internal/batch"
	"github.com/qiwei-han/invoice-extract/internal/parser"
)

// recordJSON is the serialized shape of one extracted record. All fields
// are optional strings; empty means the extractor found nothing.
type recordJSON struct {
	InvoiceNumber string `json:"invoice_number"`
	IssueDate     string `json:"issue_date"`
	BuyerName     string `json:"buyer_name"`
	BuyerTaxID    string `json:"buyer_tax_id"`
	SellerName    string `json:"seller_name"`
	SellerTaxID   string `json:"seller_tax_id"`
	ItemName      string `json:"item_name"`
	SpecModel     string `json:"spec_model"`
	TaxAmount     string `json:"tax_amount"`
	TotalAmount   string `json:"total_amount"`
	IssuerName    string `json:"issuer_name"`
}

// resultJSON wraps a record with its document key and failure marker.
type resultJSON struct {
	DocumentKey string     `json:"document_key"`
	Error       string     `json:"error,omitempty"`
	Record      recordJSON `json:"record"`
}

// BuildRecordJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// every exported record must satisfy. We validate locally before writing.
func BuildRecordJSONSchema() map[string]any {
	props := map[string]any{
		"invoice_number": map[string]any{"type": "string", "pattern": `^$|^\d{8,20}$`},
		"issue_date":     map[string]any{"type": "string"},
		"buyer_name":     map[string]any{"type": "string"},
		"buyer_tax_id":   map[string]any{"type": "string", "pattern": `^$|^[A-Z0-9]{15,18}$`},
		"seller_name":    map[string]any{"type": "string"},
		"seller_tax_id":  map[string]any{"type": "string", "pattern": `^$|^[A-Z0-9]{15,18}$`},
		"item_name":      map[string]any{"type": "string"},
		"spec_model":     map[string]any{"type": "string"},
		"tax_amount":     decimalProp(),
		"total_amount":   decimalProp(),
		"issuer_name":    map[string]any{"type": "string"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^$|^\d+(\.\d{1,2})?$`,
	}
}

// WriteJSON renders results as an indented JSON array, validating every
// record against the schema before anything is written.
func (e *Exporter) WriteJSON(results []batch.Result) ([]byte, error) {
	schema := BuildRecordJSONSchema()

	out := make([]resultJSON, 0, len(results))
	for _, res := range results {
		rec := toRecordJSON(res.Record)
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshal record %s: %w", res.Key, err)
		}
		if err := ValidateJSONAgainstSchema(schema, raw); err != nil {
			return nil, fmt.Errorf("record %s: %w", res.Key, err)
		}
		out = append(out, resultJSON{DocumentKey: res.Key, Error: res.Err, Record: rec})
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}
	e.logger.Info("export.json.ok", "records", len(out), "bytes", len(b))
	return b, nil
}

func toRecordJSON(r parser.InvoiceRecord) recordJSON {
	return recordJSON{
		InvoiceNumber: r.InvoiceNumber,
		IssueDate:     r.IssueDate,
		BuyerName:     r.BuyerName,
		BuyerTaxID:    r.BuyerTaxID,
		SellerName:    r.SellerName,
		SellerTaxID:   r.SellerTaxID,
		ItemName:      r.ItemName,
		SpecModel:     r.SpecModel,
		TaxAmount:     r.TaxAmount,
		TotalAmount:   r.TotalAmount,
		IssuerName:    r.IssuerName,
	}
}
