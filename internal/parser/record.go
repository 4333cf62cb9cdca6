package parser

// InvoiceRecord is the canonical output for one document. Every field is
// independently optional: a miss on one field never blocks the others, and
// a fully blank record is a valid result that signals extraction failure.
type InvoiceRecord struct {
	InvoiceNumber string
	IssueDate     string
	BuyerName     string
	BuyerTaxID    string
	SellerName    string
	SellerTaxID   string
	ItemName      string
	SpecModel     string
	TaxAmount     string
	TotalAmount   string
	IssuerName    string
}

// Field is one name/value pair in the export ordering.
type Field struct {
	Name  string
	Value string
}

// Fields returns the record as an ordered field-name to value mapping, in
// the row order the sinks render.
func (r InvoiceRecord) Fields() []Field {
	return []Field{
		{"Invoice Number", r.InvoiceNumber},
		{"Issue Date", r.IssueDate},
		{"Buyer Name", r.BuyerName},
		{"Buyer Tax ID", r.BuyerTaxID},
		{"Seller Name", r.SellerName},
		{"Seller Tax ID", r.SellerTaxID},
		{"Item Name", r.ItemName},
		{"Specification", r.SpecModel},
		{"Tax Amount", r.TaxAmount},
		{"Total Amount", r.TotalAmount},
		{"Issuer", r.IssuerName},
	}
}

// IsEmpty reports whether no field was populated.
func (r InvoiceRecord) IsEmpty() bool {
	for _, f := range r.Fields() {
		if f.Value != "" {
			return false
		}
	}
	return true
}
