package document

import (
	"github.com/diewo77/invoice-studio/internal/models"
)

const (
	// Placeholder renders in place of empty optional fields so sections keep
	// their shape instead of disappearing.
	Placeholder = "—"

	// Attribution is the fixed product line on every page footer.
	Attribution = "Generated with Invoice Studio"

	titleText = "INVOICE"
	fileExt   = ".pdf"
)

// Assemble builds the document tree for a record and its totals. Pure; the
// caller owns the non-empty line-item precondition.
func Assemble(rec models.InvoiceRecord, totals models.Totals) *Document {
	doc := &Document{
		Title:    titleText,
		Filename: rec.Metadata.InvoiceNumber + fileExt,
	}

	issuer := []string{
		rec.Issuer.Name,
		rec.Issuer.AddressLine,
		rec.Issuer.LocalityLine,
		rec.Issuer.Phone,
		rec.Issuer.Email,
	}
	// tax id is the one optional field that is omitted, not dashed
	if rec.Issuer.TaxID != "" {
		issuer = append(issuer, "Tax ID: "+rec.Issuer.TaxID)
	}
	doc.Header = Header{
		Issuer: Block{Lines: issuer},
		Meta: []MetaRow{
			{Label: "Invoice #", Value: rec.Metadata.InvoiceNumber},
			{Label: "Issue Date", Value: rec.Metadata.IssueDate},
			{Label: "Due Date", Value: rec.Metadata.DueDate},
			{Label: "Terms", Value: rec.Metadata.Terms},
			{Label: "Reference", Value: orPlaceholder(rec.Metadata.Reference)},
		},
	}

	doc.BillTo = Block{
		Label: "Bill To",
		Lines: []string{
			rec.Client.Name,
			rec.Client.AddressLine,
			rec.Client.LocalityLine,
			orPlaceholder(rec.Client.Email),
		},
	}

	doc.Items = ItemsTable{Columns: []string{"Description", "Quantity", "Rate", "Amount"}}
	for _, it := range rec.LineItems {
		doc.Items.Rows = append(doc.Items.Rows, ItemRow{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitRate:    it.UnitRate,
			// re-derived from the row itself; must match the totals engine
			Amount: it.Amount(),
		})
	}

	doc.Totals = TotalsTable{Rows: []TotalRow{
		{Label: "Subtotal", Value: totals.Subtotal},
		{Label: "Discount", Value: rec.Discount},
		{Label: "Tax", Value: totals.Tax},
		{Label: "Total", Value: totals.Total, Bold: true},
	}}

	doc.Notes = Block{Label: "Notes", Lines: []string{orPlaceholder(rec.Notes)}}
	doc.Payment = Block{Label: "Payment Instructions", Lines: []string{orPlaceholder(rec.PaymentInstructions)}}
	doc.Footer = Footer{Attribution: Attribution, PageNumbers: true}
	return doc
}

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}
