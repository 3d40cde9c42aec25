package document

import (
	"strings"
	"testing"

	"github.com/diewo77/invoice-studio/internal/models"
)

func sampleRecord() models.InvoiceRecord {
	return models.InvoiceRecord{
		Issuer: models.Party{
			Name: "Acme", AddressLine: "1 Main St", LocalityLine: "Springfield",
			Phone: "555-0100", Email: "billing@acme.test",
		},
		Client: models.Party{
			Name: "ClientCo", AddressLine: "2 Oak Ave", LocalityLine: "Shelbyville",
		},
		Metadata: models.Metadata{
			InvoiceNumber: "INV-42", IssueDate: "2026-03-01", DueDate: "2026-03-15", Terms: "net-15",
		},
		LineItems: []models.LineItem{
			{Description: "design", Quantity: 2, UnitRate: 49.5},
			{Description: "build", Quantity: 1, UnitRate: 1},
		},
		TaxRate:  0.07,
		Discount: 10,
	}
}

// totalsFor mirrors the calculation engine for fixture purposes.
func totalsFor(rec models.InvoiceRecord) models.Totals {
	var subtotal float64
	for _, it := range rec.LineItems {
		subtotal += it.Amount()
	}
	after := subtotal - rec.Discount
	if after < 0 {
		after = 0
	}
	tax := after * rec.TaxRate
	return models.Totals{Subtotal: subtotal, AfterDiscount: after, Tax: tax, Total: after + tax}
}

func assemble(rec models.InvoiceRecord) *Document {
	return Assemble(rec, totalsFor(rec))
}

func TestAssembleFilename(t *testing.T) {
	doc := assemble(sampleRecord())
	if doc.Filename != "INV-42.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}
}

func TestAssembleMetaOrder(t *testing.T) {
	doc := assemble(sampleRecord())
	labels := make([]string, 0, len(doc.Header.Meta))
	for _, m := range doc.Header.Meta {
		labels = append(labels, m.Label)
	}
	want := []string{"Invoice #", "Issue Date", "Due Date", "Terms", "Reference"}
	if strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Fatalf("meta order = %v", labels)
	}
	// empty reference renders the placeholder, never disappears
	if doc.Header.Meta[4].Value != Placeholder {
		t.Fatalf("reference = %q", doc.Header.Meta[4].Value)
	}
}

func TestAssembleTaxIDOmittedWhenEmpty(t *testing.T) {
	doc := assemble(sampleRecord())
	if len(doc.Header.Issuer.Lines) != 5 {
		t.Fatalf("issuer lines = %v", doc.Header.Issuer.Lines)
	}
	for _, line := range doc.Header.Issuer.Lines {
		if strings.Contains(line, "Tax ID") || line == Placeholder {
			t.Fatalf("empty tax id must be omitted entirely, got %q", line)
		}
	}

	rec := sampleRecord()
	rec.Issuer.TaxID = "12-3456789"
	doc = assemble(rec)
	last := doc.Header.Issuer.Lines[len(doc.Header.Issuer.Lines)-1]
	if last != "Tax ID: 12-3456789" {
		t.Fatalf("tax id line = %q", last)
	}
}

func TestAssembleClientEmailPlaceholder(t *testing.T) {
	doc := assemble(sampleRecord())
	lines := doc.BillTo.Lines
	if lines[len(lines)-1] != Placeholder {
		t.Fatalf("empty client email should dash, got %q", lines[len(lines)-1])
	}
}

func TestAssembleItemRowsRederiveAmounts(t *testing.T) {
	rec := sampleRecord()
	totals := totalsFor(rec)
	doc := Assemble(rec, totals)

	if got := strings.Join(doc.Items.Columns, "|"); got != "Description|Quantity|Rate|Amount" {
		t.Fatalf("columns = %q", got)
	}
	if len(doc.Items.Rows) != 2 {
		t.Fatalf("rows = %d", len(doc.Items.Rows))
	}
	var sum float64
	for i, row := range doc.Items.Rows {
		want := rec.LineItems[i].Amount()
		if row.Amount != want {
			t.Fatalf("row %d amount = %v, want %v", i, row.Amount, want)
		}
		sum += row.Amount
	}
	if sum != totals.Subtotal {
		t.Fatalf("row amounts disagree with the totals engine: %v vs %v", sum, totals.Subtotal)
	}
}

func TestAssembleTotalsTable(t *testing.T) {
	doc := assemble(sampleRecord())
	rows := doc.Totals.Rows
	if len(rows) != 4 {
		t.Fatalf("totals rows = %d", len(rows))
	}
	want := []string{"Subtotal", "Discount", "Tax", "Total"}
	for i, row := range rows {
		if row.Label != want[i] {
			t.Fatalf("row %d label = %q", i, row.Label)
		}
		if row.Bold != (row.Label == "Total") {
			t.Fatalf("only the total is bold, got %#v", row)
		}
	}
	if rows[1].Value != 10 {
		t.Fatalf("discount row = %v", rows[1].Value)
	}
}

func TestAssembleNotesAndPaymentPlaceholders(t *testing.T) {
	doc := assemble(sampleRecord())
	if doc.Notes.Lines[0] != Placeholder {
		t.Fatalf("empty notes should dash, got %q", doc.Notes.Lines[0])
	}
	if doc.Payment.Lines[0] != Placeholder {
		t.Fatalf("empty payment instructions should dash, got %q", doc.Payment.Lines[0])
	}

	rec := sampleRecord()
	rec.Notes = "thanks"
	rec.PaymentInstructions = "Wire to account 123"
	doc = assemble(rec)
	if doc.Notes.Lines[0] != "thanks" || doc.Payment.Lines[0] != "Wire to account 123" {
		t.Fatalf("non-empty text replaced: %#v %#v", doc.Notes, doc.Payment)
	}
}

func TestAssembleFooter(t *testing.T) {
	doc := assemble(sampleRecord())
	if doc.Footer.Attribution != Attribution {
		t.Fatalf("attribution = %q", doc.Footer.Attribution)
	}
	if !doc.Footer.PageNumbers {
		t.Fatalf("page numbers must be on")
	}
}
