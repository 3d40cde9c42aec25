package form

import (
	"time"

	"github.com/google/uuid"

	"github.com/diewo77/invoice-studio/internal/models"
	"github.com/diewo77/invoice-studio/internal/services"
)

// Form owns the in-progress invoice record for one session. All edits go
// through typed setters; each setter writes exactly one leaf and marks it
// touched. Validation is recomputed on demand, never stored.
type Form struct {
	rec     models.InvoiceRecord
	touched map[FieldID]bool
	now     func() time.Time
}

// New starts a session, rehydrating the issuer and payment instructions from
// the persisted defaults. Everything else starts from hard-coded defaults.
func New(defaults models.SessionDefaults) *Form {
	f := &Form{touched: map[FieldID]bool{}, now: time.Now}
	f.rec = defaultRecord(f.now())
	f.rec.Issuer = defaults.Issuer
	f.rec.PaymentInstructions = defaults.PaymentInstructions
	return f
}

func defaultRecord(now time.Time) models.InvoiceRecord {
	return models.InvoiceRecord{
		Metadata: models.Metadata{
			InvoiceNumber: newInvoiceNumber(now),
			IssueDate:     now.Format("2006-01-02"),
			DueDate:       now.AddDate(0, 0, 14).Format("2006-01-02"),
		},
	}
}

func newInvoiceNumber(now time.Time) string {
	return "INV-" + now.Format("20060102") + "-" + uuid.NewString()[:6]
}

// Record returns a copy of the current record; the form stays the single
// owner of the mutable state.
func (f *Form) Record() models.InvoiceRecord {
	rec := f.rec
	rec.LineItems = append([]models.LineItem(nil), f.rec.LineItems...)
	return rec
}

// Totals recomputes the derived money figures from the committed values.
// Safe to call on every edit.
func (f *Form) Totals() models.Totals {
	return services.ComputeTotals(f.rec.LineItems, f.rec.Discount, f.rec.TaxRate)
}

// Touch marks a field as visited (blur) without changing its value.
func (f *Form) Touch(field FieldID) { f.touched[field] = true }

func (f *Form) touch(field FieldID) { f.touched[field] = true }

// Issuer setters

func (f *Form) SetIssuerName(v string) { f.rec.Issuer.Name = v; f.touch(FieldIssuerName) }

func (f *Form) SetIssuerAddressLine(v string) {
	f.rec.Issuer.AddressLine = v
	f.touch(FieldIssuerAddressLine)
}

func (f *Form) SetIssuerLocalityLine(v string) {
	f.rec.Issuer.LocalityLine = v
	f.touch(FieldIssuerLocalityLine)
}

func (f *Form) SetIssuerPhone(v string) { f.rec.Issuer.Phone = v; f.touch(FieldIssuerPhone) }

func (f *Form) SetIssuerEmail(v string) { f.rec.Issuer.Email = v; f.touch(FieldIssuerEmail) }

func (f *Form) SetIssuerTaxID(v string) { f.rec.Issuer.TaxID = v; f.touch(FieldIssuerTaxID) }

// Client setters

func (f *Form) SetClientName(v string) { f.rec.Client.Name = v; f.touch(FieldClientName) }

func (f *Form) SetClientAddressLine(v string) {
	f.rec.Client.AddressLine = v
	f.touch(FieldClientAddressLine)
}

func (f *Form) SetClientLocalityLine(v string) {
	f.rec.Client.LocalityLine = v
	f.touch(FieldClientLocalityLine)
}

func (f *Form) SetClientEmail(v string) { f.rec.Client.Email = v; f.touch(FieldClientEmail) }

// Metadata setters

func (f *Form) SetInvoiceNumber(v string) {
	f.rec.Metadata.InvoiceNumber = v
	f.touch(FieldInvoiceNumber)
}

func (f *Form) SetIssueDate(v string) { f.rec.Metadata.IssueDate = v; f.touch(FieldIssueDate) }

func (f *Form) SetDueDate(v string) { f.rec.Metadata.DueDate = v; f.touch(FieldDueDate) }

func (f *Form) SetTerms(v string) { f.rec.Metadata.Terms = v; f.touch(FieldTerms) }

func (f *Form) SetReference(v string) { f.rec.Metadata.Reference = v; f.touch(FieldReference) }

// Free-text and money setters

func (f *Form) SetNotes(v string) { f.rec.Notes = v; f.touch(FieldNotes) }

func (f *Form) SetPaymentInstructions(v string) {
	f.rec.PaymentInstructions = v
	f.touch(FieldPaymentInstructions)
}

func (f *Form) SetTaxRate(v float64) { f.rec.TaxRate = v; f.touch(FieldTaxRate) }

func (f *Form) SetDiscount(v float64) { f.rec.Discount = v; f.touch(FieldDiscount) }

// Line item operations

// AddLineItem appends a fresh row and returns its index.
func (f *Form) AddLineItem() int {
	f.rec.LineItems = append(f.rec.LineItems, models.LineItem{Quantity: 1})
	return len(f.rec.LineItems) - 1
}

// RemoveLineItem deletes the row at index, preserving the order of the
// remaining rows. An out-of-range index is a no-op. Touched flags for rows
// above the removed one shift down with their row.
func (f *Form) RemoveLineItem(index int) {
	if index < 0 || index >= len(f.rec.LineItems) {
		return
	}
	f.rec.LineItems = append(f.rec.LineItems[:index], f.rec.LineItems[index+1:]...)
	f.reindexItemTouched(index)
}

func (f *Form) reindexItemTouched(removed int) {
	next := make(map[FieldID]bool, len(f.touched))
	for field, on := range f.touched {
		idx, col, ok := parseItemField(field)
		if !ok {
			next[field] = on
			continue
		}
		switch {
		case idx == removed:
			// flags die with the row
		case idx > removed:
			next[ItemField(idx-1, col)] = on
		default:
			next[field] = on
		}
	}
	f.touched = next
}

func (f *Form) SetItemDescription(index int, v string) {
	if index < 0 || index >= len(f.rec.LineItems) {
		return
	}
	f.rec.LineItems[index].Description = v
	f.touch(ItemField(index, ItemDescription))
}

func (f *Form) SetItemQuantity(index int, v float64) {
	if index < 0 || index >= len(f.rec.LineItems) {
		return
	}
	f.rec.LineItems[index].Quantity = v
	f.touch(ItemField(index, ItemQuantity))
}

// SetItemUnitRate writes only the unit rate. The quantity of the row is
// never involved here.
func (f *Form) SetItemUnitRate(index int, v float64) {
	if index < 0 || index >= len(f.rec.LineItems) {
		return
	}
	f.rec.LineItems[index].UnitRate = v
	f.touch(ItemField(index, ItemUnitRate))
}

// Reset replaces the record with a fresh default one while keeping the
// issuer and payment instructions exactly as they were. All touched flags
// clear; the fresh record carries a new invoice number and dates.
func (f *Form) Reset() {
	issuer := f.rec.Issuer
	payment := f.rec.PaymentInstructions
	f.rec = defaultRecord(f.now())
	f.rec.Issuer = issuer
	f.rec.PaymentInstructions = payment
	f.touched = map[FieldID]bool{}
}
