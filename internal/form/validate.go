package form

import (
	"github.com/diewo77/invoice-studio/internal/validation"
)

// Violations evaluates every rule against the current record, regardless of
// touched state. Touched gating happens in Status and FieldError.
func (f *Form) Violations() validation.Violations {
	v := validation.Violations{}
	rec := f.rec

	validation.Required(string(FieldIssuerName), rec.Issuer.Name, v)
	validation.Required(string(FieldIssuerAddressLine), rec.Issuer.AddressLine, v)
	validation.Required(string(FieldIssuerLocalityLine), rec.Issuer.LocalityLine, v)
	validation.Required(string(FieldIssuerPhone), rec.Issuer.Phone, v)
	validation.Required(string(FieldIssuerEmail), rec.Issuer.Email, v)
	validation.OptionalEmail(string(FieldIssuerEmail), rec.Issuer.Email, v)
	// issuer tax id: optional, no shape check

	validation.Required(string(FieldClientName), rec.Client.Name, v)
	validation.Required(string(FieldClientAddressLine), rec.Client.AddressLine, v)
	validation.Required(string(FieldClientLocalityLine), rec.Client.LocalityLine, v)
	validation.OptionalEmail(string(FieldClientEmail), rec.Client.Email, v)

	validation.Required(string(FieldInvoiceNumber), rec.Metadata.InvoiceNumber, v)
	validation.Required(string(FieldIssueDate), rec.Metadata.IssueDate, v)
	validation.Required(string(FieldDueDate), rec.Metadata.DueDate, v)
	validation.Required(string(FieldTerms), rec.Metadata.Terms, v)
	// metadata reference: optional

	if len(rec.LineItems) == 0 {
		v[string(FieldLineItems)] = "at_least_one_item"
	}
	for i, it := range rec.LineItems {
		validation.Required(string(ItemField(i, ItemDescription)), it.Description, v)
		validation.NonNegative(string(ItemField(i, ItemQuantity)), it.Quantity, v)
		validation.NonNegative(string(ItemField(i, ItemUnitRate)), it.UnitRate, v)
	}

	validation.NonNegative(string(FieldTaxRate), rec.TaxRate, v)
	validation.NonNegative(string(FieldDiscount), rec.Discount, v)
	return v
}

// Valid reports whether the whole record passes every rule, touched or not.
func (f *Form) Valid() bool { return f.Violations().Empty() }

// Status is the tri-state view of one field: untouched fields report
// Untouched even when their current value breaks a rule.
func (f *Form) Status(field FieldID) Status {
	if !f.touched[field] {
		return Untouched
	}
	if _, bad := f.Violations()[string(field)]; bad {
		return Invalid
	}
	return Valid
}

// FieldError returns the inline message for a field once it has been
// touched. Untouched fields never surface errors.
func (f *Form) FieldError(field FieldID) (string, bool) {
	if !f.touched[field] {
		return "", false
	}
	msg, ok := f.Violations()[string(field)]
	return msg, ok
}
