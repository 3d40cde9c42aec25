package form

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldID identifies one editable leaf of the record for touched/status
// bookkeeping. Mutation itself goes through the typed setters on Form.
type FieldID string

const (
	FieldIssuerName          FieldID = "issuer.name"
	FieldIssuerAddressLine   FieldID = "issuer.address_line"
	FieldIssuerLocalityLine  FieldID = "issuer.locality_line"
	FieldIssuerPhone         FieldID = "issuer.phone"
	FieldIssuerEmail         FieldID = "issuer.email"
	FieldIssuerTaxID         FieldID = "issuer.tax_id"
	FieldClientName          FieldID = "client.name"
	FieldClientAddressLine   FieldID = "client.address_line"
	FieldClientLocalityLine  FieldID = "client.locality_line"
	FieldClientEmail         FieldID = "client.email"
	FieldInvoiceNumber       FieldID = "metadata.invoice_number"
	FieldIssueDate           FieldID = "metadata.issue_date"
	FieldDueDate             FieldID = "metadata.due_date"
	FieldTerms               FieldID = "metadata.terms"
	FieldReference           FieldID = "metadata.reference"
	FieldNotes               FieldID = "notes"
	FieldPaymentInstructions FieldID = "payment_instructions"
	FieldTaxRate             FieldID = "tax_rate"
	FieldDiscount            FieldID = "discount"

	// FieldLineItems carries the collection-level rule (at least one row).
	FieldLineItems FieldID = "line_items"
)

type ItemColumn string

const (
	ItemDescription ItemColumn = "description"
	ItemQuantity    ItemColumn = "quantity"
	ItemUnitRate    ItemColumn = "unit_rate"
)

// ItemField addresses one cell of the line-item grid.
func ItemField(index int, col ItemColumn) FieldID {
	return FieldID(fmt.Sprintf("line_items[%d].%s", index, col))
}

const itemFieldPrefix = "line_items["

func parseItemField(field FieldID) (index int, col ItemColumn, ok bool) {
	s := string(field)
	if !strings.HasPrefix(s, itemFieldPrefix) {
		return 0, "", false
	}
	end := strings.IndexByte(s, ']')
	if end < 0 || end+1 >= len(s) || s[end+1] != '.' {
		return 0, "", false
	}
	idx, err := strconv.Atoi(s[len(itemFieldPrefix):end])
	if err != nil {
		return 0, "", false
	}
	return idx, ItemColumn(s[end+2:]), true
}

// Status is the tri-state validation view of one field.
type Status int

const (
	Untouched Status = iota
	Valid
	Invalid
)
