package models

import "math"

// Invoicing record types. The record lives for one session only; the store
// package persists the SessionDefaults subset between sessions.

// Party identifies one side of the invoice. The issuer fills phone and tax id;
// clients usually leave them empty.
type Party struct {
	Name         string `json:"name"`
	AddressLine  string `json:"address_line"`
	LocalityLine string `json:"locality_line"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

type Metadata struct {
	InvoiceNumber string `json:"invoice_number"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	Terms         string `json:"terms"`
	Reference     string `json:"reference,omitempty"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitRate    float64 `json:"unit_rate"`
}

// Amount is the derived row total. Non-finite quantity or rate counts as
// zero, matching the totals computation.
func (it LineItem) Amount() float64 {
	q, r := it.Quantity, it.UnitRate
	if math.IsNaN(q) || math.IsInf(q, 0) {
		q = 0
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		r = 0
	}
	return q * r
}

type InvoiceRecord struct {
	Issuer              Party      `json:"issuer"`
	Client              Party      `json:"client"`
	Metadata            Metadata   `json:"metadata"`
	LineItems           []LineItem `json:"line_items"`
	Notes               string     `json:"notes"`
	PaymentInstructions string     `json:"payment_instructions"`
	TaxRate             float64    `json:"tax_rate"`
	Discount            float64    `json:"discount"`
}

// Totals are always derived, never stored.
type Totals struct {
	Subtotal      float64
	AfterDiscount float64
	Tax           float64
	Total         float64
}

// SessionDefaults is the only data surviving beyond one session.
type SessionDefaults struct {
	Issuer              Party  `json:"issuer"`
	PaymentInstructions string `json:"payment_instructions"`
}
