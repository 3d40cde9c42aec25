package services

import (
	"math"

	"github.com/diewo77/invoice-studio/internal/models"
)

// ComputeTotals derives all invoice totals from scratch on every call.
// Discount applies to the subtotal before tax: tax is owed on the
// post-discount balance, and the balance never goes below zero.
func ComputeTotals(items []models.LineItem, discount, taxRate float64) models.Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Amount()
	}
	after := subtotal - finiteOrZero(discount)
	if after < 0 {
		after = 0
	}
	tax := after * finiteOrZero(taxRate)
	return models.Totals{
		Subtotal:      subtotal,
		AfterDiscount: after,
		Tax:           tax,
		Total:         after + tax,
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
