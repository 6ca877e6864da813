// Package pricing computes order and invoice money amounts.
package pricing

import "math"

// TaxRate is the Massachusetts sales tax applied to admin-created orders
// and invoices.
const TaxRate = 0.0625

type Line struct {
	Quantity  int
	UnitPrice float64
}

// RoundCents rounds half-up to two decimal places. Applied uniformly
// wherever a money amount is computed.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal sums quantity times unit price over the lines. Inputs are not
// validated; a negative quantity passes through as-is.
func Subtotal(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += float64(l.Quantity) * l.UnitPrice
	}
	return RoundCents(sum)
}

// Totals returns the subtotal, tax at TaxRate, and their sum, each rounded
// to cents.
func Totals(lines []Line) (subtotal, tax, total float64) {
	subtotal = Subtotal(lines)
	tax = RoundCents(subtotal * TaxRate)
	total = RoundCents(subtotal + tax)
	return subtotal, tax, total
}

// LoyaltyPoints awards one point per whole dollar of an order total.
func LoyaltyPoints(total float64) int {
	if total < 0 {
		return 0
	}
	return int(math.Floor(total))
}
