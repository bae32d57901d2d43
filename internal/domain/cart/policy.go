package cart

// DefaultTaxRate is the process-wide tax rate applied at checkout.
const DefaultTaxRate = 0.21

// Totals is derived from the current lines on every read and never stored.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// PricePolicy converts cart lines into totals at a fixed tax rate.
// It performs no rounding; two-decimal formatting is a presentation concern.
type PricePolicy struct {
	TaxRate float64
}

// NewPricePolicy returns a policy at the given rate.
func NewPricePolicy(taxRate float64) PricePolicy {
	return PricePolicy{TaxRate: taxRate}
}

// ComputeTotals sums the line prices and applies the tax rate.
// An empty cart yields zero totals.
func (p PricePolicy) ComputeTotals(lines []Line) Totals {
	subtotal := Subtotal(lines)
	tax := subtotal * p.TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// Subtotal is the sum of line prices, shown in the mini-cart panel.
func Subtotal(lines []Line) float64 {
	var sum float64
	for i := range lines {
		sum += lines[i].Price
	}
	return sum
}
