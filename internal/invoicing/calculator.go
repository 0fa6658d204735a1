package invoicing

import (
	"github.com/shopspring/decimal"

	"github.com/avant-dev/usersvc/internal/domain/invoice"
)

// TaxCalculator applies a flat tax rate to the raw amount. Discounts or
// per-line tax rules would slot in here without touching rendering or
// delivery.
type TaxCalculator struct {
	Rate decimal.Decimal
}

// NewTaxCalculator builds a calculator at the default 10% rate.
func NewTaxCalculator() Calculator {
	return &TaxCalculator{Rate: decimal.NewFromFloat(0.10)}
}

func (c *TaxCalculator) Calculate(inv invoice.Invoice) invoice.Invoice {
	out := inv
	out.Amount = inv.Amount.Add(inv.Amount.Mul(c.Rate)).Round(2)
	return out
}
