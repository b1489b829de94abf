package closure

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// CashBreakdown splits a gross cash amount into its tax, commission and
// provider shares.
type CashBreakdown struct {
	PriceBase        decimal.Decimal
	TaxAmount        decimal.Decimal
	CommissionAmount decimal.Decimal
	ProviderAmount   decimal.Decimal
}

// ComputeCashBreakdown derives the financial postings for a gross
// (tax-inclusive) amount. Rounding happens per step, not once at the end, so
// the parts always sum back to the rounded intermediates:
//
//	priceBase  = amount / (1 + taxRate/100)
//	tax        = amount - priceBase
//	commission = priceBase * commissionRate/100
//	provider   = priceBase - commission
func ComputeCashBreakdown(amount decimal.Decimal, s CashSettings) CashBreakdown {
	priceBase := amount.Div(one.Add(s.TaxRate.Div(hundred))).Round(2)
	tax := amount.Sub(priceBase)
	commission := priceBase.Mul(s.CommissionRate.Div(hundred)).Round(2)
	provider := priceBase.Sub(commission)

	return CashBreakdown{
		PriceBase:        priceBase,
		TaxAmount:        tax,
		CommissionAmount: commission,
		ProviderAmount:   provider,
	}
}
