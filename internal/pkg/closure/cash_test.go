package closure

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCashBreakdownEvenAmount(t *testing.T) {
	b := ComputeCashBreakdown(decimal.NewFromInt(119000), DefaultCashSettings())

	assert.True(t, b.PriceBase.Equal(decimal.NewFromInt(100000)), "price base = %s", b.PriceBase)
	assert.True(t, b.TaxAmount.Equal(decimal.NewFromInt(19000)), "tax = %s", b.TaxAmount)
	assert.True(t, b.CommissionAmount.Equal(decimal.NewFromInt(15000)), "commission = %s", b.CommissionAmount)
	assert.True(t, b.ProviderAmount.Equal(decimal.NewFromInt(85000)), "provider = %s", b.ProviderAmount)
}

func TestComputeCashBreakdownRoundsPerStep(t *testing.T) {
	// 10990 / 1.19 = 9235.2941..., rounded to 9235.29 before the commission
	// is taken, not at the end.
	b := ComputeCashBreakdown(decimal.NewFromInt(10990), DefaultCashSettings())

	assert.True(t, b.PriceBase.Equal(decimal.RequireFromString("9235.29")), "price base = %s", b.PriceBase)
	assert.True(t, b.TaxAmount.Equal(decimal.RequireFromString("1754.71")), "tax = %s", b.TaxAmount)
	assert.True(t, b.CommissionAmount.Equal(decimal.RequireFromString("1385.29")), "commission = %s", b.CommissionAmount)
	assert.True(t, b.ProviderAmount.Equal(decimal.RequireFromString("7850.00")), "provider = %s", b.ProviderAmount)
}

func TestComputeCashBreakdownPartsSum(t *testing.T) {
	settings := DefaultCashSettings()
	for _, amount := range []int64{1000, 35990, 119000, 149999} {
		b := ComputeCashBreakdown(decimal.NewFromInt(amount), settings)

		require.True(t, b.PriceBase.Add(b.TaxAmount).Equal(decimal.NewFromInt(amount)),
			"base+tax != amount for %d", amount)
		require.True(t, b.CommissionAmount.Add(b.ProviderAmount).Equal(b.PriceBase),
			"commission+provider != base for %d", amount)
	}
}
