package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"profitline/internal/core/id"
	"profitline/internal/core/types"
	"profitline/internal/domain/catalog"
)

func TestSummarize_Totals(t *testing.T) {
	periods := []PeriodResult{
		{
			TotalProfit: types.MustMoney("80.00"),
			TotalLoss:   types.MustMoney("0.00"),
			NetRevenue:  types.MustMoney("100.00"),
			OrderCount:  3,
			ReturnCount: 1,
		},
		{
			TotalProfit: types.MustMoney("0.00"),
			TotalLoss:   types.MustMoney("30.00"),
			NetRevenue:  types.MustMoney("100.00"),
			OrderCount:  1,
			ReturnCount: 1,
		},
	}

	s := Summarize(periods, nil)

	assert.Equal(t, "80.00", s.TotalProfit.StringFixed(2))
	assert.Equal(t, "30.00", s.TotalLoss.StringFixed(2))
	assert.Equal(t, "50.00", s.NetProfit.StringFixed(2))
	assert.Equal(t, "200.00", s.TotalRevenue.StringFixed(2))
	// 50 / 200 * 100
	assert.Equal(t, "25.00", s.ProfitMargin.StringFixed(2))
	assert.Equal(t, 4, s.TotalOrders)
	assert.Equal(t, 2, s.TotalReturns)
	// 2 / 4 * 100
	assert.Equal(t, "50.00", s.ReturnRate.StringFixed(2))
}

func TestSummarize_MarginGuard(t *testing.T) {
	periods := []PeriodResult{{
		TotalProfit: types.MustMoney("100.00"),
		NetRevenue:  types.Zero(),
	}}

	s := Summarize(periods, nil)
	assert.True(t, s.ProfitMargin.IsZero(), "margin must be zero without revenue")
}

func TestSummarize_ReturnRateGuard(t *testing.T) {
	s := Summarize([]PeriodResult{{ReturnCount: 2}}, nil)
	assert.True(t, s.ReturnRate.IsZero(), "return rate must be zero without orders")
}

func TestSummarize_InventoryValuation(t *testing.T) {
	cost := types.MustMoney("12.50")
	items := []catalog.Item{
		{ID: id.New(), SKU: "A", Name: "Priced", UnitCost: &cost, StockQuantity: 4},
		{ID: id.New(), SKU: "B", Name: "Unpriced", UnitCost: nil, StockQuantity: 100},
	}

	s := Summarize(nil, items)
	assert.Equal(t, "50.00", s.InventoryValuation.StringFixed(2), "unset cost counts as zero")
}
