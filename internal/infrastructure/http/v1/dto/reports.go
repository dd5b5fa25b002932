// Package dto defines request/response shapes for the HTTP API.
package dto

import (
	"time"

	"profitline/internal/core/types"
	"profitline/internal/domain/report"
)

// ProfitLossRequest is the query for GET /reports/profit-loss.
type ProfitLossRequest struct {
	Granularity string `form:"granularity" binding:"required"`

	// At is an optional RFC3339 reference instant; defaults to now.
	At string `form:"at"`
}

// TimeWindowResponse is a report window.
type TimeWindowResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// PeriodResultResponse is one window's profit/loss breakdown.
// Monetary amounts are fixed two-decimal strings.
type PeriodResultResponse struct {
	Window TimeWindowResponse `json:"window"`

	PurchaseProfit string `json:"purchaseProfit"`
	PurchaseLoss   string `json:"purchaseLoss"`
	SalesProfit    string `json:"salesProfit"`
	SalesLoss      string `json:"salesLoss"`
	TotalProfit    string `json:"totalProfit"`
	TotalLoss      string `json:"totalLoss"`
	NetRevenue     string `json:"netRevenue"`
	NetCost        string `json:"netCost"`

	OrderCount  int `json:"orderCount"`
	ReturnCount int `json:"returnCount"`
}

// SummaryResponse is the report rollup.
type SummaryResponse struct {
	TotalProfit        string `json:"totalProfit"`
	TotalLoss          string `json:"totalLoss"`
	NetProfit          string `json:"netProfit"`
	TotalRevenue       string `json:"totalRevenue"`
	ProfitMargin       string `json:"profitMargin"`
	InventoryValuation string `json:"inventoryValuation"`
	TotalOrders        int    `json:"totalOrders"`
	TotalReturns       int    `json:"totalReturns"`
	ReturnRate         string `json:"returnRate"`
}

// ProfitLossResponse is the full report payload.
type ProfitLossResponse struct {
	Granularity string                 `json:"granularity"`
	Reference   time.Time              `json:"reference"`
	Periods     []PeriodResultResponse `json:"periods"`
	Summary     SummaryResponse        `json:"summary"`
}

// FromReport maps a domain report to its response shape, applying display
// rounding to the full-precision summary figures.
func FromReport(r *report.Report) ProfitLossResponse {
	periods := make([]PeriodResultResponse, len(r.Periods))
	for i, p := range r.Periods {
		periods[i] = PeriodResultResponse{
			Window: TimeWindowResponse{
				Start: p.Window.Start,
				End:   p.Window.End,
				Label: p.Window.Label,
			},
			PurchaseProfit: money(p.PurchaseProfit),
			PurchaseLoss:   money(p.PurchaseLoss),
			SalesProfit:    money(p.SalesProfit),
			SalesLoss:      money(p.SalesLoss),
			TotalProfit:    money(p.TotalProfit),
			TotalLoss:      money(p.TotalLoss),
			NetRevenue:     money(p.NetRevenue),
			NetCost:        money(p.NetCost),
			OrderCount:     p.OrderCount,
			ReturnCount:    p.ReturnCount,
		}
	}

	return ProfitLossResponse{
		Granularity: string(r.Granularity),
		Reference:   r.Reference,
		Periods:     periods,
		Summary: SummaryResponse{
			TotalProfit:        money(r.Summary.TotalProfit),
			TotalLoss:          money(r.Summary.TotalLoss),
			NetProfit:          money(r.Summary.NetProfit),
			TotalRevenue:       money(r.Summary.TotalRevenue),
			ProfitMargin:       money(r.Summary.ProfitMargin),
			InventoryValuation: money(r.Summary.InventoryValuation),
			TotalOrders:        r.Summary.TotalOrders,
			TotalReturns:       r.Summary.TotalReturns,
			ReturnRate:         money(r.Summary.ReturnRate),
		},
	}
}

func money(m types.Money) string {
	return m.StringFixed(types.MoneyScale)
}
