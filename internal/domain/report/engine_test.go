package report

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profitline/internal/core/apperror"
	"profitline/internal/core/id"
	"profitline/internal/core/types"
	"profitline/internal/domain/ledger"
	"profitline/internal/domain/sales"
)

// Scenario D: empty input yields all-zero periods and a guarded summary.
func TestGenerate_EmptyInput(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	rep, err := Generate(Input{}, GranularityDaily, ref)
	require.NoError(t, err)
	require.Len(t, rep.Periods, 30)

	for _, p := range rep.Periods {
		assert.True(t, p.TotalProfit.IsZero())
		assert.True(t, p.TotalLoss.IsZero())
		assert.True(t, p.NetRevenue.IsZero())
		assert.True(t, p.NetCost.IsZero())
		assert.Zero(t, p.OrderCount)
		assert.Zero(t, p.ReturnCount)
	}

	assert.True(t, rep.Summary.ProfitMargin.IsZero())
	assert.True(t, rep.Summary.ReturnRate.IsZero())
	assert.True(t, rep.Summary.NetProfit.IsZero())
}

func TestGenerate_Idempotent(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	in := spreadInput(t, ref)

	first, err := Generate(in, GranularityDaily, ref)
	require.NoError(t, err)
	second, err := Generate(in, GranularityDaily, ref)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "identical inputs must yield byte-identical output")
}

// Every record whose instant lies inside the report span lands in exactly
// one window: counts sum up, nothing doubles, nothing drops.
func TestGenerate_PartitionsRecordsExactlyOnce(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, g := range []Granularity{GranularityHourly, GranularityDaily, GranularityMonthly, GranularityYearly} {
		in := spreadInput(t, ref)
		rep, err := Generate(in, g, ref)
		require.NoError(t, err)

		windows := Windows(g, ref)
		spanStart, spanEnd := windows[0].Start, windows[len(windows)-1].End

		wantOrders := 0
		for _, o := range in.Orders {
			if !o.CreatedAt.Before(spanStart) && o.CreatedAt.Before(spanEnd) {
				wantOrders++
			}
		}
		wantReturns := 0
		for _, r := range in.Returns {
			if !r.CreatedAt.Before(spanStart) && r.CreatedAt.Before(spanEnd) {
				wantReturns++
			}
		}

		gotOrders, gotReturns := 0, 0
		for _, p := range rep.Periods {
			gotOrders += p.OrderCount
			gotReturns += p.ReturnCount
		}
		assert.Equal(t, wantOrders, gotOrders, "granularity %s", g)
		assert.Equal(t, wantReturns, gotReturns, "granularity %s", g)
	}
}

func TestGenerate_PostRoundingInvariants(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	in := spreadInput(t, ref)

	rep, err := Generate(in, GranularityDaily, ref)
	require.NoError(t, err)

	for _, p := range rep.Periods {
		assert.True(t, p.TotalProfit.Equal(p.PurchaseProfit.Add(p.SalesProfit)))
		assert.True(t, p.TotalLoss.Equal(p.PurchaseLoss.Add(p.SalesLoss)))

		salesBoth := !p.SalesProfit.IsZero() && !p.SalesLoss.IsZero()
		assert.False(t, salesBoth, "sales profit and loss are mutually exclusive")
		purchaseBoth := !p.PurchaseProfit.IsZero() && !p.PurchaseLoss.IsZero()
		assert.False(t, purchaseBoth, "purchase profit and loss are mutually exclusive")
	}
}

func TestGenerate_RejectsZeroInstant(t *testing.T) {
	ref := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	in := Input{
		Orders: []sales.Order{{ID: id.New(), Total: types.MustMoney("10.00")}},
	}

	_, err := Generate(in, GranularityDaily, ref)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodePrecondition, appErr.Code)
}

// spreadInput builds a deterministic snapshot with records scattered across
// hours, days, months, and at exact window boundaries.
func spreadInput(t *testing.T, ref time.Time) Input {
	t.Helper()

	var in Input
	offsets := []time.Duration{
		0,
		-30 * time.Minute,
		-time.Hour,
		-25 * time.Hour,
		-72 * time.Hour,
	}
	for i, off := range offsets {
		in.Orders = append(in.Orders, sales.Order{
			ID:        id.MustParse(deterministicUUID(i)),
			CreatedAt: ref.Add(off),
			Total:     types.MustMoney("100.00"),
		})
	}
	// Records on exact day boundaries and far in the past.
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	in.Orders = append(in.Orders,
		sales.Order{ID: id.MustParse(deterministicUUID(10)), CreatedAt: dayStart, Total: types.MustMoney("50.00")},
		sales.Order{ID: id.MustParse(deterministicUUID(11)), CreatedAt: ref.AddDate(-2, 0, 0), Total: types.MustMoney("50.00")},
	)

	refund := types.MustMoney("40.00")
	in.Returns = append(in.Returns,
		sales.Return{ID: id.MustParse(deterministicUUID(20)), CreatedAt: ref.Add(-2 * time.Hour), Refund: &refund},
		sales.Return{ID: id.MustParse(deterministicUUID(21)), CreatedAt: dayStart.AddDate(0, 0, -10)},
	)

	in.Ledger = append(in.Ledger,
		ledger.Transaction{ID: id.MustParse(deterministicUUID(30)), OccurredAt: ref.Add(-4 * time.Hour), Category: ledger.CategoryPurchase, Profit: types.MustMoney("15.00")},
		ledger.Transaction{ID: id.MustParse(deterministicUUID(31)), OccurredAt: dayStart.AddDate(0, 0, -5), Category: ledger.CategoryPurchase, Profit: types.MustMoney("-7.50")},
	)

	return in
}

func deterministicUUID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}
