package report

import (
	"time"

	"profitline/internal/core/apperror"
)

// Generate runs one complete report over a materialized snapshot.
//
// Pure and deterministic: identical inputs always yield identical output,
// including ordering and labels. The only failure mode is the input
// precondition that every order, return, and ledger transaction carries a
// valid instant; a zero instant is a caller contract violation and is
// surfaced rather than silently skipped, to avoid under-counting a period.
func Generate(in Input, g Granularity, ref time.Time) (*Report, error) {
	if err := checkInstants(in); err != nil {
		return nil, err
	}

	costs := BuildCostBasisIndex(in.Catalog)
	windows := Windows(g, ref)

	periods := make([]PeriodResult, len(windows))
	for i, w := range windows {
		periods[i] = aggregateWindow(w, in, costs)
	}

	return &Report{
		Granularity: g,
		Reference:   ref,
		Periods:     periods,
		Summary:     Summarize(periods, in.Catalog),
	}, nil
}

// checkInstants enforces the data-layer contract that every timestamped
// record carries a valid instant.
func checkInstants(in Input) error {
	for _, order := range in.Orders {
		if order.CreatedAt.IsZero() {
			return apperror.NewPrecondition("sales order has no creation instant").
				WithDetail("orderId", order.ID)
		}
	}
	for _, ret := range in.Returns {
		if ret.CreatedAt.IsZero() {
			return apperror.NewPrecondition("return has no creation instant").
				WithDetail("returnId", ret.ID)
		}
	}
	for _, tx := range in.Ledger {
		if tx.OccurredAt.IsZero() {
			return apperror.NewPrecondition("ledger transaction has no instant").
				WithDetail("transactionId", tx.ID)
		}
	}
	return nil
}
