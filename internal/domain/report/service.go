package report

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"profitline/pkg/logger"
)

var tracer = otel.Tracer("profitline/report")

// Service orchestrates a report run: fetch the four collections, run the
// engine, and cache the result. The engine itself stays pure; everything
// context-dependent lives here.
type Service struct {
	repo  Repository
	cache Cache
}

// NewService creates a new report service. A nil cache disables caching.
func NewService(repo Repository, cache Cache) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Service{repo: repo, cache: cache}
}

// ProfitLoss generates the periodized profit & loss report.
// A nil reference defaults to the current time.
func (s *Service) ProfitLoss(ctx context.Context, g Granularity, at *time.Time) (*Report, error) {
	ref := time.Now()
	if at != nil {
		ref = *at
	}

	windows := Windows(g, ref)
	from := windows[0].Start
	to := windows[len(windows)-1].End

	ctx, span := tracer.Start(ctx, "report.profit_loss",
		trace.WithAttributes(
			attribute.String("report.granularity", string(g)),
			attribute.String("report.from", from.Format(time.RFC3339)),
			attribute.String("report.to", to.Format(time.RFC3339)),
		),
	)
	defer span.End()

	key := cacheKey(g, windows[len(windows)-1].Start)
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		logger.Warn(ctx, "report cache get failed", "key", key, "error", err)
	} else if ok {
		span.SetAttributes(attribute.Bool("report.cache_hit", true))
		return cached, nil
	}

	in, err := s.fetch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rep, err := Generate(in, g, ref)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, rep, cacheTTL(g)); err != nil {
		logger.Warn(ctx, "report cache set failed", "key", key, "error", err)
	}

	logger.Info(ctx, "profit loss report generated",
		"granularity", g,
		"periods", len(rep.Periods),
		"orders", rep.Summary.TotalOrders,
		"returns", rep.Summary.TotalReturns,
	)
	return rep, nil
}

// fetch materializes the four collections bounded to the report span.
// The catalog snapshot is always fetched whole.
func (s *Service) fetch(ctx context.Context, from, to time.Time) (Input, error) {
	ctx, span := tracer.Start(ctx, "report.fetch")
	defer span.End()

	var in Input
	var err error

	if in.Catalog, err = s.repo.Catalog(ctx); err != nil {
		return Input{}, fmt.Errorf("fetch catalog: %w", err)
	}
	if in.Orders, err = s.repo.Orders(ctx, from, to); err != nil {
		return Input{}, fmt.Errorf("fetch orders: %w", err)
	}
	if in.Returns, err = s.repo.Returns(ctx, from, to); err != nil {
		return Input{}, fmt.Errorf("fetch returns: %w", err)
	}
	if in.Ledger, err = s.repo.LedgerTransactions(ctx, from, to); err != nil {
		return Input{}, fmt.Errorf("fetch ledger transactions: %w", err)
	}

	span.SetAttributes(
		attribute.Int("report.catalog_items", len(in.Catalog)),
		attribute.Int("report.orders", len(in.Orders)),
		attribute.Int("report.returns", len(in.Returns)),
		attribute.Int("report.ledger_transactions", len(in.Ledger)),
	)
	return in, nil
}

// cacheKey pins a cached report to its newest window anchor, so a new hour,
// day, month, or year naturally rolls the key over.
func cacheKey(g Granularity, anchor time.Time) string {
	return fmt.Sprintf("report:pl:%s:%d", g, anchor.Unix())
}

func cacheTTL(g Granularity) time.Duration {
	switch g {
	case GranularityHourly:
		return 5 * time.Minute
	case GranularityDaily:
		return 15 * time.Minute
	default:
		return time.Hour
	}
}
