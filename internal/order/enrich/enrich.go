package enrich

import (
	"context"

	obsmetrics "github.com/smallbiznis/quickstep/internal/observability/metrics"
	"github.com/smallbiznis/quickstep/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("order.enrich",
	fx.Provide(NewFetcher),
	fx.Provide(NewEnricher),
)

type EnricherParams struct {
	fx.In

	Fetcher *Fetcher
	Log     *zap.Logger
	Metrics *obsmetrics.Metrics `optional:"true"`
}

// Enricher turns stored orders into views using one batched fetch per call.
type Enricher struct {
	fetcher *Fetcher
	log     *zap.Logger
	metrics *obsmetrics.Metrics
}

func NewEnricher(p EnricherParams) *Enricher {
	return &Enricher{
		fetcher: p.Fetcher,
		log:     p.Log.Named("order.enrich"),
		metrics: p.Metrics,
	}
}

// Enrich resolves orders for the named operation. An empty batch returns an
// empty result without touching storage.
func (e *Enricher) Enrich(ctx context.Context, operation string, orders []domain.Order) ([]domain.View, error) {
	if len(orders) == 0 {
		return []domain.View{}, nil
	}

	details, err := e.fetcher.Fetch(ctx, CollectReferencedIDs(orders))
	if err != nil {
		return nil, err
	}

	views := AssembleAll(orders, details)

	staleProducts, staleOwners := countStale(orders, views)
	if staleProducts > 0 || staleOwners > 0 {
		e.log.Debug("dropped stale order references",
			zap.String("operation", operation),
			zap.Int("products", staleProducts),
			zap.Int("owners", staleOwners),
		)
	}
	e.metrics.RecordStaleReferences(ctx, "product", staleProducts)
	e.metrics.RecordStaleReferences(ctx, "owner", staleOwners)
	e.metrics.RecordOrdersEnriched(ctx, operation, len(views))

	return views, nil
}

func countStale(orders []domain.Order, views []domain.View) (products, owners int) {
	for i, o := range orders {
		products += len(o.ProductIDs) - len(views[i].Products)
		if o.OwnerID != 0 && views[i].Owner == nil {
			owners++
		}
	}
	return products, owners
}
