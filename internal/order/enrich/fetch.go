package enrich

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/smallbiznis/quickstep/internal/config"
	obsmetrics "github.com/smallbiznis/quickstep/internal/observability/metrics"
	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ProductSource loads products by id. Unknown ids are skipped.
type ProductSource interface {
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]productdomain.Product, error)
}

// OwnerSource loads users by id. Unknown ids are skipped.
type OwnerSource interface {
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]userdomain.User, error)
}

// Details holds the rows fetched for one batch.
type Details struct {
	Products []productdomain.Product
	Owners   []userdomain.User
}

type FetcherParams struct {
	fx.In

	DB          *gorm.DB
	Products    productdomain.Repository
	Owners      userdomain.Repository
	QueryConfig *config.QueryConfigHolder
	Metrics     *obsmetrics.Metrics `optional:"true"`
}

type Fetcher struct {
	db       *gorm.DB
	products ProductSource
	owners   OwnerSource
	queryCfg *config.QueryConfigHolder
	metrics  *obsmetrics.Metrics
	tracer   trace.Tracer
}

func NewFetcher(p FetcherParams) *Fetcher {
	return newFetcher(p.DB, p.Products, p.Owners, p.QueryConfig, p.Metrics)
}

func newFetcher(db *gorm.DB, products ProductSource, owners OwnerSource, queryCfg *config.QueryConfigHolder, metrics *obsmetrics.Metrics) *Fetcher {
	return &Fetcher{
		db:       db,
		products: products,
		owners:   owners,
		queryCfg: queryCfg,
		metrics:  metrics,
		tracer:   otel.Tracer("quickstep/order/enrich"),
	}
}

// Fetch loads the referenced products and owners concurrently. Both lookups
// are in flight before either is awaited. The first failure cancels the other
// lookup and no partial result is returned. Empty id sets issue no query.
func (f *Fetcher) Fetch(ctx context.Context, ids ReferencedIDs) (Details, error) {
	chunkSize := f.queryCfg.Get().InChunkSize
	g, gctx := errgroup.WithContext(ctx)

	var details Details
	g.Go(func() error {
		rows, err := fetchChunked(gctx, f, "products", ids.ProductIDs, chunkSize,
			func(ctx context.Context, chunk []int64) ([]productdomain.Product, error) {
				return f.products.FindByIDs(ctx, f.db, chunk)
			})
		if err != nil {
			return fmt.Errorf("fetch products: %w", err)
		}
		details.Products = rows
		return nil
	})
	g.Go(func() error {
		rows, err := fetchChunked(gctx, f, "users", ids.OwnerIDs, chunkSize,
			func(ctx context.Context, chunk []int64) ([]userdomain.User, error) {
				return f.owners.FindByIDs(ctx, f.db, chunk)
			})
		if err != nil {
			return fmt.Errorf("fetch owners: %w", err)
		}
		details.Owners = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return Details{}, err
	}
	return details, nil
}

// fetchChunked splits ids into IN-clause sized chunks and concatenates the
// results.
func fetchChunked[T any](
	ctx context.Context,
	f *Fetcher,
	resource string,
	ids []int64,
	chunkSize int,
	find func(context.Context, []int64) ([]T, error),
) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	if chunkSize <= 0 {
		chunkSize = config.DefaultInChunkSize
	}

	ctx, span := f.tracer.Start(ctx, "enrich.fetch_"+resource, trace.WithAttributes(
		attribute.Int("lookup.ids", len(ids)),
	))
	defer span.End()

	out := make([]T, 0, len(ids))
	for _, chunk := range lo.Chunk(ids, chunkSize) {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return nil, err
		}
		rows, err := find(ctx, chunk)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "lookup failed")
			return nil, err
		}
		f.metrics.RecordLookupQuery(ctx, resource)
		out = append(out, rows...)
	}
	span.SetAttributes(attribute.Int("lookup.rows", len(out)))
	return out, nil
}
