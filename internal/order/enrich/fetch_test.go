package enrich

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/smallbiznis/quickstep/internal/config"
	productdomain "github.com/smallbiznis/quickstep/internal/product/domain"
	userdomain "github.com/smallbiznis/quickstep/internal/user/domain"
	"go.uber.org/goleak"
	"gorm.io/gorm"
)

type productStub struct {
	mu     sync.Mutex
	calls  [][]int64
	rows   map[int64]productdomain.Product
	err    error
	before func(context.Context) error
}

func (s *productStub) FindByIDs(ctx context.Context, _ *gorm.DB, ids []int64) ([]productdomain.Product, error) {
	s.mu.Lock()
	s.calls = append(s.calls, append([]int64(nil), ids...))
	s.mu.Unlock()
	if s.before != nil {
		if err := s.before(ctx); err != nil {
			return nil, err
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	out := []productdomain.Product{}
	for _, id := range ids {
		if p, ok := s.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *productStub) Calls() [][]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type ownerStub struct {
	mu     sync.Mutex
	calls  [][]int64
	rows   map[int64]userdomain.User
	err    error
	before func(context.Context) error
}

func (s *ownerStub) FindByIDs(ctx context.Context, _ *gorm.DB, ids []int64) ([]userdomain.User, error) {
	s.mu.Lock()
	s.calls = append(s.calls, append([]int64(nil), ids...))
	s.mu.Unlock()
	if s.before != nil {
		if err := s.before(ctx); err != nil {
			return nil, err
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	out := []userdomain.User{}
	for _, id := range ids {
		if u, ok := s.rows[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *ownerStub) Calls() [][]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// rendezvous blocks each arrival until all parties have arrived.
type rendezvous struct {
	wg sync.WaitGroup
}

func newRendezvous(parties int) *rendezvous {
	r := &rendezvous{}
	r.wg.Add(parties)
	return r
}

func (r *rendezvous) arrive(ctx context.Context) error {
	r.wg.Done()
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-time.After(2 * time.Second):
		return errors.New("peer lookup never started")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func testFetcher(products ProductSource, owners OwnerSource, chunkSize int) *Fetcher {
	holder := config.StaticQueryConfig(config.QueryConfig{InChunkSize: chunkSize})
	return newFetcher(nil, products, owners, holder, nil)
}

func flatten(calls [][]int64) []int64 {
	out := []int64{}
	for _, c := range calls {
		out = append(out, c...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestFetchQueriesEachSourceOnceWithExactIDs(t *testing.T) {
	defer goleak.VerifyNone(t)

	products := &productStub{rows: map[int64]productdomain.Product{10: product(10, "P10"), 11: product(11, "P11")}}
	owners := &ownerStub{rows: map[int64]userdomain.User{1: user(1, "alice")}}
	f := testFetcher(products, owners, 0)

	details, err := f.Fetch(context.Background(), ReferencedIDs{
		ProductIDs: []int64{10, 11, 12},
		OwnerIDs:   []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if diff := cmp.Diff([][]int64{{10, 11, 12}}, products.Calls()); diff != "" {
		t.Fatalf("product calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]int64{{1, 2}}, owners.Calls()); diff != "" {
		t.Fatalf("owner calls mismatch (-want +got):\n%s", diff)
	}
	if len(details.Products) != 2 || len(details.Owners) != 1 {
		t.Fatalf("unexpected details: %d products, %d owners", len(details.Products), len(details.Owners))
	}
}

func TestFetchSkipsEmptyIDSets(t *testing.T) {
	defer goleak.VerifyNone(t)

	products := &productStub{}
	owners := &ownerStub{}
	f := testFetcher(products, owners, 0)

	details, err := f.Fetch(context.Background(), ReferencedIDs{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(products.Calls()) != 0 || len(owners.Calls()) != 0 {
		t.Fatalf("expected no lookups, got %d product and %d owner calls", len(products.Calls()), len(owners.Calls()))
	}
	if details.Products == nil || details.Owners == nil {
		t.Fatalf("expected empty, non-nil results: %+v", details)
	}
}

func TestFetchRunsLookupsConcurrently(t *testing.T) {
	defer goleak.VerifyNone(t)

	barrier := newRendezvous(2)
	products := &productStub{before: barrier.arrive}
	owners := &ownerStub{before: barrier.arrive}
	f := testFetcher(products, owners, 0)

	_, err := f.Fetch(context.Background(), ReferencedIDs{
		ProductIDs: []int64{1},
		OwnerIDs:   []int64{2},
	})
	if err != nil {
		t.Fatalf("expected both lookups to be in flight together: %v", err)
	}
}

func TestFetchPropagatesFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("connection reset")
	cases := []struct {
		name     string
		products *productStub
		owners   *ownerStub
	}{
		{
			name:     "products",
			products: &productStub{err: boom},
			owners:   &ownerStub{},
		},
		{
			name:     "owners",
			products: &productStub{},
			owners:   &ownerStub{err: boom},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := testFetcher(tc.products, tc.owners, 0)
			details, err := f.Fetch(context.Background(), ReferencedIDs{
				ProductIDs: []int64{1},
				OwnerIDs:   []int64{2},
			})
			if !errors.Is(err, boom) {
				t.Fatalf("expected wrapped lookup error, got %v", err)
			}
			if details.Products != nil || details.Owners != nil {
				t.Fatalf("expected no partial result, got %+v", details)
			}
		})
	}
}

func TestFetchFailureCancelsPeer(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("boom")
	products := &productStub{err: boom}
	owners := &ownerStub{before: func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
			return errors.New("peer was not cancelled")
		}
	}}
	f := testFetcher(products, owners, 0)

	_, err := f.Fetch(context.Background(), ReferencedIDs{
		ProductIDs: []int64{1},
		OwnerIDs:   []int64{2},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the first failure to be reported, got %v", err)
	}
}

func TestFetchChunksLargeIDSets(t *testing.T) {
	defer goleak.VerifyNone(t)

	products := &productStub{rows: map[int64]productdomain.Product{
		1: product(1, "a"), 2: product(2, "b"), 3: product(3, "c"), 4: product(4, "d"), 5: product(5, "e"),
	}}
	owners := &ownerStub{}
	f := testFetcher(products, owners, 2)

	details, err := f.Fetch(context.Background(), ReferencedIDs{ProductIDs: []int64{1, 2, 3, 4, 5}})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	calls := products.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 chunked lookups, got %d: %v", len(calls), calls)
	}
	for _, c := range calls {
		if len(c) > 2 {
			t.Fatalf("chunk exceeds configured size: %v", c)
		}
	}
	if diff := cmp.Diff([]int64{1, 2, 3, 4, 5}, flatten(calls)); diff != "" {
		t.Fatalf("chunks do not cover the id set (-want +got):\n%s", diff)
	}
	if len(details.Products) != 5 {
		t.Fatalf("expected 5 products, got %d", len(details.Products))
	}
}
