package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/smallbiznis/quickstep/internal/order/domain"
	"github.com/smallbiznis/quickstep/internal/testing/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrders(t *testing.T, db *gorm.DB, orders ...domain.Order) {
	t.Helper()
	r := Provide()
	for i := range orders {
		require.NoError(t, r.Insert(context.Background(), db, &orders[i]))
	}
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func ids(orders []domain.Order) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestInsertAndFindByIDRoundTrip(t *testing.T) {
	db := dbtest.Open(t)
	r := Provide()
	ctx := context.Background()

	want := domain.Order{ID: 10, OwnerID: 1, ProductIDs: []int64{5, 7, 5}, IssueDate: at(3, 12)}
	seedOrders(t, db, want)

	got, err := r.FindByID(ctx, db, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	missing, err := r.FindByID(ctx, db, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEmptyProductListIsStoredAsArray(t *testing.T) {
	db := dbtest.Open(t)
	seedOrders(t, db, domain.Order{ID: 1, IssueDate: at(1, 0)})

	var raw string
	require.NoError(t, db.Raw(`SELECT order_products FROM orders WHERE id = 1`).Scan(&raw).Error)
	assert.Equal(t, "[]", raw)

	got, err := Provide().FindByID(context.Background(), db, 1)
	require.NoError(t, err)
	if diff := cmp.Diff([]int64{}, got.ProductIDs, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("product ids mismatch (-want +got):\n%s", diff)
	}
}

func TestFindByOwner(t *testing.T) {
	db := dbtest.Open(t)
	seedOrders(t, db,
		domain.Order{ID: 1, OwnerID: 100, IssueDate: at(1, 9)},
		domain.Order{ID: 2, OwnerID: 200, IssueDate: at(2, 9)},
		domain.Order{ID: 3, OwnerID: 100, IssueDate: at(3, 9)},
	)

	got, err := Provide().FindByOwner(context.Background(), db, 100)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(got))

	none, err := Provide().FindByOwner(context.Background(), db, 300)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindAppliesDayBoundsInclusively(t *testing.T) {
	db := dbtest.Open(t)
	seedOrders(t, db,
		domain.Order{ID: 1, OwnerID: 100, IssueDate: at(4, 23)},
		domain.Order{ID: 2, OwnerID: 100, IssueDate: at(5, 0)},
		domain.Order{ID: 3, OwnerID: 200, IssueDate: at(7, 12)},
		domain.Order{ID: 4, OwnerID: 100, IssueDate: time.Date(2024, time.January, 9, 23, 59, 59, 0, time.UTC)},
		domain.Order{ID: 5, OwnerID: 100, IssueDate: at(10, 0)},
	)
	r := Provide()
	ctx := context.Background()

	start := at(5, 0)
	end := at(9, 0)
	got, err := r.Find(ctx, db, domain.BuildOrderFilter(nil, &start, &end))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, ids(got))

	owner := int64(100)
	got, err = r.Find(ctx, db, domain.BuildOrderFilter(&owner, &start, &end))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, ids(got))

	got, err = r.Find(ctx, db, domain.BuildOrderFilter(nil, nil, nil))
	require.NoError(t, err)
	all, err := r.FindAll(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, ids(all), ids(got))
	assert.Len(t, got, 5)
}

func TestFindMatchNoneSkipsStorage(t *testing.T) {
	got, err := Provide().Find(context.Background(), nil, domain.Filter{Kind: domain.FilterMatchNone})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdateAndDelete(t *testing.T) {
	db := dbtest.Open(t)
	r := Provide()
	ctx := context.Background()
	seedOrders(t, db, domain.Order{ID: 1, OwnerID: 100, ProductIDs: []int64{1}, IssueDate: at(1, 0)})

	updated := domain.Order{ID: 1, OwnerID: 0, ProductIDs: []int64{2, 3}, IssueDate: at(2, 0)}
	require.NoError(t, r.Update(ctx, db, &updated))

	got, err := r.FindByID(ctx, db, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(updated, *got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	deleted, err := r.DeleteByID(ctx, db, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.DeleteByID(ctx, db, 99)
	require.NoError(t, err)
	assert.False(t, deleted)
}
