package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/smallbiznis/quickstep/internal/address/domain"
	"github.com/smallbiznis/quickstep/internal/address/repository"
	"github.com/smallbiznis/quickstep/internal/testing/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupAddressService(t *testing.T) domain.Service {
	t.Helper()
	return New(Params{
		DB:    dbtest.Open(t),
		Log:   zaptest.NewLogger(t),
		GenID: dbtest.Node(t),
		Repo:  repository.Provide(),
	})
}

func fakeAddress(country string) domain.CreateRequest {
	return domain.CreateRequest{
		UserID:      "7",
		Street:      gofakeit.Street(),
		HouseNumber: gofakeit.StreetNumber(),
		City:        gofakeit.City(),
		Zip:         gofakeit.Zip(),
		Country:     country,
	}
}

func TestListByCountry(t *testing.T) {
	svc := setupAddressService(t)
	ctx := context.Background()

	for _, country := range []string{"DE", "FR", "DE"} {
		_, err := svc.Create(ctx, fakeAddress(country))
		require.NoError(t, err)
	}

	de, err := svc.ListByCountry(ctx, " DE ")
	require.NoError(t, err)
	assert.Len(t, de, 2)

	none, err := svc.ListByCountry(ctx, "IT")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = svc.ListByCountry(ctx, "  ")
	require.ErrorIs(t, err, domain.ErrInvalidCountry)
}

func TestCreateAddressValidation(t *testing.T) {
	svc := setupAddressService(t)
	ctx := context.Background()

	req := fakeAddress("NL")
	req.UserID = "abc"
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidUser)

	req = fakeAddress("NL")
	req.Zip = " "
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidZip)

	req = fakeAddress("")
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, domain.ErrInvalidCountry)
}

func TestUpdateAddressPartially(t *testing.T) {
	svc := setupAddressService(t)
	ctx := context.Background()

	state := "Bavaria"
	req := fakeAddress("DE")
	req.State = &state
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created.State)

	city := "Munich"
	blank := ""
	updated, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, City: &city, State: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Munich", updated.City)
	assert.Equal(t, created.Street, updated.Street)
	assert.Nil(t, updated.State)

	_, err = svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Street: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidStreet)
}

func TestDeleteAddress(t *testing.T) {
	svc := setupAddressService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fakeAddress("US"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
