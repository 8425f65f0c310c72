package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
)

func newLocationService(store *db.MemoryStore) LocationService {
	return NewLocationService(store.Companies(), store.Locations(), store.Spots(), sequentialIDs("loc"), testLogger)
}

func TestCreateLocationAppendsExactlyOneID(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	svc := newLocationService(store)

	location, err := svc.CreateLocation(context.Background(), "c1", models.CreateLocationRequest{
		Label:       "King Fahd Road",
		Description: "Covered",
		Images:      []string{"a.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "loc-1", location.ID)
	assert.Empty(t, location.Park)

	company, err := store.Companies().GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{location.ID}, company.ParkingIDs)
}

func TestCreateLocationRejectsBeforeWriting(t *testing.T) {
	store := db.NewMemoryStore()
	seedCompany(store, "c1")
	writes := store.Writes()
	svc := newLocationService(store)

	_, err := svc.CreateLocation(context.Background(), "c1", models.CreateLocationRequest{Description: "no label"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.CreateLocation(context.Background(), "ghost", models.CreateLocationRequest{Label: "x"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	assert.Equal(t, writes, store.Writes())
	locations, err := svc.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestGetLocationExpandsSpotsAndSkipsMissing(t *testing.T) {
	store := db.NewMemoryStore()
	seedSpot(store, "s1", "A1")
	seedSpot(store, "s3", "A3")
	seedLocation(store, "l1", "s1", "s2", "s3")
	svc := newLocationService(store)

	detail, err := svc.GetLocation(context.Background(), "l1")
	require.NoError(t, err)
	require.Len(t, detail.Park, 2)
	assert.Equal(t, "A1", detail.Park[0].Word)
	assert.Equal(t, "A3", detail.Park[1].Word)
	assert.Equal(t, "Olaya Street", detail.Label)
}

func TestLocationNotFound(t *testing.T) {
	store := db.NewMemoryStore()
	svc := newLocationService(store)
	ctx := context.Background()

	_, err := svc.GetLocation(ctx, "ghost")
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.ErrorIs(t, svc.UpdateLocation(ctx, "ghost", models.UpdateLocationRequest{Label: strPtr("x")}), ErrLocationNotFound)
	assert.ErrorIs(t, svc.DeleteLocation(ctx, "ghost"), ErrLocationNotFound)
	assert.Equal(t, 0, store.Writes())
}

func TestUpdateAndDeleteLocation(t *testing.T) {
	store := db.NewMemoryStore()
	seedLocation(store, "l1")
	svc := newLocationService(store)
	ctx := context.Background()

	require.NoError(t, svc.UpdateLocation(ctx, "l1", models.UpdateLocationRequest{
		Label:       strPtr("Tahlia"),
		Description: strPtr("Open air"),
		Images:      []string{"b.jpg"},
		Park:        []string{"s9"},
	}))
	location, err := store.Locations().GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "Tahlia", location.Label)
	assert.Equal(t, []string{"s9"}, location.Park)

	require.NoError(t, svc.DeleteLocation(ctx, "l1"))
	_, err = svc.GetLocation(ctx, "l1")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestUpdateLocationKeepsOmittedFields(t *testing.T) {
	store := db.NewMemoryStore()
	seedLocation(store, "l1", "s1", "s2")
	svc := newLocationService(store)
	ctx := context.Background()

	require.NoError(t, svc.UpdateLocation(ctx, "l1", models.UpdateLocationRequest{Description: strPtr("renovated")}))

	location, err := store.Locations().GetByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "renovated", location.Description)
	assert.Equal(t, "Olaya Street", location.Label)
	assert.Equal(t, []string{"s1", "s2"}, location.Park)
}

func TestUpdateLocationRejectsEmptyBody(t *testing.T) {
	store := db.NewMemoryStore()
	seedLocation(store, "l1", "s1")
	svc := newLocationService(store)
	writes := store.Writes()

	err := svc.UpdateLocation(context.Background(), "l1", models.UpdateLocationRequest{})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Equal(t, writes, store.Writes())
}
