package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/wuquf/wuquf-backend/internal/models"
)

type firestoreLocationRepository struct {
	client *firestore.Client
}

// NewFirestoreLocationRepository returns a LocationRepository backed by "parking-locations".
func NewFirestoreLocationRepository(client *firestore.Client) LocationRepository {
	return &firestoreLocationRepository{client: client}
}

func (r *firestoreLocationRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(locationsCollection).Doc(id)
}

func (r *firestoreLocationRepository) Create(ctx context.Context, location *models.ParkingLocation) error {
	location.Images = nonNil(location.Images)
	location.Park = nonNil(location.Park)
	if _, err := r.doc(location.ID).Set(ctx, location); err != nil {
		return wrapStoreError(err, "create", "location", location.ID)
	}
	return nil
}

func (r *firestoreLocationRepository) GetByID(ctx context.Context, locationID string) (*models.ParkingLocation, error) {
	docSnap, err := r.doc(locationID).Get(ctx)
	if err != nil {
		return nil, wrapStoreError(err, "get", "location", locationID)
	}
	var location models.ParkingLocation
	if err := docSnap.DataTo(&location); err != nil {
		return nil, fmt.Errorf("failed to decode location data for ID '%s': %w", locationID, err)
	}
	location.ID = docSnap.Ref.ID
	return &location, nil
}

func (r *firestoreLocationRepository) List(ctx context.Context) ([]*models.ParkingLocation, error) {
	iter := r.client.Collection(locationsCollection).Documents(ctx)
	defer iter.Stop()

	locations := []*models.ParkingLocation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate locations: %w", err)
		}
		var location models.ParkingLocation
		if err := doc.DataTo(&location); err != nil {
			return nil, fmt.Errorf("failed to decode location data for ID '%s': %w", doc.Ref.ID, err)
		}
		location.ID = doc.Ref.ID
		locations = append(locations, &location)
	}
	return locations, nil
}

// Update writes only the fields set in update.
func (r *firestoreLocationRepository) Update(ctx context.Context, locationID string, update models.LocationUpdate) error {
	var updates []firestore.Update
	if update.Label != nil {
		updates = append(updates, firestore.Update{Path: "ParkingLocations", Value: *update.Label})
	}
	if update.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *update.Description})
	}
	if update.Images != nil {
		updates = append(updates, firestore.Update{Path: "images", Value: update.Images})
	}
	if update.Park != nil {
		updates = append(updates, firestore.Update{Path: "Park", Value: update.Park})
	}
	if len(updates) == 0 {
		return nil
	}
	if _, err := r.doc(locationID).Update(ctx, updates); err != nil {
		return wrapStoreError(err, "update", "location", locationID)
	}
	return nil
}

func (r *firestoreLocationRepository) Delete(ctx context.Context, locationID string) error {
	if _, err := r.doc(locationID).Delete(ctx); err != nil {
		return wrapStoreError(err, "delete", "location", locationID)
	}
	return nil
}

func (r *firestoreLocationRepository) AppendSpot(ctx context.Context, locationID, spotID string) error {
	_, err := r.doc(locationID).Update(ctx, []firestore.Update{
		{Path: "Park", Value: firestore.ArrayUnion(spotID)},
	})
	if err != nil {
		return wrapStoreError(err, "append spot to", "location", locationID)
	}
	return nil
}
