package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/wuquf/wuquf-backend/internal/models"
)

type firestoreSpotRepository struct {
	client *firestore.Client
}

// NewFirestoreSpotRepository returns a SpotRepository backed by the "Parking" collection.
func NewFirestoreSpotRepository(client *firestore.Client) SpotRepository {
	return &firestoreSpotRepository{client: client}
}

func (r *firestoreSpotRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(spotsCollection).Doc(id)
}

func (r *firestoreSpotRepository) Create(ctx context.Context, spot *models.ParkingSpot) error {
	if _, err := r.doc(spot.ID).Set(ctx, spot); err != nil {
		return wrapStoreError(err, "create", "spot", spot.ID)
	}
	return nil
}

func (r *firestoreSpotRepository) GetByID(ctx context.Context, spotID string) (*models.ParkingSpot, error) {
	docSnap, err := r.doc(spotID).Get(ctx)
	if err != nil {
		return nil, wrapStoreError(err, "get", "spot", spotID)
	}
	var spot models.ParkingSpot
	if err := docSnap.DataTo(&spot); err != nil {
		return nil, fmt.Errorf("failed to decode spot data for ID '%s': %w", spotID, err)
	}
	spot.ID = docSnap.Ref.ID
	return &spot, nil
}

func (r *firestoreSpotRepository) List(ctx context.Context) ([]*models.ParkingSpot, error) {
	iter := r.client.Collection(spotsCollection).Documents(ctx)
	defer iter.Stop()

	spots := []*models.ParkingSpot{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate spots: %w", err)
		}
		var spot models.ParkingSpot
		if err := doc.DataTo(&spot); err != nil {
			return nil, fmt.Errorf("failed to decode spot data for ID '%s': %w", doc.Ref.ID, err)
		}
		spot.ID = doc.Ref.ID
		spots = append(spots, &spot)
	}
	return spots, nil
}

func (r *firestoreSpotRepository) UpdateWord(ctx context.Context, spotID, word string) error {
	_, err := r.doc(spotID).Update(ctx, []firestore.Update{{Path: "word", Value: word}})
	if err != nil {
		return wrapStoreError(err, "update", "spot", spotID)
	}
	return nil
}

func (r *firestoreSpotRepository) SetReserve(ctx context.Context, spotID, userID string) error {
	_, err := r.doc(spotID).Update(ctx, []firestore.Update{{Path: "reserve", Value: userID}})
	if err != nil {
		return wrapStoreError(err, "set reserve on", "spot", spotID)
	}
	return nil
}

func (r *firestoreSpotRepository) Delete(ctx context.Context, spotID string) error {
	if _, err := r.doc(spotID).Delete(ctx); err != nil {
		return wrapStoreError(err, "delete", "spot", spotID)
	}
	return nil
}
