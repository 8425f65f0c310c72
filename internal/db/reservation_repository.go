package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/wuquf/wuquf-backend/internal/models"
)

type firestoreReservationRepository struct {
	client *firestore.Client
}

// NewFirestoreReservationRepository returns a ReservationRepository backed by "reserve".
func NewFirestoreReservationRepository(client *firestore.Client) ReservationRepository {
	return &firestoreReservationRepository{client: client}
}

func (r *firestoreReservationRepository) doc(id string) *firestore.DocumentRef {
	return r.client.Collection(reservationsCollection).Doc(id)
}

func (r *firestoreReservationRepository) Put(ctx context.Context, reservation *models.Reservation) error {
	if _, err := r.doc(reservation.ParkID).Set(ctx, reservation); err != nil {
		return wrapStoreError(err, "write", "reservation", reservation.ParkID)
	}
	return nil
}

func (r *firestoreReservationRepository) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	docSnap, err := r.doc(reservationID).Get(ctx)
	if err != nil {
		return nil, wrapStoreError(err, "get", "reservation", reservationID)
	}
	var reservation models.Reservation
	if err := docSnap.DataTo(&reservation); err != nil {
		return nil, fmt.Errorf("failed to decode reservation data for ID '%s': %w", reservationID, err)
	}
	return &reservation, nil
}

func (r *firestoreReservationRepository) List(ctx context.Context) ([]*models.Reservation, error) {
	iter := r.client.Collection(reservationsCollection).Documents(ctx)
	defer iter.Stop()

	reservations := []*models.Reservation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reservations: %w", err)
		}
		var reservation models.Reservation
		if err := doc.DataTo(&reservation); err != nil {
			return nil, fmt.Errorf("failed to decode reservation data for ID '%s': %w", doc.Ref.ID, err)
		}
		reservations = append(reservations, &reservation)
	}
	return reservations, nil
}

// Update writes the fields set in update. The document keeps its ID even when
// parkId changes.
func (r *firestoreReservationRepository) Update(ctx context.Context, reservationID string, update models.ReservationUpdate) error {
	var updates []firestore.Update
	if update.UserID != nil {
		updates = append(updates, firestore.Update{Path: "userId", Value: *update.UserID})
	}
	if update.ParkID != nil {
		updates = append(updates, firestore.Update{Path: "parkId", Value: *update.ParkID})
	}
	if len(updates) == 0 {
		return nil
	}
	if _, err := r.doc(reservationID).Update(ctx, updates); err != nil {
		return wrapStoreError(err, "update", "reservation", reservationID)
	}
	return nil
}

func (r *firestoreReservationRepository) Delete(ctx context.Context, reservationID string) error {
	if _, err := r.doc(reservationID).Delete(ctx); err != nil {
		return wrapStoreError(err, "delete", "reservation", reservationID)
	}
	return nil
}
