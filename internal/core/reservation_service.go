package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
	"github.com/wuquf/wuquf-backend/pkg/messagequeue"
)

type reservationService struct {
	reservations db.ReservationRepository
	spots        db.SpotRepository
	publisher    messagequeue.Publisher
	queue        string
	now          func() time.Time
	logger       *zap.Logger
}

// NewReservationService creates a ReservationService publishing change events to queue.
func NewReservationService(
	reservations db.ReservationRepository,
	spots db.SpotRepository,
	publisher messagequeue.Publisher,
	queue string,
	logger *zap.Logger,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		spots:        spots,
		publisher:    publisher,
		queue:        queue,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *reservationService) ListReservations(ctx context.Context) ([]*models.Reservation, error) {
	return s.reservations.List(ctx)
}

// ReserveSpot writes reserve/{spotID} and then mirrors the user onto the spot.
// There is no lock: two concurrent calls for one spot both succeed and the
// later writes win.
func (s *reservationService) ReserveSpot(ctx context.Context, spotID string, req models.ReserveSpotRequest) error {
	if req.UserID == "" {
		return ErrMissingUserID
	}
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		return notFoundAs(err, ErrSpotNotFound)
	}

	if err := s.reservations.Put(ctx, &models.Reservation{UserID: req.UserID, ParkID: spotID}); err != nil {
		return err
	}
	if err := s.spots.SetReserve(ctx, spotID, req.UserID); err != nil {
		s.logger.Error("Reservation written but spot not marked",
			zap.String("spotID", spotID), zap.String("userID", req.UserID), zap.Error(err))
		return notFoundAs(err, ErrSpotNotFound)
	}
	s.publish(ctx, models.ReservationCreated, spotID, req.UserID)
	return nil
}

// UpdateReservation overwrites the non-empty fields of req. The spot's reserve
// field is not touched.
func (s *reservationService) UpdateReservation(ctx context.Context, reservationID string, req models.UpdateReservationRequest) error {
	if req.UserID == "" && req.ParkID == "" {
		return fmt.Errorf("%w: userId or parkId", ErrMissingFields)
	}
	current, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return notFoundAs(err, ErrReservationNotFound)
	}

	var update models.ReservationUpdate
	merged := *current
	if req.UserID != "" {
		update.UserID = &req.UserID
		merged.UserID = req.UserID
	}
	if req.ParkID != "" {
		update.ParkID = &req.ParkID
		merged.ParkID = req.ParkID
	}
	if err := s.reservations.Update(ctx, reservationID, update); err != nil {
		return notFoundAs(err, ErrReservationNotFound)
	}
	s.publish(ctx, models.ReservationUpdated, merged.ParkID, merged.UserID)
	return nil
}

// CancelReservation deletes reserve/{spotID} and clears the spot's reserve
// field. A spot that no longer exists has nothing to clear.
func (s *reservationService) CancelReservation(ctx context.Context, spotID string) error {
	reservation, err := s.reservations.GetByID(ctx, spotID)
	if err != nil {
		return notFoundAs(err, ErrReservationNotFound)
	}
	if err := s.reservations.Delete(ctx, spotID); err != nil {
		return err
	}
	if err := s.spots.SetReserve(ctx, spotID, ""); err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return err
		}
		s.logger.Warn("Cancelled reservation for a spot that no longer exists", zap.String("spotID", spotID))
	}
	s.publish(ctx, models.ReservationCancelled, spotID, reservation.UserID)
	return nil
}

func (s *reservationService) publish(ctx context.Context, eventType, spotID, userID string) {
	body, err := json.Marshal(models.ReservationEvent{
		Type:   eventType,
		ParkID: spotID,
		UserID: userID,
		At:     s.now().Unix(),
	})
	if err != nil {
		s.logger.Error("Failed to encode reservation event", zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, s.queue, body); err != nil {
		s.logger.Warn("Failed to publish reservation event",
			zap.String("type", eventType), zap.String("spotID", spotID), zap.Error(err))
	}
}
