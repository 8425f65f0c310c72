package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
)

type spotService struct {
	locations db.LocationRepository
	spots     db.SpotRepository
	newID     IDGenerator
	logger    *zap.Logger
}

// NewSpotService creates a SpotService.
func NewSpotService(locations db.LocationRepository, spots db.SpotRepository, newID IDGenerator, logger *zap.Logger) SpotService {
	return &spotService{locations: locations, spots: spots, newID: newID, logger: logger}
}

func (s *spotService) CreateSpot(ctx context.Context, locationID string, req models.CreateSpotRequest) (*models.ParkingSpot, error) {
	if err := requireFields(field{"word", req.Word != ""}); err != nil {
		return nil, err
	}
	if _, err := s.locations.GetByID(ctx, locationID); err != nil {
		return nil, notFoundAs(err, ErrLocationNotFound)
	}

	spot := &models.ParkingSpot{ID: s.newID(), Word: req.Word, Reserve: ""}
	if err := s.spots.Create(ctx, spot); err != nil {
		return nil, fmt.Errorf("failed to create spot: %w", err)
	}
	if err := s.locations.AppendSpot(ctx, locationID, spot.ID); err != nil {
		s.logger.Error("Spot written but not linked to location",
			zap.String("spotID", spot.ID), zap.String("locationID", locationID), zap.Error(err))
		return nil, notFoundAs(err, ErrLocationNotFound)
	}
	return spot, nil
}

func (s *spotService) ListSpots(ctx context.Context) ([]*models.ParkingSpot, error) {
	return s.spots.List(ctx)
}

func (s *spotService) GetSpot(ctx context.Context, spotID string) (*models.ParkingSpot, error) {
	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		return nil, notFoundAs(err, ErrSpotNotFound)
	}
	return spot, nil
}

func (s *spotService) UpdateSpot(ctx context.Context, spotID string, req models.UpdateSpotRequest) error {
	if err := requireFields(field{"word", req.Word != ""}); err != nil {
		return err
	}
	if _, err := s.GetSpot(ctx, spotID); err != nil {
		return err
	}
	return notFoundAs(s.spots.UpdateWord(ctx, spotID, req.Word), ErrSpotNotFound)
}

// DeleteSpot removes the spot document. Location Park lists keep the ID and
// GetLocation skips it.
func (s *spotService) DeleteSpot(ctx context.Context, spotID string) error {
	if _, err := s.GetSpot(ctx, spotID); err != nil {
		return err
	}
	return s.spots.Delete(ctx, spotID)
}
