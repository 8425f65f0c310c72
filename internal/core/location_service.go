package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
)

type locationService struct {
	companies db.CompanyRepository
	locations db.LocationRepository
	spots     db.SpotRepository
	newID     IDGenerator
	logger    *zap.Logger
}

// NewLocationService creates a LocationService.
func NewLocationService(
	companies db.CompanyRepository,
	locations db.LocationRepository,
	spots db.SpotRepository,
	newID IDGenerator,
	logger *zap.Logger,
) LocationService {
	return &locationService{
		companies: companies,
		locations: locations,
		spots:     spots,
		newID:     newID,
		logger:    logger,
	}
}

// CreateLocation checks the company, writes the location and then appends its
// ID to the company's CompanyParking list. The two writes are not atomic.
func (s *locationService) CreateLocation(ctx context.Context, companyID string, req models.CreateLocationRequest) (*models.ParkingLocation, error) {
	if err := requireFields(field{"ParkingLocations", req.Label != ""}); err != nil {
		return nil, err
	}
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, notFoundAs(err, ErrCompanyNotFound)
	}

	location := &models.ParkingLocation{
		ID:          s.newID(),
		Label:       req.Label,
		Description: req.Description,
		Images:      req.Images,
		Park:        []string{},
	}
	if location.Images == nil {
		location.Images = []string{}
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	if err := s.companies.AppendLocation(ctx, companyID, location.ID); err != nil {
		s.logger.Error("Location written but not linked to company",
			zap.String("locationID", location.ID), zap.String("companyID", companyID), zap.Error(err))
		return nil, notFoundAs(err, ErrCompanyNotFound)
	}
	return location, nil
}

func (s *locationService) ListLocations(ctx context.Context) ([]*models.ParkingLocation, error) {
	return s.locations.List(ctx)
}

// GetLocation resolves the location's spot IDs in order, skipping IDs whose
// spot document no longer exists.
func (s *locationService) GetLocation(ctx context.Context, locationID string) (*models.LocationDetail, error) {
	location, err := s.locations.GetByID(ctx, locationID)
	if err != nil {
		return nil, notFoundAs(err, ErrLocationNotFound)
	}

	spots := make([]*models.ParkingSpot, 0, len(location.Park))
	for _, spotID := range location.Park {
		spot, err := s.spots.GetByID(ctx, spotID)
		if errors.Is(err, db.ErrNotFound) {
			s.logger.Debug("Skipping dangling spot reference",
				zap.String("locationID", locationID), zap.String("spotID", spotID))
			continue
		}
		if err != nil {
			return nil, err
		}
		spots = append(spots, spot)
	}

	images := location.Images
	if images == nil {
		images = []string{}
	}
	return &models.LocationDetail{
		ID:          location.ID,
		Label:       location.Label,
		Description: location.Description,
		Images:      images,
		Park:        spots,
	}, nil
}

// UpdateLocation overwrites only the fields present in req. A body with none
// of them is rejected before any read.
func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req models.UpdateLocationRequest) error {
	if req.Empty() {
		return fmt.Errorf("%w: ParkingLocations, description, images or Park", ErrMissingFields)
	}
	if _, err := s.locations.GetByID(ctx, locationID); err != nil {
		return notFoundAs(err, ErrLocationNotFound)
	}
	err := s.locations.Update(ctx, locationID, models.LocationUpdate{
		Label:       req.Label,
		Description: req.Description,
		Images:      req.Images,
		Park:        req.Park,
	})
	return notFoundAs(err, ErrLocationNotFound)
}

// DeleteLocation removes the location document only. The owning company's
// CompanyParking list and the location's spots are left as they are.
func (s *locationService) DeleteLocation(ctx context.Context, locationID string) error {
	if _, err := s.locations.GetByID(ctx, locationID); err != nil {
		return notFoundAs(err, ErrLocationNotFound)
	}
	return s.locations.Delete(ctx, locationID)
}
