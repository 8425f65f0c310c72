package db

import (
	"context"

	"github.com/wuquf/wuquf-backend/internal/models"
)

// UserRepository stores mirrored account profiles.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

// CompanyRepository stores companies and their location lists.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, companyID string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, companyID string, update models.CompanyUpdate) error
	Delete(ctx context.Context, companyID string) error
	// AppendLocation adds locationID to CompanyParking without rewriting the rest of the list.
	AppendLocation(ctx context.Context, companyID, locationID string) error
	SetSubscription(ctx context.Context, companyID, tier, token string) error
}

// LocationRepository stores parking locations and their spot lists.
type LocationRepository interface {
	Create(ctx context.Context, location *models.ParkingLocation) error
	GetByID(ctx context.Context, locationID string) (*models.ParkingLocation, error)
	List(ctx context.Context) ([]*models.ParkingLocation, error)
	Update(ctx context.Context, locationID string, update models.LocationUpdate) error
	Delete(ctx context.Context, locationID string) error
	AppendSpot(ctx context.Context, locationID, spotID string) error
}

// SpotRepository stores individual parking spots.
type SpotRepository interface {
	Create(ctx context.Context, spot *models.ParkingSpot) error
	GetByID(ctx context.Context, spotID string) (*models.ParkingSpot, error)
	List(ctx context.Context) ([]*models.ParkingSpot, error)
	UpdateWord(ctx context.Context, spotID, word string) error
	// SetReserve mirrors a reservation onto the spot. An empty userID frees it.
	SetReserve(ctx context.Context, spotID, userID string) error
	Delete(ctx context.Context, spotID string) error
}

// ReservationRepository stores reservations keyed by spot ID.
type ReservationRepository interface {
	// Put creates or overwrites the reservation document for reservation.ParkID.
	Put(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	List(ctx context.Context) ([]*models.Reservation, error)
	Update(ctx context.Context, reservationID string, update models.ReservationUpdate) error
	Delete(ctx context.Context, reservationID string) error
}
