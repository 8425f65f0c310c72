package core

import (
	"context"
	"time"

	"github.com/wuquf/wuquf-backend/internal/models"
	"github.com/wuquf/wuquf-backend/internal/token"
)

// UserService registers customers and reads their profiles.
type UserService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// CompanyService manages companies and their subscriptions.
type CompanyService interface {
	CreateCompany(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
	GetCompany(ctx context.Context, companyID string) (*models.Company, error)
	UpdateCompany(ctx context.Context, companyID string, req models.UpdateCompanyRequest) error
	DeleteCompany(ctx context.Context, companyID string) error
	SubscribeCompany(ctx context.Context, companyID string, req models.SubscribeCompanyRequest) (string, error)
}

// LocationService manages parking locations.
type LocationService interface {
	CreateLocation(ctx context.Context, companyID string, req models.CreateLocationRequest) (*models.ParkingLocation, error)
	ListLocations(ctx context.Context) ([]*models.ParkingLocation, error)
	GetLocation(ctx context.Context, locationID string) (*models.LocationDetail, error)
	UpdateLocation(ctx context.Context, locationID string, req models.UpdateLocationRequest) error
	DeleteLocation(ctx context.Context, locationID string) error
}

// SpotService manages individual parking spots.
type SpotService interface {
	CreateSpot(ctx context.Context, locationID string, req models.CreateSpotRequest) (*models.ParkingSpot, error)
	ListSpots(ctx context.Context) ([]*models.ParkingSpot, error)
	GetSpot(ctx context.Context, spotID string) (*models.ParkingSpot, error)
	UpdateSpot(ctx context.Context, spotID string, req models.UpdateSpotRequest) error
	DeleteSpot(ctx context.Context, spotID string) error
}

// ReservationService books spots and keeps the spot's reserve field in step.
type ReservationService interface {
	ListReservations(ctx context.Context) ([]*models.Reservation, error)
	ReserveSpot(ctx context.Context, spotID string, req models.ReserveSpotRequest) error
	UpdateReservation(ctx context.Context, reservationID string, req models.UpdateReservationRequest) error
	CancelReservation(ctx context.Context, spotID string) error
}

// PaymentService exposes the payment processor to clients.
type PaymentService interface {
	PublishableKey() string
	CreatePaymentIntent(ctx context.Context) (string, error)
}

// IdentityProvider issues user accounts.
type IdentityProvider interface {
	CreateUser(ctx context.Context, identity models.IdentityToCreate) (string, error)
}

// PaymentProcessor authorizes payments.
type PaymentProcessor interface {
	PublishableKey() string
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// SubscriptionSigner issues subscription tokens.
type SubscriptionSigner interface {
	Sign(claims token.SubscriptionClaims, ttl time.Duration) (string, error)
}
