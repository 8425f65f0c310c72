package core

import (
	"context"
	"fmt"
	"html"
	"time"

	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
	"github.com/wuquf/wuquf-backend/internal/token"
	"github.com/wuquf/wuquf-backend/pkg/mailer"
)

type companyService struct {
	companies db.CompanyRepository
	signer    SubscriptionSigner
	mailer    mailer.Mailer
	newID     IDGenerator
	logger    *zap.Logger
}

// NewCompanyService creates a CompanyService.
func NewCompanyService(
	companies db.CompanyRepository,
	signer SubscriptionSigner,
	m mailer.Mailer,
	newID IDGenerator,
	logger *zap.Logger,
) CompanyService {
	return &companyService{
		companies: companies,
		signer:    signer,
		mailer:    m,
		newID:     newID,
		logger:    logger,
	}
}

func (s *companyService) CreateCompany(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	if err := requireFields(
		field{"nameCompany", req.Name != ""},
		field{"countParking", truthy(req.CountParking)},
		field{"Subscription", req.Subscription != ""},
		field{"CompanyParking", req.CompanyParking != nil},
		field{"emailCompany", req.Email != ""},
	); err != nil {
		return nil, err
	}

	company := &models.Company{
		ID:           s.newID(),
		Name:         req.Name,
		Email:        req.Email,
		CountParking: req.CountParking,
		Subscription: req.Subscription,
		ParkingIDs:   req.CompanyParking,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.companies.List(ctx)
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, notFoundAs(err, ErrCompanyNotFound)
	}
	return company, nil
}

func validateCompanyUpdate(req models.UpdateCompanyRequest, extra ...field) error {
	fields := []field{
		{"nameCompany", req.Name != ""},
		{"countParking", truthy(req.CountParking)},
		{"Subscription", req.Subscription != ""},
		{"CompanyParkingLocations", req.CompanyParkingLocations != nil},
		{"emailCompany", req.Email != ""},
	}
	return requireFields(append(fields, extra...)...)
}

func (s *companyService) UpdateCompany(ctx context.Context, companyID string, req models.UpdateCompanyRequest) error {
	if err := validateCompanyUpdate(req); err != nil {
		return err
	}
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return err
	}
	err := s.companies.Update(ctx, companyID, models.CompanyUpdate{
		Name:                    req.Name,
		Email:                   req.Email,
		CountParking:            req.CountParking,
		Subscription:            req.Subscription,
		CompanyParkingLocations: req.CompanyParkingLocations,
	})
	return notFoundAs(err, ErrCompanyNotFound)
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID string) error {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return err
	}
	return s.companies.Delete(ctx, companyID)
}

// SubscribeCompany signs a subscription token over the request's company
// fields, stores tier and token on the company and mails a confirmation.
func (s *companyService) SubscribeCompany(ctx context.Context, companyID string, req models.SubscribeCompanyRequest) (string, error) {
	if err := validateCompanyUpdate(req.UpdateCompanyRequest, field{"expiresIn", truthy(req.ExpiresIn)}); err != nil {
		return "", err
	}
	ttl, err := token.ParseExpiresIn(req.ExpiresIn)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		return "", err
	}

	signed, err := s.signer.Sign(token.SubscriptionClaims{
		NameCompany:             req.Name,
		CountParking:            req.CountParking,
		Subscription:            req.Subscription,
		CompanyParkingLocations: req.CompanyParkingLocations,
		EmailCompany:            req.Email,
	}, ttl)
	if err != nil {
		return "", err
	}

	if err := s.companies.SetSubscription(ctx, companyID, req.Subscription, signed); err != nil {
		return "", notFoundAs(err, ErrCompanyNotFound)
	}

	msg := SubscriptionConfirmation(req.Name, req.Email, req.Subscription, ttl)
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("Subscription confirmation e-mail failed",
			zap.String("companyID", companyID), zap.String("email", req.Email), zap.Error(err))
	}
	return signed, nil
}

// SubscriptionConfirmation builds the e-mail sent after a company subscribes.
func SubscriptionConfirmation(companyName, companyEmail, tier string, ttl time.Duration) mailer.Message {
	return mailer.Message{
		ToName:    companyName,
		ToEmail:   companyEmail,
		Subject:   "Wuquf subscription confirmed",
		PlainText: fmt.Sprintf("Your %s subscription for %s is active for %s.", tier, companyName, ttl),
		HTML: fmt.Sprintf("<p>Your <strong>%s</strong> subscription for %s is active for %s.</p>",
			html.EscapeString(tier), html.EscapeString(companyName), ttl),
	}
}
