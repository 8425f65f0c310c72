package core

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
)

type userService struct {
	users    db.UserRepository
	identity IdentityProvider
	logger   *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(users db.UserRepository, identity IdentityProvider, logger *zap.Logger) UserService {
	return &userService{users: users, identity: identity, logger: logger}
}

// SignUp creates the account first and then mirrors the profile under the
// returned UID. A failed profile write leaves the account in place.
func (s *userService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	uid, err := s.identity.CreateUser(ctx, models.IdentityToCreate{
		Email:    req.Email,
		Password: req.Password,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentityProvider, err)
	}

	user := &models.User{
		ID:           uid,
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		City:         req.City,
		Nationality:  req.Nationality,
		Gender:       req.Gender,
		PhotoURL:     req.PhotoURL,
		Reservations: []string{},
		Role:         []string{models.RoleCustomer},
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Profile write failed after account creation; account is orphaned",
			zap.String("uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to store profile for '%s': %w", uid, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}
