package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/wuquf/wuquf-backend/internal/models"
)

// IdentityProvider creates accounts in Firebase Authentication.
type IdentityProvider struct {
	client *auth.Client
}

// NewIdentityProvider wraps an Auth client.
func NewIdentityProvider(client *auth.Client) *IdentityProvider {
	return &IdentityProvider{client: client}
}

// CreateUser registers an unverified account and returns its UID.
func (p *IdentityProvider) CreateUser(ctx context.Context, identity models.IdentityToCreate) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(identity.Email).
		Password(identity.Password).
		EmailVerified(false)
	if identity.PhotoURL != "" {
		params = params.PhotoURL(identity.PhotoURL)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("firebase create user: %w", err)
	}
	return record.UID, nil
}
