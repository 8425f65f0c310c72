package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wuquf/wuquf-backend/internal/db"
	"github.com/wuquf/wuquf-backend/internal/models"
)

func TestSignUpCreatesIdentityThenProfile(t *testing.T) {
	store := db.NewMemoryStore()
	identity := new(mockIdentityProvider)
	identity.On("CreateUser", mock.Anything, models.IdentityToCreate{
		Email:    "sara@example.com",
		Password: "s3cret!",
		PhotoURL: "https://cdn.example.com/sara.png",
	}).Return("uid-123", nil).Once()

	svc := NewUserService(store.Users(), identity, testLogger)
	user, err := svc.SignUp(context.Background(), models.SignUpRequest{
		FullName: "Sara",
		Email:    "sara@example.com",
		Password: "s3cret!",
		City:     "Riyadh",
		Gender:   "female",
		PhotoURL: "https://cdn.example.com/sara.png",
	})
	require.NoError(t, err)

	identity.AssertNumberOfCalls(t, "CreateUser", 1)
	assert.Equal(t, "uid-123", user.ID)
	assert.Equal(t, []string{"Customer"}, user.Role)
	assert.Empty(t, user.Reservations)
	assert.NotNil(t, user.Reservations)

	stored, err := svc.GetUser(context.Background(), "uid-123")
	require.NoError(t, err)
	assert.Equal(t, "Sara", stored.FullName)
	assert.Equal(t, "Riyadh", stored.City)
	assert.Equal(t, "female", stored.Gender)
}

func TestSignUpIdentityFailureWritesNothing(t *testing.T) {
	store := db.NewMemoryStore()
	identity := new(mockIdentityProvider)
	identity.On("CreateUser", mock.Anything, mock.Anything).
		Return("", errors.New("EMAIL_EXISTS")).Once()

	svc := NewUserService(store.Users(), identity, testLogger)
	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "dup@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrIdentityProvider)
	assert.Equal(t, 0, store.Writes())
}

func TestGetUserNotFound(t *testing.T) {
	store := db.NewMemoryStore()
	svc := NewUserService(store.Users(), new(mockIdentityProvider), testLogger)

	_, err := svc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, store.Writes())
}
