package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntentUsesConfiguredAmount(t *testing.T) {
	processor := new(mockPaymentProcessor)
	processor.On("CreatePaymentIntent", mock.Anything, int64(1999), "eur").Return("pi_123_secret_abc", nil).Once()

	svc := NewPaymentService(processor, 1999, "eur")
	secret, err := svc.CreatePaymentIntent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
	processor.AssertExpectations(t)
}

func TestCreatePaymentIntentWrapsProviderError(t *testing.T) {
	processor := new(mockPaymentProcessor)
	processor.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("card_declined"))

	_, err := NewPaymentService(processor, 1999, "eur").CreatePaymentIntent(context.Background())
	assert.ErrorIs(t, err, ErrPaymentProvider)
}

func TestPublishableKey(t *testing.T) {
	processor := new(mockPaymentProcessor)
	processor.On("PublishableKey").Return("pk_test_42")

	assert.Equal(t, "pk_test_42", NewPaymentService(processor, 1, "eur").PublishableKey())
}
