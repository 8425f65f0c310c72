package core

import (
	"context"
	"fmt"
)

type paymentService struct {
	processor PaymentProcessor
	amount    int64
	currency  string
}

// NewPaymentService creates a PaymentService charging a fixed amount.
func NewPaymentService(processor PaymentProcessor, amount int64, currency string) PaymentService {
	return &paymentService{processor: processor, amount: amount, currency: currency}
}

func (s *paymentService) PublishableKey() string {
	return s.processor.PublishableKey()
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context) (string, error) {
	secret, err := s.processor.CreatePaymentIntent(ctx, s.amount, s.currency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return secret, nil
}
