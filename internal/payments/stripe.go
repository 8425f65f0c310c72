// Package payments creates payment authorizations with Stripe.
package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeProcessor creates PaymentIntents on the account behind secretKey.
type StripeProcessor struct {
	api            *client.API
	publishableKey string
}

// NewStripeProcessor returns a processor using secretKey for API calls.
// publishableKey is only handed back to clients.
func NewStripeProcessor(secretKey, publishableKey string) *StripeProcessor {
	return &StripeProcessor{
		api:            client.New(secretKey, nil),
		publishableKey: publishableKey,
	}
}

// PublishableKey returns the key browsers use to initialise Stripe.js.
func (p *StripeProcessor) PublishableKey() string {
	return p.publishableKey
}

// CreatePaymentIntent authorizes amount (in the smallest currency unit) with
// automatic payment methods and returns the intent's client secret.
func (p *StripeProcessor) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
