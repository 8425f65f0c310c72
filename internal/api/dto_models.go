package api

// ErrorResponse is the body of every 4xx/5xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is the body of every 2xx response except the Stripe endpoints.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ConfigResponse is returned by GET /config.
type ConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

// PaymentIntentResponse is returned by POST /create-payment-intent.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SubscriptionResponse is the data of a successful subscription.
type SubscriptionResponse struct {
	Token string `json:"token"`
}
