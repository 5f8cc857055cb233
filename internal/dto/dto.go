package dto

// CreatePaymentIntentRequest carries only the product slug. Any price sent by
// the client is dropped at decode time.
type CreatePaymentIntentRequest struct {
	Slug string `json:"slug"`
}

type ProductSummary struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string         `json:"clientSecret"`
	Product      ProductSummary `json:"product"`
}

type VerifiedProduct struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Slug  string `json:"slug"`
}

type VerifyPaymentResponse struct {
	Verified      bool            `json:"verified"`
	Product       VerifiedProduct `json:"product"`
	PaymentStatus string          `json:"paymentStatus"`
	Amount        float64         `json:"amount"` // charged amount in major units, as reported by the provider
}

type StripeConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

type ErrorResponse struct {
	Error         string `json:"error"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}
