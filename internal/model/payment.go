package model

type PaymentIntentStatus string

// Provider-owned lifecycle; this service creates intents and reads them back
// but never moves them between states.
const (
	PaymentIntentStatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentStatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	PaymentIntentStatusRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusRequiresCapture       PaymentIntentStatus = "requires_capture"
	PaymentIntentStatusCanceled              PaymentIntentStatus = "canceled"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
)

// Metadata keys written on every intent at creation time. Verification reads
// the product back from these, never from the request.
const (
	MetadataProductSlug = "productSlug"
	MetadataProductName = "productName"
	MetadataProductID   = "productId"
)

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64 // minor units
	Currency     string
	Status       PaymentIntentStatus
	Metadata     map[string]string
}

type CreatePaymentIntentParams struct {
	Amount   int64 // minor units
	Currency string
	Metadata map[string]string
}
