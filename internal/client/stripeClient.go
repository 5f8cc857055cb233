package client

import (
	"context"
	"fmt"
	"net/http"

	"bundle-storefront/internal/config"
	"bundle-storefront/internal/model"

	"github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
)

// PaymentClient is the slice of the payment provider this service needs:
// it creates intents and reads them back, nothing else.
type PaymentClient interface {
	CreatePaymentIntent(ctx context.Context, params *model.CreatePaymentIntentParams) (*model.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*model.PaymentIntent, error)
}

type stripeClientImpl struct {
	api *stripeclient.API
}

// NewStripeClient builds a Stripe API client authenticated with the secret
// key. Network retries are disabled; a failed call fails the request.
func NewStripeClient(cfg *config.Stripe, logger stripe.LeveledLoggerInterface) PaymentClient {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	// GetBackendWithConfig fills in defaults on the config it is given, so
	// every backend gets its own.
	backendConfig := func(url string) *stripe.BackendConfig {
		bc := &stripe.BackendConfig{
			HTTPClient:        httpClient,
			LeveledLogger:     logger,
			MaxNetworkRetries: stripe.Int64(0),
		}
		if url != "" {
			bc.URL = stripe.String(url)
		}
		return bc
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig(cfg.BaseApiURL)),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig("")),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig("")),
	}

	return &stripeClientImpl{
		api: stripeclient.New(cfg.SecretKey, backends),
	}
}

func (c *stripeClientImpl) CreatePaymentIntent(ctx context.Context, p *model.CreatePaymentIntentParams) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(p.Currency),
		// the storefront collects payment through the embedded Payment Element
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range p.Metadata {
		params.AddMetadata(key, value)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}

	return toPaymentIntent(pi), nil
}

func (c *stripeClientImpl) GetPaymentIntent(ctx context.Context, id string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe retrieve payment intent %s: %w", id, err)
	}

	return toPaymentIntent(pi), nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *model.PaymentIntent {
	return &model.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       model.PaymentIntentStatus(pi.Status),
		Metadata:     pi.Metadata,
	}
}
