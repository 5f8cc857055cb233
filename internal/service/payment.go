package service

import (
	"context"
	"fmt"
	"math"

	"bundle-storefront/internal/apperror"
	"bundle-storefront/internal/client"
	"bundle-storefront/internal/dto"
	"bundle-storefront/internal/metrics"
	"bundle-storefront/internal/model"
	"bundle-storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// Logger is the subset of the gommon logger the services write to.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, slug string) (*dto.CreatePaymentIntentResponse, error)
	VerifyPayment(ctx context.Context, paymentIntentID string) (*dto.VerifyPaymentResponse, error)
}

type paymentServiceImpl struct {
	paymentClient client.PaymentClient
	packageRepo   repository.PackageRepository
	currency      string
	metrics       *metrics.Metrics
	logger        Logger
}

func NewPaymentService(
	paymentClient client.PaymentClient,
	packageRepo repository.PackageRepository,
	currency string,
	metrics *metrics.Metrics,
	logger Logger,
) PaymentService {
	return &paymentServiceImpl{
		paymentClient: paymentClient,
		packageRepo:   packageRepo,
		currency:      currency,
		metrics:       metrics,
		logger:        logger,
	}
}

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	maxMinorUnits      = decimal.NewFromInt(math.MaxInt64)
)

// ToMinorUnits converts a catalog price to the provider's amount field. It
// fails instead of truncating when the amount does not fit an int64.
func ToMinorUnits(price int64) (int64, error) {
	amount := decimal.NewFromInt(price).Mul(minorUnitsPerMajor).Round(0)
	if amount.Abs().GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("%w: price %d overflows minor units", apperror.ErrDataIntegrity, price)
	}
	return amount.IntPart(), nil
}

// ToMajorUnits converts a provider amount back to whole currency units.
func ToMajorUnits(amount int64) float64 {
	return decimal.NewFromInt(amount).Div(minorUnitsPerMajor).InexactFloat64()
}

// CreatePaymentIntent charges exactly the catalog price of slug. The product
// is resolved before the provider is called, so unknown slugs never leave an
// orphan intent behind.
func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, slug string) (*dto.CreatePaymentIntentResponse, error) {
	if slug == "" {
		return nil, apperror.Validation("slug is required")
	}

	pkg, err := s.packageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve package: %w", err)
	}

	amount, err := ToMinorUnits(pkg.Price)
	if err != nil {
		return nil, fmt.Errorf("package %s: %w", pkg.Slug, err)
	}
	intent, err := s.paymentClient.CreatePaymentIntent(ctx, &model.CreatePaymentIntentParams{
		Amount:   amount,
		Currency: s.currency,
		Metadata: map[string]string{
			model.MetadataProductSlug: pkg.Slug,
			model.MetadataProductName: pkg.Name,
			model.MetadataProductID:   pkg.ID,
		},
	})
	if err != nil {
		return nil, apperror.Upstream("create payment intent", err)
	}
	if intent.ClientSecret == "" {
		return nil, apperror.Upstream("create payment intent", fmt.Errorf("intent %s returned without client secret", intent.ID))
	}

	s.metrics.PaymentIntentsCreated.WithLabelValues(pkg.Slug).Inc()
	s.logger.Infof("payment intent %s created for %s: %d %s", intent.ID, pkg.Slug, amount, s.currency)

	return &dto.CreatePaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Product: dto.ProductSummary{
			Name:  pkg.Name,
			Price: pkg.Price,
		},
	}, nil
}

// VerifyPayment confirms with the provider that the intent succeeded and
// resolves its product from the metadata written at creation time.
func (s *paymentServiceImpl) VerifyPayment(ctx context.Context, paymentIntentID string) (*dto.VerifyPaymentResponse, error) {
	if paymentIntentID == "" {
		return nil, apperror.Validation("payment intent id is required")
	}

	intent, err := s.paymentClient.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		s.recordVerification(metrics.VerificationFailed)
		return nil, apperror.Upstream("retrieve payment intent", err)
	}

	if intent.Status != model.PaymentIntentStatusSucceeded {
		s.recordVerification(metrics.VerificationNotCompleted)
		return nil, &apperror.PaymentNotCompletedError{Status: string(intent.Status)}
	}

	slug := intent.Metadata[model.MetadataProductSlug]
	if slug == "" {
		s.recordVerification(metrics.VerificationFailed)
		return nil, fmt.Errorf("%w: payment intent %s has no %s metadata",
			apperror.ErrDataIntegrity, intent.ID, model.MetadataProductSlug)
	}

	pkg, err := s.packageRepo.GetBySlug(ctx, slug)
	if err != nil {
		s.recordVerification(metrics.VerificationFailed)
		return nil, fmt.Errorf("resolve package for payment intent %s: %w", intent.ID, err)
	}

	s.crossCheck(intent, pkg)
	s.recordVerification(metrics.VerificationVerified)
	s.logger.Infof("payment intent %s verified for %s", intent.ID, pkg.Slug)

	return &dto.VerifyPaymentResponse{
		Verified: true,
		Product: dto.VerifiedProduct{
			Name:  pkg.Name,
			Price: pkg.Price,
			Slug:  pkg.Slug,
		},
		PaymentStatus: string(intent.Status),
		Amount:        ToMajorUnits(intent.Amount),
	}, nil
}

// crossCheck only warns: the charged amount stays authoritative for what was
// paid even if the catalog changed after the intent was created.
func (s *paymentServiceImpl) crossCheck(intent *model.PaymentIntent, pkg *model.Package) {
	if expected, err := ToMinorUnits(pkg.Price); err != nil {
		s.logger.Warnf("payment intent %s: %v", intent.ID, err)
	} else if intent.Amount != expected {
		s.logger.Warnf("payment intent %s charged %d but %s currently costs %d", intent.ID, intent.Amount, pkg.Slug, expected)
	}
	if intent.Currency != "" && intent.Currency != s.currency {
		s.logger.Warnf("payment intent %s uses currency %s, expected %s", intent.ID, intent.Currency, s.currency)
	}
	if id := intent.Metadata[model.MetadataProductID]; id != "" && id != pkg.ID {
		s.logger.Warnf("payment intent %s was created for product id %s, slug %s now resolves to %s", intent.ID, id, pkg.Slug, pkg.ID)
	}
}

func (s *paymentServiceImpl) recordVerification(result string) {
	s.metrics.PaymentVerifications.WithLabelValues(result).Inc()
}
