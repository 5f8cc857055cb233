package service

import (
	"context"
	"testing"

	"bundle-storefront/internal/apperror"
	"bundle-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageService(t *testing.T) {
	f := newFixture(t)
	svc := NewPackageService(f.repo, f.logger())
	ctx := context.Background()

	all, err := svc.ListPackages(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	pkg, err := svc.GetPackage(ctx, "home-office-power-kit")
	require.NoError(t, err)
	assert.Equal(t, int64(79), pkg.Price)

	_, err = svc.GetPackage(ctx, "does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	created, err := svc.CreatePackage(ctx, &model.InsertPackage{
		Slug:        "travel-kit",
		Name:        "Travel Kit",
		Tagline:     "Work anywhere.",
		Description: "Chargers and adapters for the road.",
		Price:       49,
		HeroImage:   "/assets/travel-kit.png",
		Category:    "Travel",
		Features:    []string{"Universal adapter"},
		Includes:    []string{"Adapter", "Pouch"},
	})
	require.NoError(t, err)
	assert.Contains(t, f.logs.String(), "package travel-kit created")

	// a new package is immediately purchasable at its catalog price
	resp, err := f.service.CreatePaymentIntent(ctx, "travel-kit")
	require.NoError(t, err)
	assert.Equal(t, created.Price, resp.Product.Price)

	_, err = svc.CreatePackage(ctx, &model.InsertPackage{Slug: "broken"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
